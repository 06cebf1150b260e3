package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/mocks"
	"github.com/medchart/medchart-api/internal/service"
	"github.com/medchart/medchart-api/internal/store"
	"github.com/medchart/medchart-api/internal/validation"
)

func intPtr(n int) *int { return &n }

// seededPatient registers a patient in the mock store and returns it.
func seededPatient(patientStore *mocks.MockPatientStore) *domain.Patient {
	p := domain.NewPatient()
	p.FirstName = "John"
	p.LastName = "Doe"
	p.DateOfBirth = "1990-01-15"
	p.Gender = domain.GenderMale
	patientStore.Patients[p.ID] = p
	return p
}

func TestAddVitals(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		patientStore := mocks.NewMockPatientStore()
		vitalStore := mocks.NewMockVitalStore()
		patient := seededPatient(patientStore)

		svc := service.NewVitalService(vitalStore, patientStore, db, nil)
		vital, err := svc.AddVitals(context.Background(), patient.ID, validation.VitalData{
			BloodPressureSystolic:  floatPtr(120),
			BloodPressureDiastolic: floatPtr(80),
			Temperature:            floatPtr(37.2),
			Notes:                  strPtr("  stable <ok>  "),
		})
		require.NoError(t, err)
		require.NotNil(t, vital)

		assert.Equal(t, patient.ID, vital.PatientID)
		require.NotNil(t, vital.BloodPressureSystolic)
		assert.Equal(t, 120, *vital.BloodPressureSystolic)
		require.NotNil(t, vital.BloodPressureDiastolic)
		assert.Equal(t, 80, *vital.BloodPressureDiastolic)
		assert.Nil(t, vital.HeartRate)
		require.NotNil(t, vital.Temperature)
		assert.Equal(t, 37.2, *vital.Temperature)
		require.NotNil(t, vital.Notes)
		assert.Equal(t, "stable &lt;ok&gt;", *vital.Notes)

		assert.Len(t, vitalStore.Vitals[patient.ID], 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		patientStore := mocks.NewMockPatientStore()
		vitalStore := mocks.NewMockVitalStore()
		patient := seededPatient(patientStore)

		svc := service.NewVitalService(vitalStore, patientStore, db, nil)
		vital, err := svc.AddVitals(context.Background(), patient.ID, validation.VitalData{})
		assert.Nil(t, vital)

		var fieldErrs validation.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "general")
		assert.Empty(t, vitalStore.Vitals[patient.ID])
	})

	t.Run("unknown patient", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)

		svc := service.NewVitalService(
			mocks.NewMockVitalStore(), mocks.NewMockPatientStore(), db, nil)

		vital, err := svc.AddVitals(context.Background(), uuid.New(), validation.VitalData{
			HeartRate: floatPtr(72),
		})
		assert.Nil(t, vital)
		assert.ErrorIs(t, err, service.ErrPatientNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown patient reported before validation", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)

		svc := service.NewVitalService(
			mocks.NewMockVitalStore(), mocks.NewMockPatientStore(), db, nil)

		// An empty record would fail validation, but the missing patient
		// takes precedence.
		vital, err := svc.AddVitals(context.Background(), uuid.New(), validation.VitalData{})
		assert.Nil(t, vital)
		assert.ErrorIs(t, err, service.ErrPatientNotFound)
	})

	t.Run("concurrent patient deletion surfaces as not found", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		patientStore := mocks.NewMockPatientStore()
		vitalStore := mocks.NewMockVitalStore()
		patient := seededPatient(patientStore)
		vitalStore.CreateFn = func(ctx context.Context, v *domain.Vital) error {
			return store.ErrInvalidEntity
		}

		svc := service.NewVitalService(vitalStore, patientStore, db, nil)
		vital, err := svc.AddVitals(context.Background(), patient.ID, validation.VitalData{
			HeartRate: floatPtr(72),
		})
		assert.Nil(t, vital)
		assert.ErrorIs(t, err, service.ErrPatientNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetPatientVitals(t *testing.T) {
	t.Parallel()

	t.Run("returns records newest first", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		patientStore := mocks.NewMockPatientStore()
		vitalStore := mocks.NewMockVitalStore()
		patient := seededPatient(patientStore)

		first := domain.NewVital(patient.ID)
		second := domain.NewVital(patient.ID)
		vitalStore.Vitals[patient.ID] = []*domain.Vital{second, first}

		svc := service.NewVitalService(vitalStore, patientStore, db, nil)
		vitals, err := svc.GetPatientVitals(context.Background(), patient.ID)
		require.NoError(t, err)
		require.Len(t, vitals, 2)
		assert.Equal(t, second.ID, vitals[0].ID)
	})

	t.Run("empty history is not an error", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		patientStore := mocks.NewMockPatientStore()
		patient := seededPatient(patientStore)

		svc := service.NewVitalService(mocks.NewMockVitalStore(), patientStore, db, nil)
		vitals, err := svc.GetPatientVitals(context.Background(), patient.ID)
		require.NoError(t, err)
		assert.Empty(t, vitals)
	})

	t.Run("unknown patient", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		svc := service.NewVitalService(
			mocks.NewMockVitalStore(), mocks.NewMockPatientStore(), db, nil)

		vitals, err := svc.GetPatientVitals(context.Background(), uuid.New())
		assert.Nil(t, vitals)
		assert.ErrorIs(t, err, service.ErrPatientNotFound)
	})
}

func TestGetLatestVitals(t *testing.T) {
	t.Parallel()

	t.Run("returns the most recent record", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		patientStore := mocks.NewMockPatientStore()
		vitalStore := mocks.NewMockVitalStore()
		patient := seededPatient(patientStore)

		latest := domain.NewVital(patient.ID)
		older := domain.NewVital(patient.ID)
		vitalStore.Vitals[patient.ID] = []*domain.Vital{latest, older}

		svc := service.NewVitalService(vitalStore, patientStore, db, nil)
		vital, err := svc.GetLatestVitals(context.Background(), patient.ID)
		require.NoError(t, err)
		assert.Equal(t, latest.ID, vital.ID)
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		patientStore := mocks.NewMockPatientStore()
		patient := seededPatient(patientStore)

		svc := service.NewVitalService(mocks.NewMockVitalStore(), patientStore, db, nil)
		vital, err := svc.GetLatestVitals(context.Background(), patient.ID)
		assert.Nil(t, vital)
		assert.ErrorIs(t, err, service.ErrNoVitals)
	})

	t.Run("unknown patient", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		svc := service.NewVitalService(
			mocks.NewMockVitalStore(), mocks.NewMockPatientStore(), db, nil)

		vital, err := svc.GetLatestVitals(context.Background(), uuid.New())
		assert.Nil(t, vital)
		assert.ErrorIs(t, err, service.ErrPatientNotFound)
	})
}

func TestGetStatistics(t *testing.T) {
	t.Parallel()

	t.Run("averages cover only the records where a field was measured", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		vitalStore := mocks.NewMockVitalStore()
		patientID := uuid.New()

		v1 := domain.NewVital(patientID)
		v1.BloodPressureSystolic = intPtr(120)
		v1.HeartRate = intPtr(71)
		v1.Temperature = floatPtr(36.8)

		v2 := domain.NewVital(patientID)
		v2.BloodPressureSystolic = intPtr(130)
		v2.HeartRate = intPtr(72)

		v3 := domain.NewVital(patientID)
		v3.HeartRate = intPtr(74)

		vitalStore.Vitals[patientID] = []*domain.Vital{v3, v2, v1}

		svc := service.NewVitalService(vitalStore, mocks.NewMockPatientStore(), db, nil)
		stats, err := svc.GetStatistics(context.Background(), patientID)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalRecords)
		require.NotNil(t, stats.AvgBloodPressureSystolic)
		assert.Equal(t, 125.0, *stats.AvgBloodPressureSystolic)
		require.NotNil(t, stats.AvgHeartRate)
		assert.Equal(t, 72.33, *stats.AvgHeartRate)
		require.NotNil(t, stats.AvgTemperature)
		assert.Equal(t, 36.8, *stats.AvgTemperature)

		// Never-observed fields have no average at all.
		assert.Nil(t, stats.AvgBloodPressureDiastolic)
		assert.Nil(t, stats.AvgRespiratoryRate)
		assert.Nil(t, stats.AvgOxygenSaturation)
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		svc := service.NewVitalService(
			mocks.NewMockVitalStore(), mocks.NewMockPatientStore(), db, nil)

		stats, err := svc.GetStatistics(context.Background(), uuid.New())
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, service.ErrNoVitals)
	})
}
