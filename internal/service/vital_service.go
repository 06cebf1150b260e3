package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/store"
	"github.com/medchart/medchart-api/internal/validation"
)

// VitalService provides vital-sign recording and retrieval operations.
type VitalService interface {
	// AddVitals validates and persists a new vital-sign record for a patient.
	// Returns validation.FieldErrors for invalid input and ErrPatientNotFound
	// when the patient does not exist.
	AddVitals(ctx context.Context, patientID uuid.UUID, data validation.VitalData) (*domain.Vital, error)

	// GetPatientVitals returns all vital records for a patient, newest first.
	// Returns ErrPatientNotFound when the patient does not exist.
	GetPatientVitals(ctx context.Context, patientID uuid.UUID) ([]*domain.Vital, error)

	// GetLatestVitals returns the most recent vital record for a patient.
	// Returns ErrPatientNotFound when the patient does not exist and
	// ErrNoVitals when the patient has no recorded vitals.
	GetLatestVitals(ctx context.Context, patientID uuid.UUID) (*domain.Vital, error)

	// GetStatistics computes per-field averages over a patient's vital
	// records. Returns ErrNoVitals when the patient has no recorded vitals.
	GetStatistics(ctx context.Context, patientID uuid.UUID) (*domain.VitalStatistics, error)
}

// VitalServiceImpl implements the VitalService interface
type VitalServiceImpl struct {
	vitalStore   store.VitalStore
	patientStore store.PatientStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewVitalService creates a new VitalService
func NewVitalService(
	vitalStore store.VitalStore,
	patientStore store.PatientStore,
	db *sql.DB,
	logger *slog.Logger,
) VitalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &VitalServiceImpl{
		vitalStore:   vitalStore,
		patientStore: patientStore,
		db:           db,
		logger:       logger.With("component", "vital_service"),
	}
}

// AddVitals validates and persists a new vital-sign record for a patient.
func (s *VitalServiceImpl) AddVitals(
	ctx context.Context,
	patientID uuid.UUID,
	data validation.VitalData,
) (*domain.Vital, error) {
	// Existence is settled before the record is inspected, so an unknown
	// patient is reported as not-found even when the payload is invalid.
	if _, err := s.patientStore.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, store.ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to verify patient: %w", err)
	}

	if err := validation.ValidateVitalData(data); err != nil {
		s.logger.Debug("vital record rejected by validation",
			"error", err,
			"patient_id", patientID)
		return nil, err
	}

	vital := domain.NewVital(patientID)
	applyVitalData(vital, data)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.vitalStore.WithTx(tx).Create(ctx, vital)
	})
	if err != nil {
		// The FK can still trip if the patient is deleted concurrently.
		if errors.Is(err, store.ErrInvalidEntity) {
			return nil, ErrPatientNotFound
		}
		s.logger.Error("failed to record vitals",
			"error", err,
			"patient_id", patientID,
			"vital_id", vital.ID)
		return nil, fmt.Errorf("failed to record vitals: %w", err)
	}

	s.logger.Info("vitals recorded successfully",
		"vital_id", vital.ID,
		"patient_id", patientID)
	return vital, nil
}

// GetPatientVitals returns all vital records for a patient, newest first.
func (s *VitalServiceImpl) GetPatientVitals(
	ctx context.Context,
	patientID uuid.UUID,
) ([]*domain.Vital, error) {
	if _, err := s.patientStore.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, store.ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to verify patient: %w", err)
	}

	vitals, err := s.vitalStore.ListByPatient(ctx, patientID)
	if err != nil {
		s.logger.Error("failed to list vitals",
			"error", err,
			"patient_id", patientID)
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}

	return vitals, nil
}

// GetLatestVitals returns the most recent vital record for a patient.
func (s *VitalServiceImpl) GetLatestVitals(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.Vital, error) {
	if _, err := s.patientStore.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, store.ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to verify patient: %w", err)
	}

	vital, err := s.vitalStore.GetLatest(ctx, patientID)
	if err != nil {
		if errors.Is(err, store.ErrVitalNotFound) {
			return nil, ErrNoVitals
		}
		s.logger.Error("failed to get latest vitals",
			"error", err,
			"patient_id", patientID)
		return nil, fmt.Errorf("failed to get latest vitals: %w", err)
	}

	return vital, nil
}

// GetStatistics computes per-field averages over a patient's vital records.
// Each average covers only the records where that field was measured.
func (s *VitalServiceImpl) GetStatistics(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.VitalStatistics, error) {
	vitals, err := s.vitalStore.ListByPatient(ctx, patientID)
	if err != nil {
		s.logger.Error("failed to list vitals for statistics",
			"error", err,
			"patient_id", patientID)
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	if len(vitals) == 0 {
		return nil, ErrNoVitals
	}

	stats := &domain.VitalStatistics{TotalRecords: len(vitals)}
	stats.AvgBloodPressureSystolic = meanInt(vitals, func(v *domain.Vital) *int { return v.BloodPressureSystolic })
	stats.AvgBloodPressureDiastolic = meanInt(vitals, func(v *domain.Vital) *int { return v.BloodPressureDiastolic })
	stats.AvgHeartRate = meanInt(vitals, func(v *domain.Vital) *int { return v.HeartRate })
	stats.AvgTemperature = meanFloat(vitals, func(v *domain.Vital) *float64 { return v.Temperature })
	stats.AvgRespiratoryRate = meanInt(vitals, func(v *domain.Vital) *int { return v.RespiratoryRate })
	stats.AvgOxygenSaturation = meanFloat(vitals, func(v *domain.Vital) *float64 { return v.OxygenSaturation })

	return stats, nil
}

// applyVitalData writes validated measurements onto the vital record.
// Integer kinds were already confirmed whole by validation, so the
// float-to-int conversions are exact.
func applyVitalData(vital *domain.Vital, data validation.VitalData) {
	vital.BloodPressureSystolic = toIntPtr(data.BloodPressureSystolic)
	vital.BloodPressureDiastolic = toIntPtr(data.BloodPressureDiastolic)
	vital.HeartRate = toIntPtr(data.HeartRate)
	vital.Temperature = data.Temperature
	vital.RespiratoryRate = toIntPtr(data.RespiratoryRate)
	vital.OxygenSaturation = data.OxygenSaturation

	if data.Notes != nil {
		notes := validation.SanitizeText(*data.Notes)
		if notes != "" {
			vital.Notes = &notes
		}
	}
}

func toIntPtr(f *float64) *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// meanInt averages an integer measurement over the records where it is
// present, rounded to two decimal places. Returns nil when no record has it.
func meanInt(vitals []*domain.Vital, field func(*domain.Vital) *int) *float64 {
	var sum float64
	var count int
	for _, v := range vitals {
		if p := field(v); p != nil {
			sum += float64(*p)
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := round2(sum / float64(count))
	return &avg
}

// meanFloat is meanInt for real-valued measurements.
func meanFloat(vitals []*domain.Vital, field func(*domain.Vital) *float64) *float64 {
	var sum float64
	var count int
	for _, v := range vitals {
		if p := field(v); p != nil {
			sum += *p
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := round2(sum / float64(count))
	return &avg
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
