package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medchart/medchart-api/internal/api"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/mocks"
	"github.com/medchart/medchart-api/internal/service"
	"github.com/medchart/medchart-api/internal/validation"
)

func vitalRouter(svc service.VitalService) http.Handler {
	h := api.NewVitalHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/patients/{patientID}/vitals", h.AddVitals)
	r.Get("/api/patients/{patientID}/vitals", h.GetVitals)
	r.Get("/api/patients/{patientID}/vitals/stats", h.GetStatistics)
	return r
}

func floatPtr(f float64) *float64 { return &f }

func TestAddVitalsHandler(t *testing.T) {
	t.Parallel()

	patientID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		created := domain.NewVital(patientID)
		hr := 72
		created.HeartRate = &hr

		svc := &mocks.MockVitalService{
			AddVitalsFn: func(ctx context.Context, id uuid.UUID, data validation.VitalData) (*domain.Vital, error) {
				assert.Equal(t, patientID, id)
				require.NotNil(t, data.HeartRate)
				assert.Equal(t, 72.0, *data.HeartRate)
				return created, nil
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodPost,
			"/api/patients/"+patientID.String()+"/vitals",
			map[string]float64{"heart_rate": 72})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp domain.Vital
		decodeBody(t, rec, &resp)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("no measurements", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockVitalService{
			AddVitalsFn: func(ctx context.Context, id uuid.UUID, data validation.VitalData) (*domain.Vital, error) {
				return nil, validation.FieldErrors{
					"general": "At least one vital sign measurement is required",
				}
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodPost,
			"/api/patients/"+patientID.String()+"/vitals", map[string]float64{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Errors map[string]string `json:"errors"`
		}
		decodeBody(t, rec, &resp)
		assert.Contains(t, resp.Errors, "general")
	})

	t.Run("unknown patient", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockVitalService{
			AddVitalsFn: func(ctx context.Context, id uuid.UUID, data validation.VitalData) (*domain.Vital, error) {
				return nil, service.ErrPatientNotFound
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodPost,
			"/api/patients/"+uuid.NewString()+"/vitals",
			map[string]float64{"heart_rate": 72})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed patient id", func(t *testing.T) {
		t.Parallel()
		rec := doRequest(t, vitalRouter(&mocks.MockVitalService{}), http.MethodPost,
			"/api/patients/not-a-uuid/vitals", map[string]float64{"heart_rate": 72})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetVitalsHandler(t *testing.T) {
	t.Parallel()

	patientID := uuid.New()

	t.Run("full history", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockVitalService{
			GetPatientVitalsFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Vital, error) {
				return []*domain.Vital{domain.NewVital(id), domain.NewVital(id)}, nil
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodGet,
			"/api/patients/"+patientID.String()+"/vitals", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp api.VitalListResponse
		decodeBody(t, rec, &resp)
		assert.Len(t, resp.Vitals, 2)
	})

	t.Run("latest only", func(t *testing.T) {
		t.Parallel()
		latest := domain.NewVital(patientID)
		svc := &mocks.MockVitalService{
			GetLatestVitalsFn: func(ctx context.Context, id uuid.UUID) (*domain.Vital, error) {
				return latest, nil
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodGet,
			"/api/patients/"+patientID.String()+"/vitals?latest=true", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.Vital
		decodeBody(t, rec, &resp)
		assert.Equal(t, latest.ID, resp.ID)
	})

	t.Run("latest flag is case-insensitive", func(t *testing.T) {
		t.Parallel()
		latest := domain.NewVital(patientID)
		svc := &mocks.MockVitalService{
			GetLatestVitalsFn: func(ctx context.Context, id uuid.UUID) (*domain.Vital, error) {
				return latest, nil
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodGet,
			"/api/patients/"+patientID.String()+"/vitals?latest=True", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.Vital
		decodeBody(t, rec, &resp)
		assert.Equal(t, latest.ID, resp.ID)
	})

	t.Run("latest with no records", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockVitalService{
			GetLatestVitalsFn: func(ctx context.Context, id uuid.UUID) (*domain.Vital, error) {
				return nil, service.ErrNoVitals
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodGet,
			"/api/patients/"+patientID.String()+"/vitals?latest=true", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp struct {
			Error string `json:"error"`
		}
		decodeBody(t, rec, &resp)
		assert.Equal(t, "No vitals recorded for this patient", resp.Error)
	})
}

func TestGetStatisticsHandler(t *testing.T) {
	t.Parallel()

	patientID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockVitalService{
			GetStatisticsFn: func(ctx context.Context, id uuid.UUID) (*domain.VitalStatistics, error) {
				return &domain.VitalStatistics{
					TotalRecords: 3,
					AvgHeartRate: floatPtr(72.33),
				}, nil
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodGet,
			"/api/patients/"+patientID.String()+"/vitals/stats", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.VitalStatistics
		decodeBody(t, rec, &resp)
		assert.Equal(t, 3, resp.TotalRecords)
		require.NotNil(t, resp.AvgHeartRate)
		assert.Equal(t, 72.33, *resp.AvgHeartRate)
		assert.Nil(t, resp.AvgTemperature)
	})

	t.Run("no records", func(t *testing.T) {
		t.Parallel()
		svc := &mocks.MockVitalService{
			GetStatisticsFn: func(ctx context.Context, id uuid.UUID) (*domain.VitalStatistics, error) {
				return nil, service.ErrNoVitals
			},
		}

		rec := doRequest(t, vitalRouter(svc), http.MethodGet,
			"/api/patients/"+patientID.String()+"/vitals/stats", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
