package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/service"
	"github.com/medchart/medchart-api/internal/service/auth"
	"github.com/medchart/medchart-api/internal/store"
	"github.com/medchart/medchart-api/internal/validation"
)

// MockPatientService implements service.PatientService for handler tests.
// Calls panic when the corresponding function field is unset, which makes an
// unexpected service call fail loudly instead of silently succeeding.
type MockPatientService struct {
	CreatePatientFn  func(ctx context.Context, data validation.PatientData) (*domain.Patient, error)
	GetPatientFn     func(ctx context.Context, patientID uuid.UUID) (*domain.Patient, error)
	ListPatientsFn   func(ctx context.Context, page, perPage int) ([]*domain.Patient, *store.Page, error)
	UpdatePatientFn  func(ctx context.Context, patientID uuid.UUID, data validation.PatientData) (*domain.Patient, error)
	SearchPatientsFn func(ctx context.Context, term string, page, perPage int) ([]*domain.Patient, *store.Page, error)
}

// CreatePatient implements the service.PatientService interface
func (m *MockPatientService) CreatePatient(
	ctx context.Context,
	data validation.PatientData,
) (*domain.Patient, error) {
	return m.CreatePatientFn(ctx, data)
}

// GetPatient implements the service.PatientService interface
func (m *MockPatientService) GetPatient(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.Patient, error) {
	return m.GetPatientFn(ctx, patientID)
}

// ListPatients implements the service.PatientService interface
func (m *MockPatientService) ListPatients(
	ctx context.Context,
	page, perPage int,
) ([]*domain.Patient, *store.Page, error) {
	return m.ListPatientsFn(ctx, page, perPage)
}

// UpdatePatient implements the service.PatientService interface
func (m *MockPatientService) UpdatePatient(
	ctx context.Context,
	patientID uuid.UUID,
	data validation.PatientData,
) (*domain.Patient, error) {
	return m.UpdatePatientFn(ctx, patientID, data)
}

// SearchPatients implements the service.PatientService interface
func (m *MockPatientService) SearchPatients(
	ctx context.Context,
	term string,
	page, perPage int,
) ([]*domain.Patient, *store.Page, error) {
	return m.SearchPatientsFn(ctx, term, page, perPage)
}

var _ service.PatientService = (*MockPatientService)(nil)

// MockVitalService implements service.VitalService for handler tests.
type MockVitalService struct {
	AddVitalsFn        func(ctx context.Context, patientID uuid.UUID, data validation.VitalData) (*domain.Vital, error)
	GetPatientVitalsFn func(ctx context.Context, patientID uuid.UUID) ([]*domain.Vital, error)
	GetLatestVitalsFn  func(ctx context.Context, patientID uuid.UUID) (*domain.Vital, error)
	GetStatisticsFn    func(ctx context.Context, patientID uuid.UUID) (*domain.VitalStatistics, error)
}

// AddVitals implements the service.VitalService interface
func (m *MockVitalService) AddVitals(
	ctx context.Context,
	patientID uuid.UUID,
	data validation.VitalData,
) (*domain.Vital, error) {
	return m.AddVitalsFn(ctx, patientID, data)
}

// GetPatientVitals implements the service.VitalService interface
func (m *MockVitalService) GetPatientVitals(
	ctx context.Context,
	patientID uuid.UUID,
) ([]*domain.Vital, error) {
	return m.GetPatientVitalsFn(ctx, patientID)
}

// GetLatestVitals implements the service.VitalService interface
func (m *MockVitalService) GetLatestVitals(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.Vital, error) {
	return m.GetLatestVitalsFn(ctx, patientID)
}

// GetStatistics implements the service.VitalService interface
func (m *MockVitalService) GetStatistics(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.VitalStatistics, error) {
	return m.GetStatisticsFn(ctx, patientID)
}

var _ service.VitalService = (*MockVitalService)(nil)

// MockAuthService implements auth.Service for handler tests.
type MockAuthService struct {
	RegisterFn func(ctx context.Context, data validation.RegistrationData) (*domain.User, error)
	LoginFn    func(ctx context.Context, username, password string) (*auth.LoginResult, error)
}

// Register implements the auth.Service interface
func (m *MockAuthService) Register(
	ctx context.Context,
	data validation.RegistrationData,
) (*domain.User, error) {
	return m.RegisterFn(ctx, data)
}

// Login implements the auth.Service interface
func (m *MockAuthService) Login(
	ctx context.Context,
	username, password string,
) (*auth.LoginResult, error) {
	return m.LoginFn(ctx, username, password)
}

var _ auth.Service = (*MockAuthService)(nil)
