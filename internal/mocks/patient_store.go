package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/store"
)

// MockPatientStore implements store.PatientStore for testing
type MockPatientStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, patient *domain.Patient) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	UpdateFn      func(ctx context.Context, patient *domain.Patient) error
	ListFn        func(ctx context.Context, limit, offset int) ([]*domain.Patient, error)
	CountFn       func(ctx context.Context) (int, error)
	SearchFn      func(ctx context.Context, term string, limit, offset int) ([]*domain.Patient, error)
	CountSearchFn func(ctx context.Context, term string) (int, error)

	// Data for default implementation
	Patients map[uuid.UUID]*domain.Patient
}

// NewMockPatientStore creates a new mock store with initialized defaults
func NewMockPatientStore() *MockPatientStore {
	return &MockPatientStore{
		Patients: make(map[uuid.UUID]*domain.Patient),
	}
}

// Create implements the PatientStore interface
func (m *MockPatientStore) Create(ctx context.Context, patient *domain.Patient) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, patient)
	}
	m.Patients[patient.ID] = patient
	return nil
}

// GetByID implements the PatientStore interface
func (m *MockPatientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	patient, exists := m.Patients[id]
	if !exists {
		return nil, store.ErrPatientNotFound
	}
	return patient, nil
}

// Update implements the PatientStore interface
func (m *MockPatientStore) Update(ctx context.Context, patient *domain.Patient) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, patient)
	}
	if _, exists := m.Patients[patient.ID]; !exists {
		return store.ErrPatientNotFound
	}
	m.Patients[patient.ID] = patient
	return nil
}

// List implements the PatientStore interface
func (m *MockPatientStore) List(ctx context.Context, limit, offset int) ([]*domain.Patient, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return m.slice(limit, offset), nil
}

// Count implements the PatientStore interface
func (m *MockPatientStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.Patients), nil
}

// Search implements the PatientStore interface
func (m *MockPatientStore) Search(
	ctx context.Context,
	term string,
	limit, offset int,
) ([]*domain.Patient, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, term, limit, offset)
	}
	return m.slice(limit, offset), nil
}

// CountSearch implements the PatientStore interface
func (m *MockPatientStore) CountSearch(ctx context.Context, term string) (int, error) {
	if m.CountSearchFn != nil {
		return m.CountSearchFn(ctx, term)
	}
	return len(m.Patients), nil
}

// WithTx implements the PatientStore interface.
// The mock has no real transaction, so it returns itself.
func (m *MockPatientStore) WithTx(tx *sql.Tx) store.PatientStore {
	return m
}

func (m *MockPatientStore) slice(limit, offset int) []*domain.Patient {
	all := make([]*domain.Patient, 0, len(m.Patients))
	for _, p := range m.Patients {
		all = append(all, p)
	}
	if offset >= len(all) {
		return []*domain.Patient{}
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
