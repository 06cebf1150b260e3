package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/store"
)

// MockVitalStore implements store.VitalStore for testing
type MockVitalStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, vital *domain.Vital) error
	ListByPatientFn func(ctx context.Context, patientID uuid.UUID) ([]*domain.Vital, error)
	GetLatestFn     func(ctx context.Context, patientID uuid.UUID) (*domain.Vital, error)

	// Data for default implementation, newest first per patient
	Vitals map[uuid.UUID][]*domain.Vital
}

// NewMockVitalStore creates a new mock store with initialized defaults
func NewMockVitalStore() *MockVitalStore {
	return &MockVitalStore{
		Vitals: make(map[uuid.UUID][]*domain.Vital),
	}
}

// Create implements the VitalStore interface
func (m *MockVitalStore) Create(ctx context.Context, vital *domain.Vital) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, vital)
	}
	m.Vitals[vital.PatientID] = append([]*domain.Vital{vital}, m.Vitals[vital.PatientID]...)
	return nil
}

// ListByPatient implements the VitalStore interface
func (m *MockVitalStore) ListByPatient(
	ctx context.Context,
	patientID uuid.UUID,
) ([]*domain.Vital, error) {
	if m.ListByPatientFn != nil {
		return m.ListByPatientFn(ctx, patientID)
	}
	vitals := m.Vitals[patientID]
	if vitals == nil {
		return []*domain.Vital{}, nil
	}
	return vitals, nil
}

// GetLatest implements the VitalStore interface
func (m *MockVitalStore) GetLatest(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.Vital, error) {
	if m.GetLatestFn != nil {
		return m.GetLatestFn(ctx, patientID)
	}
	vitals := m.Vitals[patientID]
	if len(vitals) == 0 {
		return nil, store.ErrVitalNotFound
	}
	return vitals[0], nil
}

// WithTx implements the VitalStore interface.
// The mock has no real transaction, so it returns itself.
func (m *MockVitalStore) WithTx(tx *sql.Tx) store.VitalStore {
	return m
}
