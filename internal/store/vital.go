package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
)

// VitalStore defines the interface for vital-sign persistence.
type VitalStore interface {
	// Create saves a new vital record.
	// Returns ErrInvalidEntity if the patient reference does not resolve.
	Create(ctx context.Context, vital *domain.Vital) error

	// ListByPatient returns every vital for the patient ordered by recorded
	// time descending. Returns an empty slice when the patient has none.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.Vital, error)

	// GetLatest returns the single most recently recorded vital for the
	// patient. Returns ErrVitalNotFound when no vitals exist.
	GetLatest(ctx context.Context, patientID uuid.UUID) (*domain.Vital, error)

	// WithTx returns a VitalStore bound to the given transaction.
	WithTx(tx *sql.Tx) VitalStore
}
