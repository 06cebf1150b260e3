package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
)

// PatientStore defines the interface for patient persistence.
type PatientStore interface {
	// Create saves a new patient to the store.
	Create(ctx context.Context, patient *domain.Patient) error

	// GetByID retrieves a patient by their unique ID.
	// Returns ErrPatientNotFound if the patient does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)

	// Update overwrites an existing patient's fields.
	// Returns ErrPatientNotFound if the patient does not exist.
	Update(ctx context.Context, patient *domain.Patient) error

	// List returns patients ordered by creation time descending, sliced by
	// limit and offset. Returns an empty slice when no rows match.
	List(ctx context.Context, limit, offset int) ([]*domain.Patient, error)

	// Count returns the total number of patients.
	Count(ctx context.Context) (int, error)

	// Search returns patients whose first or last name contains the term,
	// case-insensitively, ordered by creation time descending.
	Search(ctx context.Context, term string, limit, offset int) ([]*domain.Patient, error)

	// CountSearch returns the number of patients matching the search term.
	CountSearch(ctx context.Context, term string) (int, error)

	// WithTx returns a PatientStore bound to the given transaction so that
	// multiple operations can share a single atomic commit.
	WithTx(tx *sql.Tx) PatientStore
}
