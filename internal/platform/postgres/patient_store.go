package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/platform/logger"
	"github.com/medchart/medchart-api/internal/store"
)

// PostgresPatientStore implements the store.PatientStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPatientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPatientStore creates a new PostgreSQL implementation of the
// PatientStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// the default logger is used.
func NewPostgresPatientStore(db store.DBTX, logger *slog.Logger) *PostgresPatientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPatientStore{
		db:     db,
		logger: logger.With(slog.String("component", "patient_store")),
	}
}

// Ensure PostgresPatientStore implements store.PatientStore
var _ store.PatientStore = (*PostgresPatientStore)(nil)

const patientColumns = `id, first_name, last_name, date_of_birth, gender,
	phone, email, address, medical_history, created_at, updated_at`

// Create implements store.PatientStore.Create
func (s *PostgresPatientStore) Create(ctx context.Context, patient *domain.Patient) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO patients (id, first_name, last_name, date_of_birth, gender,
			phone, email, address, medical_history, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		patient.ID,
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.MedicalHistory,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create patient",
			slog.String("error", err.Error()),
			slog.String("patient_id", patient.ID.String()))
		return MapError(err)
	}

	log.Info("patient created successfully",
		slog.String("patient_id", patient.ID.String()))
	return nil
}

// GetByID implements store.PatientStore.GetByID
// Returns store.ErrPatientNotFound if the patient does not exist.
func (s *PostgresPatientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`

	patient, err := scanPatient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("patient not found", slog.String("patient_id", id.String()))
			return nil, store.ErrPatientNotFound
		}
		log.Error("failed to get patient by ID",
			slog.String("error", err.Error()),
			slog.String("patient_id", id.String()))
		return nil, MapError(err)
	}

	return patient, nil
}

// Update implements store.PatientStore.Update
// Returns store.ErrPatientNotFound if the patient does not exist.
func (s *PostgresPatientStore) Update(ctx context.Context, patient *domain.Patient) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE patients
		SET first_name = $1, last_name = $2, date_of_birth = $3, gender = $4,
			phone = $5, email = $6, address = $7, medical_history = $8,
			updated_at = $9
		WHERE id = $10
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Gender,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.MedicalHistory,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		log.Error("failed to update patient",
			slog.String("error", err.Error()),
			slog.String("patient_id", patient.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "patient"); err != nil {
		log.Debug("patient not found for update",
			slog.String("patient_id", patient.ID.String()))
		return store.ErrPatientNotFound
	}

	log.Info("patient updated successfully",
		slog.String("patient_id", patient.ID.String()))
	return nil
}

// List implements store.PatientStore.List
func (s *PostgresPatientStore) List(ctx context.Context, limit, offset int) ([]*domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	return s.queryPatients(ctx, query, limit, offset)
}

// Count implements store.PatientStore.Count
func (s *PostgresPatientStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM patients`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// Search implements store.PatientStore.Search
// The substring match against first and last name is case-insensitive.
func (s *PostgresPatientStore) Search(
	ctx context.Context,
	term string,
	limit, offset int,
) ([]*domain.Patient, error) {
	query := `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	return s.queryPatients(ctx, query, likePattern(term), limit, offset)
}

// CountSearch implements store.PatientStore.CountSearch
func (s *PostgresPatientStore) CountSearch(ctx context.Context, term string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM patients
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
	`
	var count int
	if err := s.db.QueryRowContext(ctx, query, likePattern(term)).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.PatientStore.WithTx
func (s *PostgresPatientStore) WithTx(tx *sql.Tx) store.PatientStore {
	return &PostgresPatientStore{
		db:     tx,
		logger: s.logger,
	}
}

// likePattern wraps a search term for a substring ILIKE match.
func likePattern(term string) string {
	return "%" + term + "%"
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning code.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (*domain.Patient, error) {
	var p domain.Patient
	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.DateOfBirth,
		&p.Gender,
		&p.Phone,
		&p.Email,
		&p.Address,
		&p.MedicalHistory,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresPatientStore) queryPatients(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Patient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query patients", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	patients := []*domain.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			log.Error("failed to scan patient row", slog.String("error", err.Error()))
			return nil, err
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return patients, nil
}
