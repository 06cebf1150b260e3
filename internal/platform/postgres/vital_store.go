package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/platform/logger"
	"github.com/medchart/medchart-api/internal/store"
)

// PostgresVitalStore implements the store.VitalStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVitalStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVitalStore creates a new PostgreSQL implementation of the
// VitalStore interface. If logger is nil, the default logger is used.
func NewPostgresVitalStore(db store.DBTX, logger *slog.Logger) *PostgresVitalStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVitalStore{
		db:     db,
		logger: logger.With(slog.String("component", "vital_store")),
	}
}

// Ensure PostgresVitalStore implements store.VitalStore
var _ store.VitalStore = (*PostgresVitalStore)(nil)

const vitalColumns = `id, patient_id, blood_pressure_systolic, blood_pressure_diastolic,
	heart_rate, temperature, respiratory_rate, oxygen_saturation, notes, recorded_at`

// Create implements store.VitalStore.Create
// Returns store.ErrInvalidEntity if the patient reference does not resolve.
func (s *PostgresVitalStore) Create(ctx context.Context, vital *domain.Vital) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO vitals (id, patient_id, blood_pressure_systolic,
			blood_pressure_diastolic, heart_rate, temperature,
			respiratory_rate, oxygen_saturation, notes, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		vital.ID,
		vital.PatientID,
		vital.BloodPressureSystolic,
		vital.BloodPressureDiastolic,
		vital.HeartRate,
		vital.Temperature,
		vital.RespiratoryRate,
		vital.OxygenSaturation,
		vital.Notes,
		vital.RecordedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during vital creation",
				slog.String("vital_id", vital.ID.String()),
				slog.String("patient_id", vital.PatientID.String()))
			return fmt.Errorf("%w: patient with ID %s not found",
				store.ErrInvalidEntity, vital.PatientID)
		}

		log.Error("failed to create vital",
			slog.String("error", err.Error()),
			slog.String("vital_id", vital.ID.String()),
			slog.String("patient_id", vital.PatientID.String()))
		return MapError(err)
	}

	log.Info("vital created successfully",
		slog.String("vital_id", vital.ID.String()),
		slog.String("patient_id", vital.PatientID.String()))
	return nil
}

// ListByPatient implements store.VitalStore.ListByPatient
func (s *PostgresVitalStore) ListByPatient(
	ctx context.Context,
	patientID uuid.UUID,
) ([]*domain.Vital, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + vitalColumns + `
		FROM vitals
		WHERE patient_id = $1
		ORDER BY recorded_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, patientID)
	if err != nil {
		log.Error("failed to query vitals",
			slog.String("error", err.Error()),
			slog.String("patient_id", patientID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	vitals := []*domain.Vital{}
	for rows.Next() {
		v, err := scanVital(rows)
		if err != nil {
			log.Error("failed to scan vital row", slog.String("error", err.Error()))
			return nil, err
		}
		vitals = append(vitals, v)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return vitals, nil
}

// GetLatest implements store.VitalStore.GetLatest
// Returns store.ErrVitalNotFound when the patient has no vitals.
func (s *PostgresVitalStore) GetLatest(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.Vital, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + vitalColumns + `
		FROM vitals
		WHERE patient_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	vital, err := scanVital(s.db.QueryRowContext(ctx, query, patientID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no vitals recorded for patient",
				slog.String("patient_id", patientID.String()))
			return nil, store.ErrVitalNotFound
		}
		log.Error("failed to get latest vital",
			slog.String("error", err.Error()),
			slog.String("patient_id", patientID.String()))
		return nil, MapError(err)
	}

	return vital, nil
}

// WithTx implements store.VitalStore.WithTx
func (s *PostgresVitalStore) WithTx(tx *sql.Tx) store.VitalStore {
	return &PostgresVitalStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanVital(row rowScanner) (*domain.Vital, error) {
	var v domain.Vital
	err := row.Scan(
		&v.ID,
		&v.PatientID,
		&v.BloodPressureSystolic,
		&v.BloodPressureDiastolic,
		&v.HeartRate,
		&v.Temperature,
		&v.RespiratoryRate,
		&v.OxygenSaturation,
		&v.Notes,
		&v.RecordedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
