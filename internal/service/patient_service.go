package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/store"
	"github.com/medchart/medchart-api/internal/validation"
)

// PatientService provides patient record operations.
type PatientService interface {
	// CreatePatient validates, sanitizes, and persists a new patient record.
	// Returns validation.FieldErrors when the input is invalid.
	CreatePatient(ctx context.Context, data validation.PatientData) (*domain.Patient, error)

	// GetPatient retrieves a patient by ID.
	// Returns ErrPatientNotFound when no such patient exists.
	GetPatient(ctx context.Context, patientID uuid.UUID) (*domain.Patient, error)

	// ListPatients returns one page of patients ordered by creation time
	// descending, along with pagination metadata.
	ListPatients(ctx context.Context, page, perPage int) ([]*domain.Patient, *store.Page, error)

	// UpdatePatient applies a partial update to an existing patient. Fields
	// absent from data keep their current values; the merged record is
	// validated as a whole before anything is written.
	UpdatePatient(
		ctx context.Context,
		patientID uuid.UUID,
		data validation.PatientData,
	) (*domain.Patient, error)

	// SearchPatients returns one page of patients whose first or last name
	// contains the search term, case-insensitively. A blank term matches
	// all patients.
	SearchPatients(
		ctx context.Context,
		term string,
		page, perPage int,
	) ([]*domain.Patient, *store.Page, error)
}

// PatientServiceImpl implements the PatientService interface
type PatientServiceImpl struct {
	patientStore store.PatientStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewPatientService creates a new PatientService
func NewPatientService(
	patientStore store.PatientStore,
	db *sql.DB,
	logger *slog.Logger,
) PatientService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PatientServiceImpl{
		patientStore: patientStore,
		db:           db,
		logger:       logger.With("component", "patient_service"),
	}
}

// CreatePatient validates, sanitizes, and persists a new patient record.
func (s *PatientServiceImpl) CreatePatient(
	ctx context.Context,
	data validation.PatientData,
) (*domain.Patient, error) {
	if err := validation.ValidatePatientData(data); err != nil {
		s.logger.Debug("patient creation rejected by validation",
			"error", err)
		return nil, err
	}

	patient := domain.NewPatient()
	applyPatientData(patient, data)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.patientStore.WithTx(tx).Create(ctx, patient)
	})
	if err != nil {
		s.logger.Error("failed to create patient",
			"error", err,
			"patient_id", patient.ID)
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.logger.Info("patient created successfully",
		"patient_id", patient.ID)
	return patient, nil
}

// GetPatient retrieves a patient by ID.
func (s *PatientServiceImpl) GetPatient(
	ctx context.Context,
	patientID uuid.UUID,
) (*domain.Patient, error) {
	patient, err := s.patientStore.GetByID(ctx, patientID)
	if err != nil {
		if errors.Is(err, store.ErrPatientNotFound) {
			return nil, ErrPatientNotFound
		}
		s.logger.Error("failed to retrieve patient",
			"error", err,
			"patient_id", patientID)
		return nil, fmt.Errorf("failed to retrieve patient: %w", err)
	}

	return patient, nil
}

// ListPatients returns one page of patients along with pagination metadata.
func (s *PatientServiceImpl) ListPatients(
	ctx context.Context,
	page, perPage int,
) ([]*domain.Patient, *store.Page, error) {
	total, err := s.patientStore.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count patients", "error", err)
		return nil, nil, fmt.Errorf("failed to count patients: %w", err)
	}

	meta := store.NewPage(page, perPage, total)
	patients, err := s.patientStore.List(ctx, meta.PerPage, meta.Offset())
	if err != nil {
		s.logger.Error("failed to list patients",
			"error", err,
			"page", page,
			"per_page", perPage)
		return nil, nil, fmt.Errorf("failed to list patients: %w", err)
	}

	return patients, &meta, nil
}

// UpdatePatient applies a partial update to an existing patient.
func (s *PatientServiceImpl) UpdatePatient(
	ctx context.Context,
	patientID uuid.UUID,
	data validation.PatientData,
) (*domain.Patient, error) {
	var updated *domain.Patient

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.patientStore.WithTx(tx)

		patient, err := txStore.GetByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, store.ErrPatientNotFound) {
				return ErrPatientNotFound
			}
			return fmt.Errorf("failed to retrieve patient for update: %w", err)
		}

		// Validate the merged record as a whole, so a partial update
		// cannot leave the patient in an invalid state.
		merged := mergePatientData(patient, data)
		if err := validation.ValidatePatientData(merged); err != nil {
			return err
		}

		applyPatientData(patient, merged)
		if err := txStore.Update(ctx, patient); err != nil {
			return fmt.Errorf("failed to save patient: %w", err)
		}

		updated = patient
		return nil
	})
	if err != nil {
		var fieldErrs validation.FieldErrors
		if errors.Is(err, ErrPatientNotFound) || errors.As(err, &fieldErrs) {
			return nil, err
		}
		s.logger.Error("failed to update patient",
			"error", err,
			"patient_id", patientID)
		return nil, err
	}

	s.logger.Info("patient updated successfully",
		"patient_id", patientID)
	return updated, nil
}

// SearchPatients returns one page of patients matching the search term.
func (s *PatientServiceImpl) SearchPatients(
	ctx context.Context,
	term string,
	page, perPage int,
) ([]*domain.Patient, *store.Page, error) {
	term = strings.TrimSpace(term)

	total, err := s.patientStore.CountSearch(ctx, term)
	if err != nil {
		s.logger.Error("failed to count patient search results",
			"error", err)
		return nil, nil, fmt.Errorf("failed to count search results: %w", err)
	}

	meta := store.NewPage(page, perPage, total)
	patients, err := s.patientStore.Search(ctx, term, meta.PerPage, meta.Offset())
	if err != nil {
		s.logger.Error("failed to search patients",
			"error", err,
			"page", page,
			"per_page", perPage)
		return nil, nil, fmt.Errorf("failed to search patients: %w", err)
	}

	return patients, &meta, nil
}

// mergePatientData overlays the provided fields onto the patient's current
// values and returns the effective record. Required fields always carry a
// value after the merge; optional fields stay nil when never set.
func mergePatientData(patient *domain.Patient, data validation.PatientData) validation.PatientData {
	merged := validation.PatientData{
		FirstName:      &patient.FirstName,
		LastName:       &patient.LastName,
		DateOfBirth:    &patient.DateOfBirth,
		Phone:          patient.Phone,
		Email:          patient.Email,
		Address:        patient.Address,
		MedicalHistory: patient.MedicalHistory,
	}
	gender := string(patient.Gender)
	merged.Gender = &gender

	if data.FirstName != nil {
		merged.FirstName = data.FirstName
	}
	if data.LastName != nil {
		merged.LastName = data.LastName
	}
	if data.DateOfBirth != nil {
		merged.DateOfBirth = data.DateOfBirth
	}
	if data.Gender != nil {
		merged.Gender = data.Gender
	}
	if data.Phone != nil {
		merged.Phone = data.Phone
	}
	if data.Email != nil {
		merged.Email = data.Email
	}
	if data.Address != nil {
		merged.Address = data.Address
	}
	if data.MedicalHistory != nil {
		merged.MedicalHistory = data.MedicalHistory
	}
	return merged
}

// applyPatientData writes validated field values onto the patient. Names,
// phone, and email are trimmed; free-text fields are HTML-escaped before
// storage. Gender is stored in its lowercase canonical form.
func applyPatientData(patient *domain.Patient, data validation.PatientData) {
	patient.FirstName = strings.TrimSpace(*data.FirstName)
	patient.LastName = strings.TrimSpace(*data.LastName)
	patient.DateOfBirth = strings.TrimSpace(*data.DateOfBirth)

	gender, _ := domain.NormalizeGender(*data.Gender)
	patient.Gender = gender

	patient.Phone = optionalTrimmed(data.Phone)
	patient.Email = optionalTrimmed(data.Email)
	patient.Address = optionalSanitized(data.Address)
	patient.MedicalHistory = optionalSanitized(data.MedicalHistory)
	patient.Touch()
}

func optionalTrimmed(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optionalSanitized(s *string) *string {
	if s == nil {
		return nil
	}
	sanitized := validation.SanitizeText(*s)
	if sanitized == "" {
		return nil
	}
	return &sanitized
}
