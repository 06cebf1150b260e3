package api

import (
	"net/http"

	"github.com/medchart/medchart-api/internal/api/shared"
	"github.com/medchart/medchart-api/internal/service"
	"github.com/medchart/medchart-api/internal/validation"
)

// PatientHandler handles patient-related HTTP requests
type PatientHandler struct {
	patientService service.PatientService
}

// NewPatientHandler creates a new PatientHandler
func NewPatientHandler(patientService service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// CreatePatient handles POST /api/patients requests
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req PatientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patient, err := h.patientService.CreatePatient(r.Context(), patientRequestToData(req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, patient)
}

// ListPatients handles GET /api/patients requests. A non-empty search query
// parameter narrows the page to patients whose first or last name contains
// the term.
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := getPagination(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	search := r.URL.Query().Get("search")

	if search != "" {
		results, meta, err := h.patientService.SearchPatients(r.Context(), search, page, perPage)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to search patients")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, PatientListResponse{
			Patients:   results,
			Pagination: meta,
		})
		return
	}

	results, meta, err := h.patientService.ListPatients(r.Context(), page, perPage)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list patients")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PatientListResponse{
		Patients:   results,
		Pagination: meta,
	})
}

// GetPatient handles GET /api/patients/{patientID} requests
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := getPathUUID(r, "patientID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(r.Context(), patientID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, patient)
}

// UpdatePatient handles PUT /api/patients/{patientID} requests. Only the
// fields present in the body change; the merged record is validated before
// anything is written.
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := getPathUUID(r, "patientID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req PatientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patient, err := h.patientService.UpdatePatient(r.Context(), patientID, patientRequestToData(req))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, patient)
}

func patientRequestToData(req PatientRequest) validation.PatientData {
	return validation.PatientData{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}
}
