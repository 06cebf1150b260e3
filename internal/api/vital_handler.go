package api

import (
	"net/http"
	"strings"

	"github.com/medchart/medchart-api/internal/api/shared"
	"github.com/medchart/medchart-api/internal/service"
	"github.com/medchart/medchart-api/internal/validation"
)

// VitalHandler handles vital-sign HTTP requests
type VitalHandler struct {
	vitalService service.VitalService
}

// NewVitalHandler creates a new VitalHandler
func NewVitalHandler(vitalService service.VitalService) *VitalHandler {
	return &VitalHandler{
		vitalService: vitalService,
	}
}

// AddVitals handles POST /api/patients/{patientID}/vitals requests
func (h *VitalHandler) AddVitals(w http.ResponseWriter, r *http.Request) {
	patientID, err := getPathUUID(r, "patientID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req VitalRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	vital, err := h.vitalService.AddVitals(r.Context(), patientID, validation.VitalData{
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		HeartRate:              req.HeartRate,
		Temperature:            req.Temperature,
		RespiratoryRate:        req.RespiratoryRate,
		OxygenSaturation:       req.OxygenSaturation,
		Notes:                  req.Notes,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, vital)
}

// GetVitals handles GET /api/patients/{patientID}/vitals requests.
// With ?latest=true only the most recent record is returned.
func (h *VitalHandler) GetVitals(w http.ResponseWriter, r *http.Request) {
	patientID, err := getPathUUID(r, "patientID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if strings.EqualFold(r.URL.Query().Get("latest"), "true") {
		vital, err := h.vitalService.GetLatestVitals(r.Context(), patientID)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, vital)
		return
	}

	vitals, err := h.vitalService.GetPatientVitals(r.Context(), patientID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VitalListResponse{Vitals: vitals})
}

// GetStatistics handles GET /api/patients/{patientID}/vitals/stats requests
func (h *VitalHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	patientID, err := getPathUUID(r, "patientID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	stats, err := h.vitalService.GetStatistics(r.Context(), patientID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
