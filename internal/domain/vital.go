package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vital represents a single vital-sign observation event for a patient.
// Every measurement field is optional; a record is valid as long as at
// least one measurement is present (enforced by the validation layer).
type Vital struct {
	ID                     uuid.UUID `json:"id"`
	PatientID              uuid.UUID `json:"patient_id"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic"`  // mmHg
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic"` // mmHg
	HeartRate              *int      `json:"heart_rate"`               // bpm
	Temperature            *float64  `json:"temperature"`              // Celsius
	RespiratoryRate        *int      `json:"respiratory_rate"`         // breaths per minute
	OxygenSaturation       *float64  `json:"oxygen_saturation"`        // percent
	Notes                  *string   `json:"notes"`
	RecordedAt             time.Time `json:"recorded_at"`
}

// NewVital creates a Vital for the given patient with a fresh ID and a
// server-assigned recording timestamp.
func NewVital(patientID uuid.UUID) *Vital {
	return &Vital{
		ID:         uuid.New(),
		PatientID:  patientID,
		RecordedAt: time.Now().UTC(),
	}
}

// VitalStatistics holds per-field arithmetic means over a patient's vital
// records, each computed over only the non-null observations for that field
// and rounded to two decimal places. A nil average means the field was never
// observed.
type VitalStatistics struct {
	TotalRecords              int      `json:"total_records"`
	AvgBloodPressureSystolic  *float64 `json:"avg_blood_pressure_systolic"`
	AvgBloodPressureDiastolic *float64 `json:"avg_blood_pressure_diastolic"`
	AvgHeartRate              *float64 `json:"avg_heart_rate"`
	AvgTemperature            *float64 `json:"avg_temperature"`
	AvgRespiratoryRate        *float64 `json:"avg_respiratory_rate"`
	AvgOxygenSaturation       *float64 `json:"avg_oxygen_saturation"`
}
