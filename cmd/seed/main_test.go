package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medchart/medchart-api/internal/validation"
)

// Seeded patients must pass the same validation the API applies, so that a
// later partial update does not fail on untouched seed fields.
func TestDemoPatientsPassValidation(t *testing.T) {
	t.Parallel()

	for _, dp := range demoPatients {
		dp := dp
		t.Run(dp.firstName+" "+dp.lastName, func(t *testing.T) {
			t.Parallel()
			phone, email := dp.phone, dp.email
			gender := string(dp.gender)
			errs := validation.ValidatePatientData(validation.PatientData{
				FirstName:   strPtr(dp.firstName),
				LastName:    strPtr(dp.lastName),
				DateOfBirth: strPtr(dp.dateOfBirth),
				Gender:      &gender,
				Phone:       &phone,
				Email:       &email,
			})
			assert.Nil(t, errs)
		})
	}
}

func strPtr(s string) *string { return &s }
