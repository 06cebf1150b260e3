package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func validPatientData() PatientData {
	return PatientData{
		FirstName:   strPtr("John"),
		LastName:    strPtr("Doe"),
		DateOfBirth: strPtr("1990-01-15"),
		Gender:      strPtr("Male"),
	}
}

func TestValidatePatientData(t *testing.T) {
	t.Parallel()

	t.Run("valid record returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, ValidatePatientData(validPatientData()))
	})

	t.Run("valid record with optional fields", func(t *testing.T) {
		t.Parallel()
		data := validPatientData()
		data.Phone = strPtr("555-123-4567")
		data.Email = strPtr("john@example.com")
		data.Address = strPtr("42 Main St")
		data.MedicalHistory = strPtr("None")
		assert.Nil(t, ValidatePatientData(data))
	})

	t.Run("aggregates every failing field", func(t *testing.T) {
		t.Parallel()
		errs := ValidatePatientData(PatientData{
			FirstName:   strPtr(""),
			LastName:    strPtr("Doe3"),
			DateOfBirth: strPtr("bad-date"),
			Gender:      strPtr("unknown"),
			Email:       strPtr("not-an-email"),
		})
		require.NotNil(t, errs)

		assert.Equal(t, "First name is required", errs["first_name"])
		assert.Contains(t, errs["last_name"], "can only contain")
		assert.Equal(t, "Date of birth must be in YYYY-MM-DD format", errs["date_of_birth"])
		assert.Equal(t, "Gender must be one of: Male, Female, Other", errs["gender"])
		assert.Equal(t, "Email format is invalid", errs["email"])
		assert.Len(t, errs, 5)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		errs := ValidatePatientData(PatientData{})
		require.NotNil(t, errs)
		assert.Len(t, errs, 4)
		for _, key := range []string{"first_name", "last_name", "date_of_birth", "gender"} {
			assert.Contains(t, errs, key)
		}
	})

	t.Run("optional text fields enforce length caps", func(t *testing.T) {
		t.Parallel()
		data := validPatientData()
		data.Address = strPtr(strings.Repeat("a", 121))
		data.MedicalHistory = strPtr(strings.Repeat("a", 5001))

		errs := ValidatePatientData(data)
		require.NotNil(t, errs)
		assert.Equal(t, "Address must not exceed 120 characters", errs["address"])
		assert.Equal(t, "Medical history must not exceed 5000 characters", errs["medical_history"])
	})

	t.Run("empty optional fields are skipped", func(t *testing.T) {
		t.Parallel()
		data := validPatientData()
		data.Phone = strPtr("")
		data.Email = strPtr("")
		assert.Nil(t, ValidatePatientData(data))
	})
}

func TestValidateVitalData(t *testing.T) {
	t.Parallel()

	t.Run("single valid measurement", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, ValidateVitalData(VitalData{HeartRate: floatPtr(72)}))
	})

	t.Run("full valid record", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, ValidateVitalData(VitalData{
			BloodPressureSystolic:  floatPtr(120),
			BloodPressureDiastolic: floatPtr(80),
			HeartRate:              floatPtr(72),
			Temperature:            floatPtr(37.0),
			RespiratoryRate:        floatPtr(16),
			OxygenSaturation:       floatPtr(98.5),
			Notes:                  strPtr("routine check"),
		}))
	})

	t.Run("no measurements reports general error", func(t *testing.T) {
		t.Parallel()
		errs := ValidateVitalData(VitalData{})
		require.NotNil(t, errs)
		assert.Equal(t, "At least one vital sign measurement is required", errs["general"])
	})

	t.Run("notes alone do not satisfy the measurement requirement", func(t *testing.T) {
		t.Parallel()
		errs := ValidateVitalData(VitalData{Notes: strPtr("looks fine")})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "general")
	})

	t.Run("blood pressure cross-field rule", func(t *testing.T) {
		t.Parallel()
		errs := ValidateVitalData(VitalData{
			BloodPressureSystolic:  floatPtr(80),
			BloodPressureDiastolic: floatPtr(120),
		})
		require.NotNil(t, errs)
		assert.Equal(t,
			"Systolic blood pressure must be greater than diastolic blood pressure",
			errs["blood_pressure"])
	})

	t.Run("out-of-range and fractional failures aggregate per field", func(t *testing.T) {
		t.Parallel()
		errs := ValidateVitalData(VitalData{
			BloodPressureSystolic: floatPtr(500),
			HeartRate:             floatPtr(72.5),
			Temperature:           floatPtr(25),
		})
		require.NotNil(t, errs)
		assert.Contains(t, errs, "blood_pressure_systolic")
		assert.Equal(t, "Heart Rate must be an integer", errs["heart_rate"])
		assert.Contains(t, errs, "temperature")
	})

	t.Run("notes length cap", func(t *testing.T) {
		t.Parallel()
		errs := ValidateVitalData(VitalData{
			HeartRate: floatPtr(72),
			Notes:     strPtr(strings.Repeat("a", 501)),
		})
		require.NotNil(t, errs)
		assert.Equal(t, "Notes must not exceed 500 characters", errs["notes"])
	})
}

func TestValidateUserRegistration(t *testing.T) {
	t.Parallel()

	t.Run("valid registration", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, ValidateUserRegistration(RegistrationData{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "Str0ng!pass",
		}))
	})

	t.Run("empty email is reported as required", func(t *testing.T) {
		t.Parallel()
		errs := ValidateUserRegistration(RegistrationData{
			Username: "alice",
			Email:    "",
			Password: "Str0ng!pass",
		})
		require.NotNil(t, errs)
		assert.Equal(t, "Email is required", errs["email"])
	})

	t.Run("aggregates all failures", func(t *testing.T) {
		t.Parallel()
		errs := ValidateUserRegistration(RegistrationData{
			Username: "a",
			Email:    "bad-email",
			Password: "weak",
		})
		require.NotNil(t, errs)
		assert.Len(t, errs, 3)
		assert.Contains(t, errs, "username")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "password")
	})
}

func TestFieldErrorsError(t *testing.T) {
	t.Parallel()

	errs := FieldErrors{"b_field": "second", "a_field": "first"}
	assert.Equal(t, "validation failed: a_field: first; b_field: second", errs.Error())

	assert.Equal(t, "validation failed", FieldErrors{}.Error())
}
