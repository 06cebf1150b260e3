package validation

// PatientData is the request-scoped representation of a patient record as
// submitted by a caller. Pointer fields distinguish an absent field from an
// empty one, which matters for partial updates.
type PatientData struct {
	FirstName      *string
	LastName       *string
	DateOfBirth    *string
	Gender         *string
	Phone          *string
	Email          *string
	Address        *string
	MedicalHistory *string
}

// VitalData is the request-scoped representation of a vital-sign record.
// Measurements arrive as float64 because that is how JSON numbers
// deserialize; integer kinds are enforced by ValidateVitalSign.
type VitalData struct {
	BloodPressureSystolic  *float64
	BloodPressureDiastolic *float64
	HeartRate              *float64
	Temperature            *float64
	RespiratoryRate        *float64
	OxygenSaturation       *float64
	Notes                  *string
}

// RegistrationData is the request-scoped representation of a user
// registration.
type RegistrationData struct {
	Username string
	Email    string
	Password string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ValidatePatientData runs every field validator over a patient record and
// aggregates all failures into a field→message map. Returns nil when the
// record is valid.
func ValidatePatientData(p PatientData) FieldErrors {
	errs := FieldErrors{}

	if err := ValidateName(deref(p.FirstName), "First name"); err != nil {
		errs["first_name"] = err.Error()
	}
	if err := ValidateName(deref(p.LastName), "Last name"); err != nil {
		errs["last_name"] = err.Error()
	}
	if err := ValidateDateOfBirth(deref(p.DateOfBirth), "Date of birth"); err != nil {
		errs["date_of_birth"] = err.Error()
	}
	if err := ValidateGender(deref(p.Gender), "Gender"); err != nil {
		errs["gender"] = err.Error()
	}

	if p.Phone != nil && *p.Phone != "" {
		if err := ValidatePhone(*p.Phone, "Phone"); err != nil {
			errs["phone"] = err.Error()
		}
	}
	if p.Email != nil && *p.Email != "" {
		if err := ValidateEmail(*p.Email, "Email"); err != nil {
			errs["email"] = err.Error()
		}
	}
	if p.Address != nil && *p.Address != "" {
		if err := ValidateTextLength(*p.Address, 120, "Address", false); err != nil {
			errs["address"] = err.Error()
		}
	}
	if p.MedicalHistory != nil && *p.MedicalHistory != "" {
		if err := ValidateTextLength(*p.MedicalHistory, 5000, "Medical history", false); err != nil {
			errs["medical_history"] = err.Error()
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// vitalFields pairs each measurement with its kind and display name so the
// record validator can iterate instead of repeating itself.
func vitalFields(v VitalData) []struct {
	value   *float64
	kind    VitalKind
	display string
} {
	return []struct {
		value   *float64
		kind    VitalKind
		display string
	}{
		{v.BloodPressureSystolic, KindBloodPressureSystolic, "Blood Pressure Systolic"},
		{v.BloodPressureDiastolic, KindBloodPressureDiastolic, "Blood Pressure Diastolic"},
		{v.HeartRate, KindHeartRate, "Heart Rate"},
		{v.Temperature, KindTemperature, "Temperature"},
		{v.RespiratoryRate, KindRespiratoryRate, "Respiratory Rate"},
		{v.OxygenSaturation, KindOxygenSaturation, "Oxygen Saturation"},
	}
}

// ValidateVitalData runs all vital-sign rules over a record and aggregates
// every failure. The cross-field blood-pressure rule reports under the
// synthetic key "blood_pressure" and the at-least-one-measurement rule under
// "general". Returns nil when the record is valid.
func ValidateVitalData(v VitalData) FieldErrors {
	errs := FieldErrors{}

	anyPresent := false
	for _, f := range vitalFields(v) {
		if f.value == nil {
			continue
		}
		anyPresent = true
		if err := ValidateVitalSign(*f.value, f.kind, f.display); err != nil {
			errs[string(f.kind)] = err.Error()
		}
	}

	if err := ValidateBloodPressureLogic(v.BloodPressureSystolic, v.BloodPressureDiastolic); err != nil {
		errs["blood_pressure"] = err.Error()
	}

	if !anyPresent {
		errs["general"] = "At least one vital sign measurement is required"
	}

	if v.Notes != nil && *v.Notes != "" {
		if err := ValidateTextLength(*v.Notes, 500, "Notes", false); err != nil {
			errs["notes"] = err.Error()
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateUserRegistration aggregates username, email and password failures
// for a registration record. Email is required here even though the format
// check alone passes over an empty string. Returns nil when valid.
func ValidateUserRegistration(r RegistrationData) FieldErrors {
	errs := FieldErrors{}

	if err := ValidateUsername(r.Username, "Username"); err != nil {
		errs["username"] = err.Error()
	}

	if err := ValidateEmail(r.Email, "Email"); err != nil {
		errs["email"] = err.Error()
	} else if r.Email == "" {
		errs["email"] = "Email is required"
	}

	if err := ValidatePassword(r.Password, "Password"); err != nil {
		errs["password"] = err.Error()
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
