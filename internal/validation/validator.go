package validation

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Regular expressions for common field formats.
var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,20}$`)
	nameRegex     = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,80}$`)
)

// Validation constants.
const (
	minPasswordLength = 8
	maxPasswordLength = 128
	minAgeYears       = 0
	maxAgeYears       = 150

	passwordSpecialChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	dateLayout = "2006-01-02"
)

// ValidateRequired checks that a required value is present and not blank.
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateEmail checks email format and length. An empty value passes, since
// email is optional for the callers that treat it as such; required-ness is
// enforced separately.
func ValidateEmail(email, fieldName string) error {
	if email == "" {
		return nil
	}

	email = strings.TrimSpace(email)
	if len(email) > 120 {
		return fmt.Errorf("%s must not exceed 120 characters", fieldName)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%s format is invalid", fieldName)
	}
	return nil
}

// ValidatePhone checks phone number format. An empty value passes.
func ValidatePhone(phone, fieldName string) error {
	if phone == "" {
		return nil
	}

	phone = strings.TrimSpace(phone)
	if len(phone) > 20 {
		return fmt.Errorf("%s must not exceed 20 characters", fieldName)
	}
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("%s format is invalid (must contain 10-20 digits)", fieldName)
	}
	return nil
}

// ValidateName checks a required name field: letters, spaces, hyphens,
// apostrophes and periods only, at most 100 characters.
func ValidateName(name, fieldName string) error {
	if err := ValidateRequired(name, fieldName); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if len(name) > 100 {
		return fmt.Errorf("%s must not exceed 100 characters", fieldName)
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf(
			"%s can only contain letters, spaces, hyphens, apostrophes, and periods",
			fieldName,
		)
	}
	return nil
}

// ValidateDateOfBirth checks that a date of birth is a YYYY-MM-DD calendar
// date that is not in the future and implies an age between 0 and 150 years.
func ValidateDateOfBirth(dob, fieldName string) error {
	if err := ValidateRequired(dob, fieldName); err != nil {
		return err
	}

	birthDate, err := time.Parse(dateLayout, strings.TrimSpace(dob))
	if err != nil {
		return fmt.Errorf("%s must be in YYYY-MM-DD format", fieldName)
	}

	today := time.Now().UTC()
	if birthDate.After(today) {
		return fmt.Errorf("%s cannot be in the future", fieldName)
	}

	age := today.Sub(birthDate).Hours() / 24 / 365.25
	if age < minAgeYears || age > maxAgeYears {
		return fmt.Errorf(
			"%s must represent an age between %d and %d years",
			fieldName, minAgeYears, maxAgeYears,
		)
	}
	return nil
}

// ValidateGender checks the gender enumeration. Capitalized and lowercase
// spellings are accepted; other casings are rejected.
func ValidateGender(gender, fieldName string) error {
	if err := ValidateRequired(gender, fieldName); err != nil {
		return err
	}

	switch gender {
	case "Male", "Female", "Other", "male", "female", "other":
		return nil
	default:
		return fmt.Errorf("%s must be one of: Male, Female, Other", fieldName)
	}
}

// ValidateTextLength checks a free-text field against a maximum length.
// A blank value passes unless the field is required.
func ValidateTextLength(text string, maxLength int, fieldName string, required bool) error {
	if strings.TrimSpace(text) == "" {
		if required {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}

	if len(text) > maxLength {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLength)
	}
	return nil
}

// ValidateUsername checks username format: 3-80 characters of letters,
// digits, underscores and hyphens.
func ValidateUsername(username, fieldName string) error {
	if err := ValidateRequired(username, fieldName); err != nil {
		return err
	}

	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return fmt.Errorf("%s must be at least 3 characters", fieldName)
	}
	if len(username) > 80 {
		return fmt.Errorf("%s must not exceed 80 characters", fieldName)
	}
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf(
			"%s can only contain letters, numbers, underscores, and hyphens",
			fieldName,
		)
	}
	return nil
}

// ValidatePassword checks password length and complexity: at least one
// uppercase letter, one lowercase letter, one digit and one special
// character.
func ValidatePassword(password, fieldName string) error {
	if password == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if len(password) < minPasswordLength {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, c):
			hasSpecial = true
		}
	}
	if !(hasUpper && hasLower && hasDigit && hasSpecial) {
		return fmt.Errorf(
			"%s must contain at least one uppercase letter, one lowercase letter, one digit, and one special character",
			fieldName,
		)
	}
	return nil
}

// VitalKind identifies one of the six supported vital-sign measurements.
type VitalKind string

// Supported vital-sign kinds.
const (
	KindBloodPressureSystolic  VitalKind = "blood_pressure_systolic"
	KindBloodPressureDiastolic VitalKind = "blood_pressure_diastolic"
	KindHeartRate              VitalKind = "heart_rate"
	KindTemperature            VitalKind = "temperature"
	KindRespiratoryRate        VitalKind = "respiratory_rate"
	KindOxygenSaturation       VitalKind = "oxygen_saturation"
)

type vitalRange struct {
	min, max float64
	// real kinds accept fractional values; all others must be integers
	real bool
	// fracBounds renders the range message with one decimal place; only
	// temperature has non-integral bounds
	fracBounds bool
}

// Physiological ranges per measurement kind.
var vitalRanges = map[VitalKind]vitalRange{
	KindBloodPressureSystolic:  {min: 40, max: 300},
	KindBloodPressureDiastolic: {min: 20, max: 200},
	KindHeartRate:              {min: 20, max: 300},
	KindTemperature:            {min: 30.0, max: 45.0, real: true, fracBounds: true},
	KindRespiratoryRate:        {min: 5, max: 100},
	KindOxygenSaturation:       {min: 0, max: 100, real: true},
}

// ValidateVitalSign checks a single measurement value against the
// physiological range for its kind. Integer kinds reject fractional values.
// JSON deserialization delivers every number as a float64, so the integer
// check is a whole-number check rather than a type assertion.
func ValidateVitalSign(value float64, kind VitalKind, fieldName string) error {
	r, ok := vitalRanges[kind]
	if !ok {
		return fmt.Errorf("unknown vital sign type: %s", kind)
	}

	if !r.real && value != math.Trunc(value) {
		return fmt.Errorf("%s must be an integer", fieldName)
	}

	if value < r.min || value > r.max {
		if r.fracBounds {
			return fmt.Errorf("%s must be between %.1f and %.1f", fieldName, r.min, r.max)
		}
		return fmt.Errorf("%s must be between %d and %d", fieldName, int(r.min), int(r.max))
	}
	return nil
}

// ValidateBloodPressureLogic enforces the cross-field rule that systolic
// pressure must exceed diastolic pressure when both are present.
func ValidateBloodPressureLogic(systolic, diastolic *float64) error {
	if systolic != nil && diastolic != nil && *systolic <= *diastolic {
		return errors.New(
			"Systolic blood pressure must be greater than diastolic blood pressure",
		)
	}
	return nil
}
