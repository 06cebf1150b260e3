package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Gender is the enumerated gender of a patient. Values are stored in
// lowercase canonical form regardless of the capitalization submitted.
type Gender string

// Canonical gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// NormalizeGender maps an accepted input spelling (Male/male, Female/female,
// Other/other) to its canonical lowercase form. The second return value is
// false when the input is not one of the accepted values.
func NormalizeGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	case "other":
		return GenderOther, true
	default:
		return "", false
	}
}

// Patient represents a person whose clinical records are tracked by the
// system. Optional demographic fields are pointers so that an absent value
// can be distinguished from an empty one.
type Patient struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    string    `json:"date_of_birth"` // calendar date, YYYY-MM-DD
	Gender         Gender    `json:"gender"`
	Phone          *string   `json:"phone"`
	Email          *string   `json:"email"`
	Address        *string   `json:"address"`
	MedicalHistory *string   `json:"medical_history"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewPatient creates a Patient with a fresh ID and server-assigned
// timestamps. Field validation and sanitization are the responsibility of
// the service layer; this constructor only assigns identity.
func NewPatient() *Patient {
	now := time.Now().UTC()
	return &Patient{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch advances the update timestamp to the current time.
func (p *Patient) Touch() {
	p.UpdatedAt = time.Now().UTC()
}
