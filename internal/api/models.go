package api

import (
	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/store"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Field-level rules live in the validation package; the handler passes the
// raw values through so every failure is reported at once.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse defines the user representation returned by auth endpoints.
// The password hash never appears here.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterResponse defines the successful response for the registration
// endpoint.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// PatientRequest defines the payload for creating or updating a patient.
// Pointer fields distinguish an omitted field from an empty one, which is
// what makes partial updates possible.
type PatientRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

// PatientListResponse wraps one page of patients with its pagination
// metadata.
type PatientListResponse struct {
	Patients   []*domain.Patient `json:"patients"`
	Pagination *store.Page       `json:"pagination"`
}

// VitalRequest defines the payload for recording vital signs. Measurements
// stay float64 here; integer kinds are enforced by the validation layer so a
// fractional heart rate is reported as a field error rather than a decode
// failure.
type VitalRequest struct {
	BloodPressureSystolic  *float64 `json:"blood_pressure_systolic"`
	BloodPressureDiastolic *float64 `json:"blood_pressure_diastolic"`
	HeartRate              *float64 `json:"heart_rate"`
	Temperature            *float64 `json:"temperature"`
	RespiratoryRate        *float64 `json:"respiratory_rate"`
	OxygenSaturation       *float64 `json:"oxygen_saturation"`
	Notes                  *string  `json:"notes"`
}

// VitalListResponse wraps a patient's vital records.
type VitalListResponse struct {
	Vitals []*domain.Vital `json:"vitals"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}
