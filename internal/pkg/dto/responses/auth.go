package responses

import (
	"chamber-portal-service/internal/app/models"
	"time"
)

type Login struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserProfile `json:"user"`
}

type UserProfile struct {
	UserID    string      `json:"user_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	DoctorID  string      `json:"doctor_id,omitempty"`
	PatientID string      `json:"patient_id,omitempty"`
}

// BackendLogin is the data part of the backend login response.
type BackendLogin struct {
	Token string      `json:"token"`
	User  BackendUser `json:"user"`
}

type BackendUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	DoctorID  string `json:"doctor_id"`
	PatientID string `json:"patient_id"`
}
