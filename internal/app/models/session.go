package models

import "time"

type Session struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	DoctorID     string    `json:"doctor_id,omitempty"`
	PatientID    string    `json:"patient_id,omitempty"`
	BackendToken string    `json:"backend_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s *Session) IsDoctor() bool {
	return s.Role == RoleDoctor
}

func (s *Session) IsPatient() bool {
	return s.Role == RolePatient
}

// ProfileID is the doctor or patient id the session is scoped to. Admin
// sessions have none.
func (s *Session) ProfileID() string {
	switch s.Role {
	case RoleDoctor:
		return s.DoctorID
	case RolePatient:
		return s.PatientID
	}
	return ""
}

// HasScope reports whether a doctor or patient session carries its profile id.
func (s *Session) HasScope() bool {
	return s.IsAdmin() || s.ProfileID() != ""
}

// HasRole reports whether the session role is one of roles.
func (s *Session) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}
