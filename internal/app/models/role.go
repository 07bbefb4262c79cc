package models

import (
	"chamber-portal-service/internal/pkg/constvars"
	"strings"
)

type Role string

const (
	RoleAdmin   Role = constvars.RoleAdmin
	RoleDoctor  Role = constvars.RoleDoctor
	RolePatient Role = constvars.RolePatient
)

// ParseRole normalizes a backend role name. The second return is false for
// anything outside admin, doctor and patient.
func ParseRole(raw string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(raw)))
	return role, role.IsValid()
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
