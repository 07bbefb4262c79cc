package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy(t *testing.T) {
	enforcer, err := NewEnforcer()
	require.NoError(t, err)

	tests := []struct {
		role    string
		method  string
		path    string
		allowed bool
	}{
		{"patient", "GET", "/dashboard", true},
		{"doctor", "GET", "/doctors/doc-1/chamber-times", true},
		{"admin", "GET", "/doctors/doc-1", true},
		{"patient", "POST", "/appointments", true},
		{"doctor", "POST", "/appointments", false},
		{"admin", "POST", "/appointments", false},
		{"patient", "PATCH", "/appointments/apt-1/status", true},
		{"patient", "GET", "/patients", false},
		{"doctor", "GET", "/patients", true},
		{"admin", "PATCH", "/patients/pat-1/verify", true},
		{"patient", "PATCH", "/patients/pat-1/status", false},
		{"patient", "GET", "/patients/pat-1", true},
		{"patient", "POST", "/prescriptions/rx-1/export", true},
		{"patient", "DELETE", "/prescriptions/rx-1", false},
		{"patient", "GET", "/doctors/doc-1/chamber-times/extra", false},
		{"nurse", "GET", "/dashboard", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, Allowed(enforcer, tt.role, tt.method, tt.path), "%s %s %s", tt.role, tt.method, tt.path)
	}
}
