package session

import (
	"chamber-portal-service/internal/app/contracts/mocks"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	redisRepo := new(mocks.MockRedisRepository)
	svc := NewSessionService(redisRepo)
	session := &models.Session{SessionID: "abc", Role: models.RolePatient}

	redisRepo.On("Set", mock.Anything, "session:abc", session, 24*time.Hour).Return(nil)

	require.NoError(t, svc.CreateSession(context.Background(), session, 24*time.Hour))
	redisRepo.AssertExpectations(t)
}

func TestGetSessionData(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Get", mock.Anything, "session:abc").Return(`{"session_id":"abc"}`, nil)

		data, err := NewSessionService(redisRepo).GetSessionData(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, `{"session_id":"abc"}`, data)
	})

	t.Run("Missing Is Unauthorized", func(t *testing.T) {
		redisRepo := new(mocks.MockRedisRepository)
		redisRepo.On("Get", mock.Anything, "session:gone").Return("", nil)

		_, err := NewSessionService(redisRepo).GetSessionData(context.Background(), "gone")
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestParseSessionData(t *testing.T) {
	svc := NewSessionService(nil)

	session, err := svc.ParseSessionData(context.Background(), `{"session_id":"abc","role":"doctor","doctor_id":"doc-1"}`)
	require.NoError(t, err)
	assert.True(t, session.IsDoctor())
	assert.Equal(t, "doc-1", session.DoctorID)

	_, err = svc.ParseSessionData(context.Background(), "")
	assert.Error(t, err)

	_, err = svc.ParseSessionData(context.Background(), `{"role":"nurse"}`)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)

	_, err = svc.ParseSessionData(context.Background(), `not json`)
	assert.Error(t, err)
}

func TestParseSessionDataRequiresProfileID(t *testing.T) {
	svc := NewSessionService(nil)

	tests := []struct {
		name        string
		sessionData string
		wantErr     bool
	}{
		{"Patient Without Patient ID", `{"role":"patient","backend_token":"tkn"}`, true},
		{"Patient With Only Doctor ID", `{"role":"patient","doctor_id":"doc-1"}`, true},
		{"Doctor Without Doctor ID", `{"role":"doctor","patient_id":"pat-1"}`, true},
		{"Admin Without IDs", `{"role":"admin"}`, false},
		{"Patient With Patient ID", `{"role":"patient","patient_id":"pat-1"}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseSessionData(context.Background(), tt.sessionData)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		})
	}
}

func TestDeleteSession(t *testing.T) {
	redisRepo := new(mocks.MockRedisRepository)
	redisRepo.On("Delete", mock.Anything, "session:abc").Return(nil)

	require.NoError(t, NewSessionService(redisRepo).DeleteSession(context.Background(), "abc"))
	redisRepo.AssertExpectations(t)
}
