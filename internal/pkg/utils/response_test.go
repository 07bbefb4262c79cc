package utils

import (
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/exceptions"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvDevelopment)
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrChamberTimeNotOffered(nil, "1:00 AM", "doc-1", "2024-01-01"))

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, constvars.ErrClientChamberTimeNotAvailable, body["message"])
		assert.Contains(t, body["dev_message"], "doc-1")
	})

	t.Run("Production Hides Dev Details", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvProduction)
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrRedisSet(errors.New("boom")))

		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		_, hasDev := body["dev_message"]
		assert.False(t, hasDev)
	})

	t.Run("Plain Error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rec, errors.New("plain"))
		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
	})
}

func TestBuildSuccessResponseWithPagination(t *testing.T) {
	rec := httptest.NewRecorder()
	BuildSuccessResponseWithPagination(rec, constvars.StatusOK, "ok", BuildPaginationResponse(1, 1, 10, "/x"), []string{"a"})

	assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []interface{}{"a"}, body["data"])
	assert.NotNil(t, body["pagination"])
}
