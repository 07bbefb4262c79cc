package controllers

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// requestScope reads the request id and, when withSession is set, the raw
// session data that Authenticate stored in the context. It writes the error
// response itself and reports false when either is missing.
func requestScope(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation string, withSession bool) (string, string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", "", false
	}

	if !withSession {
		return requestID, "", true
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		log.Error(operation+" sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSessionData(nil))
		return "", "", false
	}

	return requestID, sessionData, true
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, operation, requestID string, err error) {
	log.Error(operation+" error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))

	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
