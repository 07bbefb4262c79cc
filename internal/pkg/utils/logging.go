package utils

import (
	"chamber-portal-service/internal/pkg/constvars"
	"context"
	"time"

	"go.uber.org/zap"
)

// LogOperation runs fn and logs its duration and outcome.
func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	start := time.Now()

	err := fn()

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		logger.Error("Operation failed", append(fields, zap.Error(err))...)
		return err
	}

	logger.Info("Operation completed", fields...)
	return nil
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionData(ctx context.Context) string {
	if sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(string); ok {
		return sessionData
	}
	return ""
}
