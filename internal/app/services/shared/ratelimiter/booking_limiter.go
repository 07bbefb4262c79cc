package ratelimiter

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultBookingWindow = time.Minute

// bookingLimiter counts booking attempts per patient in fixed windows. Each
// window has its own redis counter that expires shortly after the window ends.
type bookingLimiter struct {
	RedisRepository contracts.RedisRepository
	MaxAttempts     int
	Window          time.Duration
	Log             *zap.Logger
}

func NewBookingLimiter(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BookingLimiter {
	window := time.Duration(internalConfig.Booking.RateLimitWindowSeconds) * time.Second
	if window < time.Second {
		window = defaultBookingWindow
	}
	return &bookingLimiter{
		RedisRepository: redisRepository,
		MaxAttempts:     internalConfig.Booking.RateLimitPerMinute,
		Window:          window,
		Log:             logger,
	}
}

func (l *bookingLimiter) Allow(ctx context.Context, patientID string, at time.Time) (bool, time.Duration, error) {
	if l.MaxAttempts <= 0 {
		return true, 0, nil
	}

	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return false, l.Window, nil
	}

	windowSecs := int64(l.Window / time.Second)
	windowID := at.Unix() / windowSecs
	key := fmt.Sprintf(constvars.RedisBookingAttemptsKeyFormat, patientID, windowID)

	attempts, err := l.RedisRepository.IncrementWithTTL(ctx, key, l.Window+time.Second)
	if err != nil {
		l.Log.Error("bookingLimiter.Allow error counting attempt",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}
	if attempts <= l.MaxAttempts {
		return true, 0, nil
	}

	// rounded up so a retry never lands in the same window
	retryAfter := time.Duration((windowID+1)*windowSecs-at.Unix()+1) * time.Second
	l.Log.Warn("bookingLimiter.Allow quota spent",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingAttemptsKey, attempts),
		zap.Duration(constvars.LoggingRetryAfterKey, retryAfter),
	)
	return false, retryAfter, nil
}
