package ratelimiter

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bookingConfig(maxAttempts, windowSeconds int) *config.InternalConfig {
	return &config.InternalConfig{Booking: config.AppBooking{
		RateLimitPerMinute:     maxAttempts,
		RateLimitWindowSeconds: windowSeconds,
	}}
}

func TestBookingLimiterAllow(t *testing.T) {
	ctx := context.Background()
	at := time.Unix(1_700_000_010, 0)
	windowKey := "ratelimit:booking:pat-1:28333333"

	t.Run("Within Quota", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, windowKey, 61*time.Second).Return(2, nil)

		allowed, retryAfter, err := NewBookingLimiter(repo, bookingConfig(2, 60), zap.NewNop()).Allow(ctx, " pat-1 ", at)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Zero(t, retryAfter)
		repo.AssertExpectations(t)
	})

	t.Run("Quota Spent Waits For Next Window", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, windowKey, 61*time.Second).Return(3, nil)

		allowed, retryAfter, err := NewBookingLimiter(repo, bookingConfig(2, 60), zap.NewNop()).Allow(ctx, "pat-1", at)
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 31*time.Second, retryAfter)
	})

	t.Run("Patient IDs Keep Their Case", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, "ratelimit:booking:PAT-1:28333333", 61*time.Second).Return(1, nil)

		allowed, _, err := NewBookingLimiter(repo, bookingConfig(2, 60), zap.NewNop()).Allow(ctx, "PAT-1", at)
		require.NoError(t, err)
		assert.True(t, allowed)
		repo.AssertExpectations(t)
	})

	t.Run("Missing Window Defaults To A Minute", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, windowKey, 61*time.Second).Return(1, nil)

		allowed, _, err := NewBookingLimiter(repo, bookingConfig(2, 0), zap.NewNop()).Allow(ctx, "pat-1", at)
		require.NoError(t, err)
		assert.True(t, allowed)
		repo.AssertExpectations(t)
	})

	t.Run("Disabled", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)

		allowed, _, err := NewBookingLimiter(repo, bookingConfig(0, 60), zap.NewNop()).Allow(ctx, "pat-1", at)
		require.NoError(t, err)
		assert.True(t, allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redis Error", func(t *testing.T) {
		repo := new(mocks.MockRedisRepository)
		repo.On("IncrementWithTTL", ctx, windowKey, 61*time.Second).Return(0, errors.New("down"))

		allowed, _, err := NewBookingLimiter(repo, bookingConfig(2, 60), zap.NewNop()).Allow(ctx, "pat-1", at)
		assert.Error(t, err)
		assert.False(t, allowed)
	})
}
