package contracts

import (
	"context"
	"time"
)

type BookingLimiter interface {
	// Allow counts one booking attempt by patientID at the given time. When
	// the quota is spent it returns false and how long until the next window.
	Allow(ctx context.Context, patientID string, at time.Time) (bool, time.Duration, error)
}
