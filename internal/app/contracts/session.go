package contracts

import (
	"chamber-portal-service/internal/app/models"
	"context"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
