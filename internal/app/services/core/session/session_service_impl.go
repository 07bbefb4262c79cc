package session

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

// GetSessionData returns the raw session JSON. A missing key is an invalid session.
func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrInvalidSession(errors.New(sessionID))
	}
	return sessionData, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	if sessionData == "" {
		return nil, exceptions.ErrMissingSessionData(nil)
	}

	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	if !session.Role.IsValid() {
		return nil, exceptions.ErrUnknownRole(nil, session.Role.String())
	}
	if !session.HasScope() {
		return nil, exceptions.ErrSessionMissingProfile(nil, session.Role.String())
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}
