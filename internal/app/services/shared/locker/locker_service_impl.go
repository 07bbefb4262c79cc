package locker

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

var errLockNotOwned = errors.New("lock not owned by this client")

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = newLockService(repo, logger)
	})
	return lockerServiceInstance
}

func newLockService(repo contracts.RedisRepository, logger *zap.Logger) *lockService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

// TryLock returns the lock value to pass to Unlock and Refresh when acquired.
func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("lockService.TryLock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)

	lockValue := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, lockValue, expiration)
	if err != nil {
		s.Log.Error("lockService.TryLock error calling redisRepo.TrySetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, "", err
	}

	if !acquired {
		s.Log.Info("lockService.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return false, "", nil
	}

	s.Log.Debug("lockService.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

// Unlock releases key when it is still held with lockValue. A lock that
// already expired is not an error.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	owned, err := s.owns(ctx, key, lockValue)
	if err != nil {
		s.Log.Error("lockService.Unlock error checking lock owner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	if !owned {
		s.Log.Info("lockService.Unlock no owned lock to release",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		s.Log.Error("lockService.Unlock error deleting lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Debug("lockService.Unlock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	return nil
}

func (s *lockService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	owned, err := s.owns(ctx, key, lockValue)
	if err != nil {
		return err
	}
	if !owned {
		return exceptions.ErrRedisExpire(errLockNotOwned)
	}
	return s.redisRepo.Expire(ctx, key, expiration)
}

// owns compares the stored JSON value with lockValue.
func (s *lockService) owns(ctx context.Context, key, lockValue string) (bool, error) {
	storedVal, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if storedVal == "" {
		return false, nil
	}

	var stored string
	if err := json.Unmarshal([]byte(storedVal), &stored); err != nil {
		s.Log.Warn("lockService.owns stored lock value is not a JSON string",
			zap.String(constvars.LoggingRedisKey, key),
			zap.String(constvars.LoggingLockStoredValueKey, storedVal),
		)
		return false, nil
	}
	if stored != lockValue {
		s.Log.Warn("lockService.owns lock ownership mismatch",
			zap.String(constvars.LoggingRedisKey, key),
			zap.String(constvars.LoggingLockStoredValueKey, stored),
			zap.String(constvars.LoggingLockExpectedValueKey, lockValue),
		)
		return false, nil
	}
	return true, nil
}
