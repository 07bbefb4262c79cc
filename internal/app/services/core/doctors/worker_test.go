package doctors

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts/mocks"
	"chamber-portal-service/internal/pkg/constvars"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestWorker(locker *mocks.MockLockerService, doctorUsecase *mocks.MockDoctorUsecase) *Worker {
	return NewWorker(zap.NewNop(), &config.InternalConfig{
		Cache: config.AppCache{DoctorCacheWorkerCronSpec: "@every 15m"},
	}, locker, doctorUsecase)
}

func TestWorkerRunOnce(t *testing.T) {
	t.Run("Leader Refreshes", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		doctorUsecase := new(mocks.MockDoctorUsecase)

		locker.On("TryLock", mock.Anything, constvars.RedisDoctorCacheLeaderKey, 2*time.Minute).Return(true, "token-1", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisDoctorCacheLeaderKey, "token-1").Return(nil)
		doctorUsecase.On("RefreshDirectoryCache", mock.Anything).Return(3, nil)

		newTestWorker(locker, doctorUsecase).runOnce(context.Background())

		locker.AssertExpectations(t)
		doctorUsecase.AssertExpectations(t)
	})

	t.Run("Follower Skips", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		doctorUsecase := new(mocks.MockDoctorUsecase)

		locker.On("TryLock", mock.Anything, constvars.RedisDoctorCacheLeaderKey, 2*time.Minute).Return(false, "", nil)

		newTestWorker(locker, doctorUsecase).runOnce(context.Background())

		doctorUsecase.AssertNotCalled(t, "RefreshDirectoryCache", mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lock Error Skips", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		doctorUsecase := new(mocks.MockDoctorUsecase)

		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", errors.New("redis down"))

		newTestWorker(locker, doctorUsecase).runOnce(context.Background())

		doctorUsecase.AssertNotCalled(t, "RefreshDirectoryCache", mock.Anything)
	})

	t.Run("Refresh Failure Still Unlocks", func(t *testing.T) {
		locker := new(mocks.MockLockerService)
		doctorUsecase := new(mocks.MockDoctorUsecase)

		locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "token-2", nil)
		locker.On("Unlock", mock.Anything, constvars.RedisDoctorCacheLeaderKey, "token-2").Return(nil)
		doctorUsecase.On("RefreshDirectoryCache", mock.Anything).Return(0, errors.New("backend down"))

		newTestWorker(locker, doctorUsecase).runOnce(context.Background())

		locker.AssertExpectations(t)
	})
}

func TestWorkerStartStop(t *testing.T) {
	locker := new(mocks.MockLockerService)
	doctorUsecase := new(mocks.MockDoctorUsecase)
	locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil).Maybe()

	worker := NewWorker(zap.NewNop(), &config.InternalConfig{
		Cache: config.AppCache{DoctorCacheWorkerCronSpec: "not a cron spec"},
	}, locker, doctorUsecase)

	worker.Start(context.Background())
	worker.Stop()
	worker.Stop()

	doctorUsecase.AssertNotCalled(t, "RefreshDirectoryCache", mock.Anything)
}
