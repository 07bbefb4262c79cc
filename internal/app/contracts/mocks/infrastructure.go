// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/dto/requests"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	args := m.Called(ctx, key, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	args := m.Called(ctx, key, exp)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, bucketName, objectName string, content []byte, contentType string) (string, error) {
	args := m.Called(ctx, bucketName, objectName, content, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishAppointmentEvent(ctx context.Context, message *requests.AppointmentNotification) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
