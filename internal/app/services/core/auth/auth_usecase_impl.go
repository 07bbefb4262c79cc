package auth

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthBackendClient contracts.AuthBackendClient
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	authBackendClient contracts.AuthBackendClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = newAuthUsecase(authBackendClient, sessionService, internalConfig, logger)
	})
	return authUsecaseInstance
}

func newAuthUsecase(
	authBackendClient contracts.AuthBackendClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *authUsecase {
	return &authUsecase{
		AuthBackendClient: authBackendClient,
		SessionService:    sessionService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// Login exchanges the credentials for a backend token, stores it in a redis
// session and hands the caller a JWT that only names that session.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	backendLogin, err := uc.AuthBackendClient.Login(ctx, &requests.BackendLogin{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		uc.Log.Error("authUsecase.Login error calling AuthBackendClient.Login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	role, ok := models.ParseRole(backendLogin.User.Role)
	if !ok {
		uc.Log.Error("authUsecase.Login backend returned unknown role",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, backendLogin.User.Role),
		)
		return nil, exceptions.ErrUnknownRole(nil, backendLogin.User.Role)
	}

	session := &models.Session{
		UserID:       backendLogin.User.ID,
		Name:         backendLogin.User.Name,
		Email:        backendLogin.User.Email,
		Role:         role,
		DoctorID:     backendLogin.User.DoctorID,
		PatientID:    backendLogin.User.PatientID,
		BackendToken: backendLogin.Token,
	}
	if !session.HasScope() {
		uc.Log.Error("authUsecase.Login backend user has no profile id for role",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, role.String()),
		)
		return nil, exceptions.ErrSessionMissingProfile(nil, role.String())
	}

	ttl := time.Duration(uc.InternalConfig.Session.ExpiredTimeInHours) * time.Hour
	sessionID := utils.GenerateSessionID()
	token, expiresAt, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.Login error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}
	session.SessionID = sessionID
	session.ExpiresAt = expiresAt

	err = uc.SessionService.CreateSession(ctx, session, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.Login error saving session to Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingRoleKey, role.String()),
	)
	return &responses.Login{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      profileFromSession(session),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}

func (uc *authUsecase) Me(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	profile := profileFromSession(session)
	return &profile, nil
}

func profileFromSession(session *models.Session) responses.UserProfile {
	return responses.UserProfile{
		UserID:    session.UserID,
		Name:      session.Name,
		Email:     session.Email,
		Role:      session.Role,
		DoctorID:  session.DoctorID,
		PatientID: session.PatientID,
	}
}
