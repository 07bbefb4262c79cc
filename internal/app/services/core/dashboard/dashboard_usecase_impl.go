package dashboard

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	StatisticsBackendClient contracts.StatisticsBackendClient
	SessionService          contracts.SessionService
	Log                     *zap.Logger
}

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

func NewDashboardUsecase(
	statisticsBackendClient contracts.StatisticsBackendClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			StatisticsBackendClient: statisticsBackendClient,
			SessionService:          sessionService,
			Log:                     logger,
		}
	})
	return dashboardUsecaseInstance
}

func (uc *dashboardUsecase) GetDashboard(ctx context.Context, sessionData string) (*responses.Dashboard, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("dashboardUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var stats models.Statistics
	switch session.Role {
	case models.RoleAdmin:
		stats, err = uc.StatisticsBackendClient.GetAdminStatistics(ctx, session.BackendToken)
	case models.RoleDoctor:
		stats, err = uc.StatisticsBackendClient.GetDoctorStatistics(ctx, session.BackendToken, session.DoctorID)
	case models.RolePatient:
		stats, err = uc.StatisticsBackendClient.GetPatientStatistics(ctx, session.BackendToken, session.PatientID)
	default:
		return nil, exceptions.ErrUnknownRole(nil, session.Role.String())
	}
	if err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard error fetching statistics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoleKey, session.Role.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if stats == nil {
		stats = models.Statistics{}
	}

	uc.Log.Info("dashboardUsecase.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, session.Role.String()),
	)
	return &responses.Dashboard{
		Role:         session.Role,
		Stats:        stats,
		QuickActions: quickActions(session.Role),
	}, nil
}
