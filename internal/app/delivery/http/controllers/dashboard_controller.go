package controllers

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
	InternalConfig   *config.InternalConfig
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase, internalConfig *config.InternalConfig) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "DashboardController.GetDashboard", true)
	if !ok {
		return
	}
	ctrl.Log.Info("DashboardController.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.DashboardUsecase.GetDashboard(ctx, sessionData)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "DashboardController.GetDashboard DashboardUsecase.GetDashboard", requestID, err)
		return
	}

	ctrl.Log.Info("DashboardController.GetDashboard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, response.Role.String()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, response)
}
