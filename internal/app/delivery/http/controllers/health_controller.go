package controllers

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

type HealthController struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewHealthController(logger *zap.Logger, redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := ctrl.RedisRepository.Ping(ctx); err != nil {
		ctrl.Log.Error("HealthController.Health redis ping failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRedisPing(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthSuccess, responses.Health{
		Status:  "ok",
		Version: ctrl.InternalConfig.App.Version,
		Redis:   "ok",
	})
}
