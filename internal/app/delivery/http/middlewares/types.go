package middlewares

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	Enforcer       *casbin.Enforcer
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, enforcer *casbin.Enforcer, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		Enforcer:       enforcer,
		InternalConfig: internalConfig,
	}
}
