package controllers

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, _, ok := requestScope(ctrl.Log, w, r, "AuthController.Login", false)
	if !ok {
		return
	}
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AuthController.Login failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AuthController.Login validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.Login AuthUsecase.Login", requestID, err)
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, response.User.Role.String()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "AuthController.Logout", true)
	if !ok {
		return
	}
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, sessionData); err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.Logout AuthUsecase.Logout", requestID, err)
		return
	}

	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "AuthController.Me", true)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.AuthUsecase.Me(ctx, sessionData)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AuthController.Me AuthUsecase.Me", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMeSuccess, response)
}
