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
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "AppointmentController.ListAppointments", true)
	if !ok {
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	query := &requests.AppointmentQuery{
		Status:     strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))),
		Date:       strings.TrimSpace(r.URL.Query().Get("date")),
		Pagination: *pagination,
	}
	ctrl.Log.Info("AppointmentController.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointments, total, err := ctrl.AppointmentUsecase.ListAppointments(ctx, sessionData, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.ListAppointments AppointmentUsecase.ListAppointments", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(appointments)))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage,
		utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path), appointments)
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "AppointmentController.CreateAppointment", true)
	if !ok {
		return
	}
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.BookingSelection)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeBookingSelection(request)
	ctrl.Log.Info("AppointmentController.CreateAppointment request decoded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingRequestKey, request))

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, sessionData, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.CreateAppointment AppointmentUsecase.CreateAppointment", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "AppointmentController.UpdateAppointmentStatus", true)
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	request := new(requests.UpdateAppointmentStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateAppointmentStatus(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.UpdateAppointmentStatus(ctx, sessionData, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "AppointmentController.UpdateAppointmentStatus AppointmentUsecase.UpdateAppointmentStatus", requestID, err)
		return
	}

	ctrl.Log.Info("AppointmentController.UpdateAppointmentStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccess, appointment)
}
