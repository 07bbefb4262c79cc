package controllers

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "DoctorController.ListDoctors", true)
	if !ok {
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	query := &requests.DoctorQuery{
		Search:         strings.TrimSpace(r.URL.Query().Get("search")),
		Specialization: strings.TrimSpace(r.URL.Query().Get("specialization")),
		Pagination:     *pagination,
	}
	ctrl.Log.Info("DoctorController.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	doctors, total, err := ctrl.DoctorUsecase.ListDoctors(ctx, sessionData, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "DoctorController.ListDoctors DoctorUsecase.ListDoctors", requestID, err)
		return
	}

	ctrl.Log.Info("DoctorController.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(doctors)))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage,
		utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path), doctors)
}

func (ctrl *DoctorController) GetDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "DoctorController.GetDoctor", true)
	if !ok {
		return
	}

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("DoctorController.GetDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.GetDoctor(ctx, sessionData, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "DoctorController.GetDoctor DoctorUsecase.GetDoctor", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, doctor)
}

// GetChamberTimes returns the booking options for ?date=YYYY-MM-DD, today when absent.
func (ctrl *DoctorController) GetChamberTimes(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "DoctorController.GetChamberTimes", true)
	if !ok {
		return
	}

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	ctrl.Log.Info("DoctorController.GetChamberTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	options, err := ctrl.DoctorUsecase.GetBookingOptions(ctx, sessionData, doctorID, date)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "DoctorController.GetChamberTimes DoctorUsecase.GetBookingOptions", requestID, err)
		return
	}

	ctrl.Log.Info("DoctorController.GetChamberTimes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingFallbackKey, options.Fallback),
		zap.Int(constvars.LoggingOptionCountKey, len(options.Options)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChamberTimesSuccessMessage, options)
}
