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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) ListPatients(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "PatientController.ListPatients", true)
	if !ok {
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	query := &requests.PatientQuery{
		Search:     strings.TrimSpace(r.URL.Query().Get("search")),
		Verified:   utils.ParseOptionalBoolQuery(r, "verified"),
		Status:     strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))),
		Pagination: *pagination,
	}
	ctrl.Log.Info("PatientController.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	patients, total, err := ctrl.PatientUsecase.ListPatients(ctx, sessionData, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PatientController.ListPatients PatientUsecase.ListPatients", requestID, err)
		return
	}

	ctrl.Log.Info("PatientController.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(patients)))
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPatientsSuccessMessage,
		utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path), patients)
}

func (ctrl *PatientController) GetPatient(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "PatientController.GetPatient", true)
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	patient, err := ctrl.PatientUsecase.GetPatient(ctx, sessionData, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PatientController.GetPatient PatientUsecase.GetPatient", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, patient)
}

func (ctrl *PatientController) VerifyPatient(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "PatientController.VerifyPatient", true)
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.VerifyPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	patient, err := ctrl.PatientUsecase.VerifyPatient(ctx, sessionData, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PatientController.VerifyPatient PatientUsecase.VerifyPatient", requestID, err)
		return
	}

	ctrl.Log.Info("PatientController.VerifyPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerifyPatientSuccessMessage, patient)
}

func (ctrl *PatientController) UpdatePatientStatus(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "PatientController.UpdatePatientStatus", true)
	if !ok {
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	ctrl.Log.Info("PatientController.UpdatePatientStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID))

	request := new(requests.UpdatePatientStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	patient, err := ctrl.PatientUsecase.UpdatePatientStatus(ctx, sessionData, patientID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PatientController.UpdatePatientStatus PatientUsecase.UpdatePatientStatus", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientStatusSuccessMessage, patient)
}
