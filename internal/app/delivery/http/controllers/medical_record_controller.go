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

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	InternalConfig       *config.InternalConfig
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase, internalConfig *config.InternalConfig) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *MedicalRecordController) ListMedicalRecords(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "MedicalRecordController.ListMedicalRecords", true)
	if !ok {
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	query := &requests.MedicalRecordQuery{
		PatientID:  strings.TrimSpace(r.URL.Query().Get("patient_id")),
		Pagination: *pagination,
	}
	ctrl.Log.Info("MedicalRecordController.ListMedicalRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, query.PatientID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	records, total, err := ctrl.MedicalRecordUsecase.ListMedicalRecords(ctx, sessionData, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "MedicalRecordController.ListMedicalRecords MedicalRecordUsecase.ListMedicalRecords", requestID, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccessMessage,
		utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path), records)
}

func (ctrl *MedicalRecordController) GetMedicalRecord(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "MedicalRecordController.GetMedicalRecord", true)
	if !ok {
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	ctrl.Log.Info("MedicalRecordController.GetMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	record, err := ctrl.MedicalRecordUsecase.GetMedicalRecord(ctx, sessionData, recordID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "MedicalRecordController.GetMedicalRecord MedicalRecordUsecase.GetMedicalRecord", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, record)
}
