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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
	InternalConfig      *config.InternalConfig
}

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase, internalConfig *config.InternalConfig) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		PrescriptionUsecase: prescriptionUsecase,
		InternalConfig:      internalConfig,
	}
}

func (ctrl *PrescriptionController) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "PrescriptionController.ListPrescriptions", true)
	if !ok {
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	query := &requests.PrescriptionQuery{
		PatientID:  strings.TrimSpace(r.URL.Query().Get("patient_id")),
		DoctorID:   strings.TrimSpace(r.URL.Query().Get("doctor_id")),
		Pagination: *pagination,
	}
	ctrl.Log.Info("PrescriptionController.ListPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	prescriptions, total, err := ctrl.PrescriptionUsecase.ListPrescriptions(ctx, sessionData, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PrescriptionController.ListPrescriptions PrescriptionUsecase.ListPrescriptions", requestID, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPrescriptionsSuccessMessage,
		utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path), prescriptions)
}

func (ctrl *PrescriptionController) GetPrescription(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "PrescriptionController.GetPrescription", true)
	if !ok {
		return
	}

	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	prescription, err := ctrl.PrescriptionUsecase.GetPrescription(ctx, sessionData, prescriptionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PrescriptionController.GetPrescription PrescriptionUsecase.GetPrescription", requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionSuccessMessage, prescription)
}

func (ctrl *PrescriptionController) ExportPrescription(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := requestScope(ctrl.Log, w, r, "PrescriptionController.ExportPrescription", true)
	if !ok {
		return
	}

	prescriptionID := chi.URLParam(r, constvars.URLParamPrescriptionID)
	ctrl.Log.Info("PrescriptionController.ExportPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID))

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	export, err := ctrl.PrescriptionUsecase.ExportPrescription(ctx, sessionData, prescriptionID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, "PrescriptionController.ExportPrescription PrescriptionUsecase.ExportPrescription", requestID, err)
		return
	}

	ctrl.Log.Info("PrescriptionController.ExportPrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, export.ObjectName))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExportPrescriptionSuccessMessage, export)
}
