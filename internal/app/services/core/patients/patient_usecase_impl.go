package patients

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientBackendClient contracts.PatientBackendClient
	SessionService       contracts.SessionService
	Log                  *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientBackendClient contracts.PatientBackendClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientBackendClient: patientBackendClient,
			SessionService:       sessionService,
			Log:                  logger,
		}
	})
	return patientUsecaseInstance
}

// ListPatients shows a doctor their own patients and an admin every patient.
func (uc *patientUsecase) ListPatients(ctx context.Context, sessionData string, query *requests.PatientQuery) ([]models.Patient, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.staffSession(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if query == nil {
		query = &requests.PatientQuery{}
	}

	doctorID := ""
	if session.IsDoctor() {
		doctorID = session.DoctorID
	}

	patients, err := uc.PatientBackendClient.ListPatients(ctx, session.BackendToken, doctorID)
	if err != nil {
		uc.Log.Error("patientUsecase.ListPatients error calling PatientBackendClient.ListPatients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	status := strings.TrimSpace(query.Status)
	patients = utils.Filter(patients, func(patient models.Patient) bool {
		if query.Verified != nil && patient.IsVerified != *query.Verified {
			return false
		}
		if status != "" && !strings.EqualFold(patient.Status, status) {
			return false
		}
		return utils.ContainsFold(query.Search, patient.Name, patient.Email, patient.Phone)
	})

	page, total := utils.Paginate(patients, &query.Pagination)

	uc.Log.Info("patientUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(page)),
	)
	return page, total, nil
}

func (uc *patientUsecase) GetPatient(ctx context.Context, sessionData, patientID string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.IsPatient() && session.PatientID != patientID {
		return nil, exceptions.ErrNotResourceOwner(nil, constvars.ResourcePatient)
	}

	patient, err := uc.PatientBackendClient.FindPatientByID(ctx, session.BackendToken, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.GetPatient error calling PatientBackendClient.FindPatientByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.GetPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

func (uc *patientUsecase) VerifyPatient(ctx context.Context, sessionData, patientID string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.VerifyPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	session, err := uc.staffSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientBackendClient.VerifyPatient(ctx, session.BackendToken, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.VerifyPatient error calling PatientBackendClient.VerifyPatient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.VerifyPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return patient, nil
}

// UpdatePatientStatus activates or deactivates a patient account.
func (uc *patientUsecase) UpdatePatientStatus(ctx context.Context, sessionData, patientID string, request *requests.UpdatePatientStatus) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatientStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	session, err := uc.staffSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if request == nil || request.Active == nil {
		return nil, exceptions.ErrInputValidation(errors.New("active is required"))
	}

	patient, err := uc.PatientBackendClient.UpdatePatientStatus(ctx, session.BackendToken, patientID, &requests.BackendPatientStatus{
		IsActive: *request.Active,
	})
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatientStatus error calling PatientBackendClient.UpdatePatientStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdatePatientStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Bool("active", *request.Active),
	)
	return patient, nil
}

func (uc *patientUsecase) staffSession(ctx context.Context, sessionData string) (*models.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.HasRole(models.RoleDoctor, models.RoleAdmin) {
		return nil, exceptions.ErrRoleNotAllowed(nil, session.Role.String())
	}
	return session, nil
}
