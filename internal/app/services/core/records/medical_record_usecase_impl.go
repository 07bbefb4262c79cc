package records

import (
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordBackendClient contracts.MedicalRecordBackendClient
	SessionService             contracts.SessionService
	Log                        *zap.Logger
}

var (
	medicalRecordUsecaseInstance contracts.MedicalRecordUsecase
	onceMedicalRecordUsecase     sync.Once
)

func NewMedicalRecordUsecase(
	medicalRecordBackendClient contracts.MedicalRecordBackendClient,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	onceMedicalRecordUsecase.Do(func() {
		medicalRecordUsecaseInstance = &medicalRecordUsecase{
			MedicalRecordBackendClient: medicalRecordBackendClient,
			SessionService:             sessionService,
			Log:                        logger,
		}
	})
	return medicalRecordUsecaseInstance
}

// ListMedicalRecords pins patients to their own records. Doctors and admins
// may list any patient's records, or all when no patient is given.
func (uc *medicalRecordUsecase) ListMedicalRecords(ctx context.Context, sessionData string, query *requests.MedicalRecordQuery) ([]models.MedicalRecord, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.ListMedicalRecords called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if query == nil {
		query = &requests.MedicalRecordQuery{}
	}

	patientID := query.PatientID
	if session.IsPatient() {
		if patientID != "" && patientID != session.PatientID {
			return nil, 0, exceptions.ErrNotResourceOwner(nil, constvars.ResourceMedicalRecord)
		}
		patientID = session.PatientID
	}

	records, err := uc.MedicalRecordBackendClient.ListMedicalRecords(ctx, session.BackendToken, patientID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.ListMedicalRecords error calling MedicalRecordBackendClient.ListMedicalRecords",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	if patientID != "" {
		records = utils.Filter(records, func(record models.MedicalRecord) bool {
			return record.Patient.ID == patientID
		})
	}

	page, total := utils.Paginate(records, &query.Pagination)

	uc.Log.Info("medicalRecordUsecase.ListMedicalRecords succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(page)),
	)
	return page, total, nil
}

func (uc *medicalRecordUsecase) GetMedicalRecord(ctx context.Context, sessionData, recordID string) (*models.MedicalRecord, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicalRecordUsecase.GetMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	record, err := uc.MedicalRecordBackendClient.FindMedicalRecordByID(ctx, session.BackendToken, recordID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.GetMedicalRecord error calling MedicalRecordBackendClient.FindMedicalRecordByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if session.IsPatient() && record.Patient.ID != session.PatientID {
		return nil, exceptions.ErrNotResourceOwner(nil, constvars.ResourceMedicalRecord)
	}

	uc.Log.Info("medicalRecordUsecase.GetMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	return record, nil
}
