package prescriptions

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionBackendClient contracts.PrescriptionBackendClient
	SessionService            contracts.SessionService
	MinioStorage              contracts.Storage
	InternalConfig            *config.InternalConfig
	Log                       *zap.Logger
	now                       func() time.Time
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionBackendClient contracts.PrescriptionBackendClient,
	sessionService contracts.SessionService,
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionBackendClient: prescriptionBackendClient,
			SessionService:            sessionService,
			MinioStorage:              minioStorage,
			InternalConfig:            internalConfig,
			Log:                       logger,
			now:                       time.Now,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) ListPrescriptions(ctx context.Context, sessionData string, query *requests.PrescriptionQuery) ([]models.Prescription, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.ListPrescriptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if query == nil {
		query = &requests.PrescriptionQuery{}
	}

	patientID := query.PatientID
	if session.IsPatient() {
		if patientID != "" && patientID != session.PatientID {
			return nil, 0, exceptions.ErrNotResourceOwner(nil, constvars.ResourcePrescription)
		}
		patientID = session.PatientID
	}

	prescriptions, err := uc.PrescriptionBackendClient.ListPrescriptions(ctx, session.BackendToken, patientID, query.DoctorID)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.ListPrescriptions error calling PrescriptionBackendClient.ListPrescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}
	prescriptions = utils.Filter(prescriptions, func(prescription models.Prescription) bool {
		if patientID != "" && prescription.Patient.ID != patientID {
			return false
		}
		return query.DoctorID == "" || prescription.Doctor.ID == query.DoctorID
	})

	page, total := utils.Paginate(prescriptions, &query.Pagination)

	uc.Log.Info("prescriptionUsecase.ListPrescriptions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(page)),
	)
	return page, total, nil
}

func (uc *prescriptionUsecase) GetPrescription(ctx context.Context, sessionData, prescriptionID string) (*models.Prescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.GetPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	prescription, err := uc.loadOwnedPrescription(ctx, session, prescriptionID)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.GetPrescription error loading prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.GetPrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)
	return prescription, nil
}

// ExportPrescription renders the prescription as a printable HTML document,
// stores it in the export bucket and returns a presigned download URL.
func (uc *prescriptionUsecase) ExportPrescription(ctx context.Context, sessionData, prescriptionID string) (*responses.PrescriptionExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionUsecase.ExportPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	prescription, err := uc.loadOwnedPrescription(ctx, session, prescriptionID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	document, err := renderPrescription(prescription, now)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.ExportPrescription error rendering document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRenderDocument(err, constvars.ResourcePrescription)
	}

	bucketName := uc.InternalConfig.Export.BucketName
	objectName := utils.GeneratePrescriptionObjectName(prescription.ID)
	err = utils.LogOperation(uc.Log, "prescriptionUsecase.ExportPrescription upload "+bucketName+"/"+objectName, requestID, func() error {
		_, uploadErr := uc.MinioStorage.UploadObject(ctx, bucketName, objectName, document, constvars.MIMETextHTMLCharsetUTF8)
		return uploadErr
	})
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Export.URLExpiryTimeInMinutes) * time.Minute
	url, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.ExportPrescription error presigning document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.ExportPrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return &responses.PrescriptionExport{
		PrescriptionID: prescription.ID,
		ObjectName:     objectName,
		URL:            url,
		ExpiresAt:      now.Add(expiry),
	}, nil
}

func (uc *prescriptionUsecase) loadOwnedPrescription(ctx context.Context, session *models.Session, prescriptionID string) (*models.Prescription, error) {
	prescription, err := uc.PrescriptionBackendClient.FindPrescriptionByID(ctx, session.BackendToken, prescriptionID)
	if err != nil {
		return nil, err
	}
	if session.IsPatient() && prescription.Patient.ID != session.PatientID {
		return nil, exceptions.ErrNotResourceOwner(nil, constvars.ResourcePrescription)
	}
	return prescription, nil
}
