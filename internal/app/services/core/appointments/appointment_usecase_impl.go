package appointments

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/core/chambertime"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/exceptions"
	"chamber-portal-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	DoctorUsecase            contracts.DoctorUsecase
	SessionService           contracts.SessionService
	LockerService            contracts.LockerService
	NotificationPublisher    contracts.NotificationPublisher
	BookingLimiter           contracts.BookingLimiter
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
	now                      func() time.Time
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	doctorUsecase contracts.DoctorUsecase,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	notificationPublisher contracts.NotificationPublisher,
	bookingLimiter contracts.BookingLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentBackendClient: appointmentBackendClient,
			DoctorUsecase:            doctorUsecase,
			SessionService:           sessionService,
			LockerService:            lockerService,
			NotificationPublisher:    notificationPublisher,
			BookingLimiter:           bookingLimiter,
			InternalConfig:           internalConfig,
			Log:                      logger,
			now:                      time.Now,
		}
	})
	return appointmentUsecaseInstance
}

// CreateAppointment books the selected chamber time for the patient in session.
// The time slot must be one of the options offered for the doctor on that date
// and is forwarded to the backend exactly as offered.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, sessionData string, request *requests.BookingSelection) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.AppointmentDate),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error parsing session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil, session.Role.String())
	}

	err = uc.applyBookingLimit(ctx, session.PatientID)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.CreateAppointment booking limit rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, session.PatientID),
			zap.Error(err),
		)
		return nil, err
	}

	options, err := uc.DoctorUsecase.GetBookingOptions(ctx, sessionData, request.DoctorID, request.AppointmentDate)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error resolving booking options",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !chambertime.Contains(options.Options, request.TimeSlot) {
		uc.Log.Warn("appointmentUsecase.CreateAppointment time slot not offered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
			zap.String(constvars.LoggingDateKey, request.AppointmentDate),
			zap.Int(constvars.LoggingOptionCountKey, len(options.Options)),
		)
		return nil, exceptions.ErrChamberTimeNotOffered(nil, request.TimeSlot, request.DoctorID, request.AppointmentDate)
	}

	lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, session.PatientID, request.DoctorID, request.AppointmentDate)
	lockTTL := time.Duration(uc.InternalConfig.Booking.LockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingInProgress(nil, lockKey)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.Background(), lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.CreateAppointment error releasing booking lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	appointment, err := uc.AppointmentBackendClient.CreateAppointment(ctx, session.BackendToken, &requests.BackendCreateAppointment{
		DoctorID:        request.DoctorID,
		PatientID:       session.PatientID,
		AppointmentDate: request.AppointmentDate,
		TimeSlot:        request.TimeSlot,
		AppointmentType: request.AppointmentType,
		Reason:          request.Reason,
		Symptoms:        request.Symptoms,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling AppointmentBackendClient.CreateAppointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.NotificationEventAppointmentBooked, appointment, request.DoctorID, session.PatientID)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, sessionData string, query *requests.AppointmentQuery) ([]models.Appointment, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}
	if query == nil {
		query = &requests.AppointmentQuery{}
	}

	backendQuery := &requests.BackendAppointmentQuery{
		Status: query.Status,
		Date:   query.Date,
	}
	switch session.Role {
	case models.RolePatient:
		backendQuery.PatientID = session.PatientID
	case models.RoleDoctor:
		backendQuery.DoctorID = session.DoctorID
	case models.RoleAdmin:
	default:
		return nil, 0, exceptions.ErrUnknownRole(nil, session.Role.String())
	}

	appointments, err := uc.AppointmentBackendClient.ListAppointments(ctx, session.BackendToken, backendQuery)
	if err != nil {
		uc.Log.Error("appointmentUsecase.ListAppointments error calling AppointmentBackendClient.ListAppointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	appointments = utils.Filter(appointments, func(appointment models.Appointment) bool {
		switch {
		case backendQuery.PatientID != "" && appointment.Patient.ID != backendQuery.PatientID:
			return false
		case backendQuery.DoctorID != "" && appointment.Doctor.ID != backendQuery.DoctorID:
			return false
		case query.Status != "" && !strings.EqualFold(appointment.Status, query.Status):
			return false
		case query.Date != "" && appointment.AppointmentDate != query.Date:
			return false
		}
		return true
	})

	page, total := utils.Paginate(appointments, &query.Pagination)

	uc.Log.Info("appointmentUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, session.Role.String()),
		zap.Int(constvars.LoggingResponseCountKey, len(page)),
	)
	return page, total, nil
}

// UpdateAppointmentStatus lets doctors move their own appointments and admins
// any appointment. Patients may only cancel their own.
func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, sessionData, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(strings.TrimSpace(request.Status))
	switch status {
	case constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled:
	default:
		return nil, exceptions.ErrInvalidAppointmentStatus(nil, request.Status)
	}

	if !session.IsAdmin() {
		if err := uc.checkStatusChangeAllowed(ctx, session, appointmentID, status); err != nil {
			uc.Log.Warn("appointmentUsecase.UpdateAppointmentStatus rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.String(constvars.LoggingRoleKey, session.Role.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	appointment, err := uc.AppointmentBackendClient.UpdateAppointmentStatus(ctx, session.BackendToken, appointmentID, &requests.BackendUpdateAppointmentStatus{
		Status: status,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointmentStatus error calling AppointmentBackendClient.UpdateAppointmentStatus",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.NotificationEventAppointmentStatusChanged, appointment, appointment.Doctor.ID, appointment.Patient.ID)

	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return appointment, nil
}

func (uc *appointmentUsecase) checkStatusChangeAllowed(ctx context.Context, session *models.Session, appointmentID, status string) error {
	if session.IsPatient() && status != constvars.AppointmentStatusCancelled {
		return exceptions.ErrRoleNotAllowed(nil, session.Role.String())
	}
	if !session.HasRole(models.RolePatient, models.RoleDoctor) {
		return exceptions.ErrUnknownRole(nil, session.Role.String())
	}

	appointment, err := uc.AppointmentBackendClient.FindAppointmentByID(ctx, session.BackendToken, appointmentID)
	if err != nil {
		return err
	}

	owner := appointment.Doctor.ID == session.DoctorID
	if session.IsPatient() {
		owner = appointment.Patient.ID == session.PatientID
	}
	if !owner {
		return exceptions.ErrNotResourceOwner(nil, constvars.ResourceAppointment)
	}
	return nil
}

func (uc *appointmentUsecase) applyBookingLimit(ctx context.Context, patientID string) error {
	if uc.BookingLimiter == nil {
		return nil
	}

	allowed, retryAfter, err := uc.BookingLimiter.Allow(ctx, patientID, uc.now())
	if err != nil {
		return err
	}
	if !allowed {
		return exceptions.ErrTooManyBookingAttempts(errors.New(patientID), patientID, int(retryAfter/time.Second))
	}
	return nil
}

// publish only logs failures; the appointment already exists in the backend.
func (uc *appointmentUsecase) publish(ctx context.Context, event string, appointment *models.Appointment, doctorID, patientID string) {
	requestID := utils.GetRequestID(ctx)
	if uc.NotificationPublisher == nil {
		return
	}

	if appointment.Doctor.ID != "" {
		doctorID = appointment.Doctor.ID
	}
	if appointment.Patient.ID != "" {
		patientID = appointment.Patient.ID
	}

	err := uc.NotificationPublisher.PublishAppointmentEvent(ctx, &requests.AppointmentNotification{
		Event:           event,
		AppointmentID:   appointment.ID,
		DoctorID:        doctorID,
		PatientID:       patientID,
		AppointmentDate: appointment.AppointmentDate,
		TimeSlot:        appointment.TimeSlot,
		Status:          appointment.Status,
		OccurredAt:      uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, event),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}
