package appointments

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/contracts/mocks"
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/app/services/core/chambertime"
	"chamber-portal-service/internal/app/services/core/session"
	"chamber-portal-service/internal/app/services/shared/ratelimiter"
	"chamber-portal-service/internal/pkg/constvars"
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/dto/responses"
	"chamber-portal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	patientSession = `{"session_id":"s1","role":"patient","patient_id":"pat-1","backend_token":"tkn"}`
	doctorSession  = `{"session_id":"s2","role":"doctor","doctor_id":"doc-1","backend_token":"tkn"}`
	adminSession   = `{"session_id":"s3","role":"admin","backend_token":"tkn"}`
	bookingLockKey = "lock:booking:pat-1:doc-1:2099-01-05"
)

type testDeps struct {
	backend   *mocks.MockAppointmentBackendClient
	doctors   *mocks.MockDoctorUsecase
	locker    *mocks.MockLockerService
	publisher *mocks.MockNotificationPublisher
	redis     *mocks.MockRedisRepository
}

func newTestUsecase(rateLimitPerMinute int) (*appointmentUsecase, *testDeps) {
	deps := &testDeps{
		backend:   new(mocks.MockAppointmentBackendClient),
		doctors:   new(mocks.MockDoctorUsecase),
		locker:    new(mocks.MockLockerService),
		publisher: new(mocks.MockNotificationPublisher),
		redis:     new(mocks.MockRedisRepository),
	}
	uc := &appointmentUsecase{
		AppointmentBackendClient: deps.backend,
		DoctorUsecase:            deps.doctors,
		SessionService:           session.NewSessionService(deps.redis),
		LockerService:            deps.locker,
		NotificationPublisher:    deps.publisher,
		InternalConfig: &config.InternalConfig{
			Booking: config.AppBooking{
				LockTTLInSeconds:       30,
				RateLimitPerMinute:     rateLimitPerMinute,
				RateLimitWindowSeconds: 60,
			},
		},
		Log: zap.NewNop(),
		now: func() time.Time { return time.Unix(1_700_000_010, 0) },
	}
	uc.BookingLimiter = ratelimiter.NewBookingLimiter(deps.redis, uc.InternalConfig, zap.NewNop())
	return uc, deps
}

func offeredOptions() *responses.BookingOptions {
	return &responses.BookingOptions{
		DoctorID:   "doc-1",
		Date:       "2099-01-05",
		Weekday:    "Monday",
		Selectable: true,
		Options: []chambertime.TimeSlotOption{
			{Value: "9:00 AM - 12:00 PM", Label: "9:00 AM - 12:00 PM (Monday)"},
		},
	}
}

func bookingSelection(timeSlot string) *requests.BookingSelection {
	return &requests.BookingSelection{
		DoctorID:        "doc-1",
		AppointmentDate: "2099-01-05",
		TimeSlot:        timeSlot,
		AppointmentType: constvars.AppointmentTypeNew,
		Reason:          "chest pain",
	}
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	assert.Equal(t, status, customErr.StatusCode)
}

func TestCreateAppointment(t *testing.T) {
	t.Run("Books Offered Slot Verbatim", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		created := &models.Appointment{
			ID:              "apt-1",
			Doctor:          models.AppointmentActor{ID: "doc-1"},
			Patient:         models.AppointmentActor{ID: "pat-1"},
			AppointmentDate: "2099-01-05",
			TimeSlot:        "9:00 AM - 12:00 PM",
			Status:          constvars.AppointmentStatusPending,
		}

		deps.doctors.On("GetBookingOptions", mock.Anything, patientSession, "doc-1", "2099-01-05").Return(offeredOptions(), nil)
		deps.locker.On("TryLock", mock.Anything, bookingLockKey, 30*time.Second).Return(true, "lock-1", nil)
		deps.backend.On("CreateAppointment", mock.Anything, "tkn", &requests.BackendCreateAppointment{
			DoctorID:        "doc-1",
			PatientID:       "pat-1",
			AppointmentDate: "2099-01-05",
			TimeSlot:        "9:00 AM - 12:00 PM",
			AppointmentType: constvars.AppointmentTypeNew,
			Reason:          "chest pain",
		}).Return(created, nil)
		deps.publisher.On("PublishAppointmentEvent", mock.Anything, mock.MatchedBy(func(n *requests.AppointmentNotification) bool {
			return n.Event == constvars.NotificationEventAppointmentBooked && n.AppointmentID == "apt-1" && n.TimeSlot == "9:00 AM - 12:00 PM"
		})).Return(nil)
		deps.locker.On("Unlock", mock.Anything, bookingLockKey, "lock-1").Return(nil)

		appointment, err := uc.CreateAppointment(context.Background(), patientSession, bookingSelection("9:00 AM - 12:00 PM"))
		require.NoError(t, err)
		assert.Equal(t, "apt-1", appointment.ID)
		deps.backend.AssertExpectations(t)
		deps.locker.AssertExpectations(t)
		deps.publisher.AssertExpectations(t)
	})

	t.Run("Rejects Slot Not Offered", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.doctors.On("GetBookingOptions", mock.Anything, patientSession, "doc-1", "2099-01-05").Return(offeredOptions(), nil)

		_, err := uc.CreateAppointment(context.Background(), patientSession, bookingSelection("9:00 AM - 12:00 PM (Monday)"))
		assertStatus(t, err, constvars.StatusBadRequest)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "The selected chamber time is not available", customErr.ClientMessage)
		deps.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
		deps.backend.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Only Patients Book", func(t *testing.T) {
		uc, _ := newTestUsecase(0)
		_, err := uc.CreateAppointment(context.Background(), doctorSession, bookingSelection("9:00 AM - 12:00 PM"))
		assertStatus(t, err, constvars.StatusForbidden)
	})

	t.Run("Lock Held", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.doctors.On("GetBookingOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(offeredOptions(), nil)
		deps.locker.On("TryLock", mock.Anything, bookingLockKey, mock.Anything).Return(false, "", nil)

		_, err := uc.CreateAppointment(context.Background(), patientSession, bookingSelection("9:00 AM - 12:00 PM"))
		assertStatus(t, err, constvars.StatusConflict)
		deps.locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backend Failure Releases Lock", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.doctors.On("GetBookingOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(offeredOptions(), nil)
		deps.locker.On("TryLock", mock.Anything, bookingLockKey, mock.Anything).Return(true, "lock-2", nil)
		deps.backend.On("CreateAppointment", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrBackendResponse(nil, constvars.StatusBadRequest, constvars.ResourceAppointment, "slot full"))
		deps.locker.On("Unlock", mock.Anything, bookingLockKey, "lock-2").Return(nil)

		_, err := uc.CreateAppointment(context.Background(), patientSession, bookingSelection("9:00 AM - 12:00 PM"))
		assertStatus(t, err, constvars.StatusBadRequest)
		deps.locker.AssertExpectations(t)
		deps.publisher.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})

	t.Run("Publish Failure Does Not Fail Booking", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.doctors.On("GetBookingOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(offeredOptions(), nil)
		deps.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-3", nil)
		deps.locker.On("Unlock", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		deps.backend.On("CreateAppointment", mock.Anything, mock.Anything, mock.Anything).Return(&models.Appointment{ID: "apt-2"}, nil)
		deps.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		appointment, err := uc.CreateAppointment(context.Background(), patientSession, bookingSelection("9:00 AM - 12:00 PM"))
		require.NoError(t, err)
		assert.Equal(t, "apt-2", appointment.ID)
	})

	t.Run("Booking Attempts Limited", func(t *testing.T) {
		uc, deps := newTestUsecase(5)
		deps.redis.On("IncrementWithTTL", mock.Anything, "ratelimit:booking:pat-1:28333333", 61*time.Second).Return(6, nil)

		_, err := uc.CreateAppointment(context.Background(), patientSession, bookingSelection("9:00 AM - 12:00 PM"))
		assertStatus(t, err, constvars.StatusTooManyRequests)
		deps.doctors.AssertNotCalled(t, "GetBookingOptions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListAppointments(t *testing.T) {
	appointments := []models.Appointment{
		{ID: "a1", Doctor: models.AppointmentActor{ID: "doc-1"}, Patient: models.AppointmentActor{ID: "pat-1"}, Status: "pending", AppointmentDate: "2099-01-05"},
		{ID: "a2", Doctor: models.AppointmentActor{ID: "doc-1"}, Patient: models.AppointmentActor{ID: "pat-2"}, Status: "confirmed", AppointmentDate: "2099-01-05"},
		{ID: "a3", Doctor: models.AppointmentActor{ID: "doc-2"}, Patient: models.AppointmentActor{ID: "pat-1"}, Status: "Pending", AppointmentDate: "2099-01-06"},
	}

	t.Run("Patient Scoped", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.backend.On("ListAppointments", mock.Anything, "tkn", &requests.BackendAppointmentQuery{PatientID: "pat-1", Status: "pending"}).Return(appointments, nil)

		result, total, err := uc.ListAppointments(context.Background(), patientSession, &requests.AppointmentQuery{
			Status:     "pending",
			Pagination: requests.Pagination{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Equal(t, "a1", result[0].ID)
		assert.Equal(t, "a3", result[1].ID)
	})

	t.Run("Doctor Scoped", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.backend.On("ListAppointments", mock.Anything, "tkn", &requests.BackendAppointmentQuery{DoctorID: "doc-1"}).Return(appointments, nil)

		result, total, err := uc.ListAppointments(context.Background(), doctorSession, &requests.AppointmentQuery{
			Pagination: requests.Pagination{Page: 2, PageSize: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, result, 1)
		assert.Equal(t, "a2", result[0].ID)
	})

	t.Run("Admin Sees All", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.backend.On("ListAppointments", mock.Anything, "tkn", &requests.BackendAppointmentQuery{Date: "2099-01-05"}).Return(appointments, nil)

		_, total, err := uc.ListAppointments(context.Background(), adminSession, &requests.AppointmentQuery{
			Date:       "2099-01-05",
			Pagination: requests.Pagination{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestUpdateAppointmentStatus(t *testing.T) {
	existing := &models.Appointment{
		ID:      "apt-1",
		Doctor:  models.AppointmentActor{ID: "doc-1"},
		Patient: models.AppointmentActor{ID: "pat-1"},
		Status:  constvars.AppointmentStatusPending,
	}
	updated := func(status string) *models.Appointment {
		appointment := *existing
		appointment.Status = status
		return &appointment
	}

	t.Run("Doctor Confirms Own Appointment", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.backend.On("FindAppointmentByID", mock.Anything, "tkn", "apt-1").Return(existing, nil)
		deps.backend.On("UpdateAppointmentStatus", mock.Anything, "tkn", "apt-1", &requests.BackendUpdateAppointmentStatus{Status: "confirmed"}).
			Return(updated("confirmed"), nil)
		deps.publisher.On("PublishAppointmentEvent", mock.Anything, mock.MatchedBy(func(n *requests.AppointmentNotification) bool {
			return n.Event == constvars.NotificationEventAppointmentStatusChanged && n.Status == "confirmed" && n.PatientID == "pat-1"
		})).Return(nil)

		appointment, err := uc.UpdateAppointmentStatus(context.Background(), doctorSession, "apt-1", &requests.UpdateAppointmentStatus{Status: "Confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", appointment.Status)
		deps.publisher.AssertExpectations(t)
	})

	t.Run("Doctor Cannot Touch Other Doctor Appointment", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		other := *existing
		other.Doctor.ID = "doc-9"
		deps.backend.On("FindAppointmentByID", mock.Anything, "tkn", "apt-1").Return(&other, nil)

		_, err := uc.UpdateAppointmentStatus(context.Background(), doctorSession, "apt-1", &requests.UpdateAppointmentStatus{Status: "completed"})
		assertStatus(t, err, constvars.StatusForbidden)
		deps.backend.AssertNotCalled(t, "UpdateAppointmentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Patient Cancels Own Appointment", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.backend.On("FindAppointmentByID", mock.Anything, "tkn", "apt-1").Return(existing, nil)
		deps.backend.On("UpdateAppointmentStatus", mock.Anything, "tkn", "apt-1", mock.Anything).Return(updated("cancelled"), nil)
		deps.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(nil)

		appointment, err := uc.UpdateAppointmentStatus(context.Background(), patientSession, "apt-1", &requests.UpdateAppointmentStatus{Status: "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, "cancelled", appointment.Status)
	})

	t.Run("Patient Cannot Confirm", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		_, err := uc.UpdateAppointmentStatus(context.Background(), patientSession, "apt-1", &requests.UpdateAppointmentStatus{Status: "confirmed"})
		assertStatus(t, err, constvars.StatusForbidden)
		deps.backend.AssertNotCalled(t, "FindAppointmentByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Admin Skips Ownership", func(t *testing.T) {
		uc, deps := newTestUsecase(0)
		deps.backend.On("UpdateAppointmentStatus", mock.Anything, "tkn", "apt-1", mock.Anything).Return(updated("completed"), nil)
		deps.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.UpdateAppointmentStatus(context.Background(), adminSession, "apt-1", &requests.UpdateAppointmentStatus{Status: "completed"})
		require.NoError(t, err)
		deps.backend.AssertNotCalled(t, "FindAppointmentByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		uc, _ := newTestUsecase(0)
		_, err := uc.UpdateAppointmentStatus(context.Background(), adminSession, "apt-1", &requests.UpdateAppointmentStatus{Status: "pending"})
		assertStatus(t, err, constvars.StatusBadRequest)
	})
}
