package main

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/delivery/http/controllers"
	"chamber-portal-service/internal/app/delivery/http/middlewares"
	"chamber-portal-service/internal/app/delivery/http/routers"
	"chamber-portal-service/internal/app/drivers/database"
	"chamber-portal-service/internal/app/drivers/logger"
	"chamber-portal-service/internal/app/drivers/messaging"
	"chamber-portal-service/internal/app/drivers/storage"
	"chamber-portal-service/internal/app/services/backend"
	appointmentsBackend "chamber-portal-service/internal/app/services/backend/appointments"
	authBackend "chamber-portal-service/internal/app/services/backend/auth"
	doctorsBackend "chamber-portal-service/internal/app/services/backend/doctors"
	patientsBackend "chamber-portal-service/internal/app/services/backend/patients"
	prescriptionsBackend "chamber-portal-service/internal/app/services/backend/prescriptions"
	recordsBackend "chamber-portal-service/internal/app/services/backend/records"
	statisticsBackend "chamber-portal-service/internal/app/services/backend/statistics"
	"chamber-portal-service/internal/app/services/core/appointments"
	"chamber-portal-service/internal/app/services/core/auth"
	"chamber-portal-service/internal/app/services/core/dashboard"
	"chamber-portal-service/internal/app/services/core/doctors"
	"chamber-portal-service/internal/app/services/core/patients"
	"chamber-portal-service/internal/app/services/core/prescriptions"
	"chamber-portal-service/internal/app/services/core/records"
	"chamber-portal-service/internal/app/services/core/session"
	"chamber-portal-service/internal/app/services/shared/locker"
	"chamber-portal-service/internal/app/services/shared/notification"
	"chamber-portal-service/internal/app/services/shared/ratelimiter"
	"chamber-portal-service/internal/app/services/shared/redis"
	sharedStorage "chamber-portal-service/internal/app/services/shared/storage"
	"chamber-portal-service/internal/pkg/rbac"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Export.BucketName, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Address + ":" + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, log)
	bookingLimiter := ratelimiter.NewBookingLimiter(redisRepository, internalConfig, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	notificationPublisher, err := notification.NewNotificationPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.NotificationQueue, log)
	if err != nil {
		return err
	}

	// Backend
	backendClient := backend.NewClient(internalConfig, log)
	authBackendClient := authBackend.NewAuthBackendClient(backendClient)
	doctorBackendClient := doctorsBackend.NewDoctorBackendClient(backendClient)
	appointmentBackendClient := appointmentsBackend.NewAppointmentBackendClient(backendClient)
	patientBackendClient := patientsBackend.NewPatientBackendClient(backendClient)
	statisticsBackendClient := statisticsBackend.NewStatisticsBackendClient(backendClient)
	medicalRecordBackendClient := recordsBackend.NewMedicalRecordBackendClient(backendClient)
	prescriptionBackendClient := prescriptionsBackend.NewPrescriptionBackendClient(backendClient)

	// Usecases
	authUsecase := auth.NewAuthUsecase(authBackendClient, sessionService, internalConfig, log)
	dashboardUsecase := dashboard.NewDashboardUsecase(statisticsBackendClient, sessionService, log)
	doctorUsecase := doctors.NewDoctorUsecase(doctorBackendClient, redisRepository, sessionService, internalConfig, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentBackendClient,
		doctorUsecase,
		sessionService,
		lockerService,
		notificationPublisher,
		bookingLimiter,
		internalConfig,
		log,
	)
	patientUsecase := patients.NewPatientUsecase(patientBackendClient, sessionService, log)
	medicalRecordUsecase := records.NewMedicalRecordUsecase(medicalRecordBackendClient, sessionService, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionBackendClient, sessionService, minioStorage, internalConfig, log)

	// Doctor directory cache worker
	if internalConfig.Cache.DoctorCacheWorkerEnabled {
		worker := doctors.NewWorker(log, internalConfig, lockerService, doctorUsecase)
		worker.Start(context.Background())
		bootstrap.WorkerStop = worker.Stop
	}

	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	middlewareInstance := middlewares.NewMiddlewares(log, sessionService, enforcer, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewareInstance, &routers.Controllers{
		Auth:          controllers.NewAuthController(log, authUsecase, internalConfig),
		Dashboard:     controllers.NewDashboardController(log, dashboardUsecase, internalConfig),
		Doctor:        controllers.NewDoctorController(log, doctorUsecase, internalConfig),
		Appointment:   controllers.NewAppointmentController(log, appointmentUsecase, internalConfig),
		Patient:       controllers.NewPatientController(log, patientUsecase, internalConfig),
		MedicalRecord: controllers.NewMedicalRecordController(log, medicalRecordUsecase, internalConfig),
		Prescription:  controllers.NewPrescriptionController(log, prescriptionUsecase, internalConfig),
		Health:        controllers.NewHealthController(log, redisRepository, internalConfig),
	})

	return nil
}
