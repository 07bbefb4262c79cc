package routers

import (
	"chamber-portal-service/internal/app/config"
	"chamber-portal-service/internal/app/delivery/http/controllers"
	"chamber-portal-service/internal/app/delivery/http/middlewares"
	"chamber-portal-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Auth          *controllers.AuthController
	Dashboard     *controllers.DashboardController
	Doctor        *controllers.DoctorController
	Appointment   *controllers.AppointmentController
	Patient       *controllers.PatientController
	MedicalRecord *controllers.MedicalRecordController
	Prescription  *controllers.PrescriptionController
	Health        *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls *Controllers,
) {
	allowedOrigins := internalConfig.CORS.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(middlewares.RateLimit())
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.LimitRequestBody)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", ctrls.Health.Health)

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, ctrls.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)
				r.Use(middlewares.Authorize)

				r.Get("/dashboard", ctrls.Dashboard.GetDashboard)

				r.Route("/doctors", func(r chi.Router) {
					attachDoctorRoutes(r, ctrls.Doctor)
				})

				r.Route("/appointments", func(r chi.Router) {
					attachAppointmentRoutes(r, ctrls.Appointment)
				})

				r.Route("/patients", func(r chi.Router) {
					attachPatientRoutes(r, ctrls.Patient)
				})

				r.Route("/medical-records", func(r chi.Router) {
					attachMedicalRecordRoutes(r, ctrls.MedicalRecord)
				})

				r.Route("/prescriptions", func(r chi.Router) {
					attachPrescriptionRoutes(r, ctrls.Prescription)
				})
			})
		})
	})
}
