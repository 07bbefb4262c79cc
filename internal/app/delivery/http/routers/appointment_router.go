package routers

import (
	"chamber-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Booking is limited to patients by the route policy. Status transitions are
// checked per role by the usecase.
func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.ListAppointments)
	router.Post("/", appointmentController.CreateAppointment)
	router.Patch("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
}
