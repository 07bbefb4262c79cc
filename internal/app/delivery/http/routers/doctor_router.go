package routers

import (
	"chamber-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.ListDoctors)
	router.Get("/{doctorID}", doctorController.GetDoctor)
	router.Get("/{doctorID}/chamber-times", doctorController.GetChamberTimes)
}
