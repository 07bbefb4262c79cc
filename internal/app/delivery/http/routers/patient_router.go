package routers

import (
	"chamber-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.ListPatients)
	router.Get("/{patientID}", patientController.GetPatient)
	router.Patch("/{patientID}/verify", patientController.VerifyPatient)
	router.Patch("/{patientID}/status", patientController.UpdatePatientStatus)
}
