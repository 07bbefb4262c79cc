package routers

import (
	"chamber-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, medicalRecordController *controllers.MedicalRecordController) {
	router.Get("/", medicalRecordController.ListMedicalRecords)
	router.Get("/{recordID}", medicalRecordController.GetMedicalRecord)
}

func attachPrescriptionRoutes(router chi.Router, prescriptionController *controllers.PrescriptionController) {
	router.Get("/", prescriptionController.ListPrescriptions)
	router.Get("/{prescriptionID}", prescriptionController.GetPrescription)
	router.Post("/{prescriptionID}/export", prescriptionController.ExportPrescription)
}
