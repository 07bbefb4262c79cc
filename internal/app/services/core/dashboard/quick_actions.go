package dashboard

import (
	"chamber-portal-service/internal/app/models"
	"chamber-portal-service/internal/pkg/dto/responses"
)

var quickActionsByRole = map[models.Role][]responses.QuickAction{
	models.RoleAdmin: {
		{Key: "doctors", Label: "Manage Doctors", Path: "/doctors"},
		{Key: "patients", Label: "Manage Patients", Path: "/patients"},
		{Key: "appointments", Label: "All Appointments", Path: "/appointments"},
	},
	models.RoleDoctor: {
		{Key: "appointments", Label: "Today's Appointments", Path: "/appointments"},
		{Key: "patients", Label: "My Patients", Path: "/patients"},
		{Key: "prescriptions", Label: "Prescriptions", Path: "/prescriptions"},
		{Key: "medical_records", Label: "Medical Records", Path: "/medical-records"},
	},
	models.RolePatient: {
		{Key: "book_appointment", Label: "Book Appointment", Path: "/doctors"},
		{Key: "appointments", Label: "My Appointments", Path: "/appointments"},
		{Key: "medical_records", Label: "Medical Records", Path: "/medical-records"},
		{Key: "prescriptions", Label: "Prescriptions", Path: "/prescriptions"},
	},
}

// quickActions returns a copy so callers may not alter the shared table.
func quickActions(role models.Role) []responses.QuickAction {
	actions := quickActionsByRole[role]
	return append([]responses.QuickAction(nil), actions...)
}
