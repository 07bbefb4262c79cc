package utils

import (
	"chamber-portal-service/internal/pkg/dto/requests"
	"chamber-portal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBookingSelection(t *testing.T) {
	original := nowFunc
	nowFunc = func() time.Time { return time.Date(2024, time.January, 2, 15, 0, 0, 0, time.Local) }
	defer func() { nowFunc = original }()

	valid := requests.BookingSelection{
		DoctorID:        "doc-1",
		AppointmentDate: "2024-01-02",
		TimeSlot:        "9:00 AM - 12:00 PM",
		AppointmentType: "follow_up",
	}

	t.Run("Today Is Allowed", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid))
	})

	t.Run("Past Date", func(t *testing.T) {
		selection := valid
		selection.AppointmentDate = "2024-01-01"
		err := ValidateStruct(selection)
		require.Error(t, err)
		assert.Equal(t, "appointment date cannot be in the past", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Bad Date Format", func(t *testing.T) {
		selection := valid
		selection.AppointmentDate = "02/01/2024"
		err := ValidateStruct(selection)
		require.Error(t, err)
		assert.Equal(t, "appointmentdate must follow the format 2006-01-02", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Unknown Appointment Type", func(t *testing.T) {
		selection := valid
		selection.AppointmentType = "walk_in"
		err := ValidateStruct(selection)
		require.Error(t, err)
		assert.Equal(t, "appointmenttype must be one of [new, follow_up, report]", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Missing Time Slot", func(t *testing.T) {
		selection := valid
		selection.TimeSlot = ""
		err := ValidateStruct(selection)
		require.Error(t, err)
		assert.Equal(t, "timeslot is required", exceptions.FormatFirstValidationError(err))
	})
}
