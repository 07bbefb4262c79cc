// Package chambertime turns a doctor's weekly chamber time into the slot
// options a patient can pick from when booking.
package chambertime

import (
	"chamber-portal-service/internal/app/models"
	"fmt"
	"time"
)

// TimeSlotOption is what the booking form lists. Value is sent back verbatim
// as the appointment's time slot.
type TimeSlotOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Resolution is the outcome of ResolveDetailed.
type Resolution struct {
	Weekday  string           `json:"weekday"`
	Fallback bool             `json:"fallback"`
	Options  []TimeSlotOption `json:"options"`
}

// Resolver resolves chamber times against a clock so "today" can be pinned in tests.
type Resolver struct {
	now func() time.Time
}

func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// Resolve lists the options for the weekday of candidateDate. A zero
// candidateDate means today. When that weekday has no chamber time, every
// weekday's times are listed in availability order.
func (r *Resolver) Resolve(availability models.DoctorAvailability, candidateDate time.Time) []TimeSlotOption {
	return r.ResolveDetailed(availability, candidateDate).Options
}

func (r *Resolver) ResolveDetailed(availability models.DoctorAvailability, candidateDate time.Time) Resolution {
	if candidateDate.IsZero() {
		candidateDate = r.now()
	}
	weekday := candidateDate.Weekday().String()

	resolution := Resolution{
		Weekday: weekday,
		Options: []TimeSlotOption{},
	}
	if len(availability) == 0 {
		return resolution
	}

	if times := availability.Lookup(weekday); len(times) > 0 {
		resolution.Options = appendOptions(resolution.Options, weekday, times)
		return resolution
	}

	resolution.Fallback = true
	for _, entry := range availability {
		resolution.Options = appendOptions(resolution.Options, entry.Weekday, entry.Times)
	}
	return resolution
}

// Contains reports whether value is one of the offered options.
func Contains(options []TimeSlotOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

func appendOptions(options []TimeSlotOption, weekday string, times []string) []TimeSlotOption {
	for _, t := range times {
		options = append(options, TimeSlotOption{
			Value: t,
			Label: fmt.Sprintf("%s (%s)", t, weekday),
		})
	}
	return options
}
