// File: services/schedule/interface.go
package schedule

import (
	"context"
	"time"

	"medibook/models"
)

// ScheduleService is the doctor-schedule surface consumed by the schedule
// editor and the patient booking form.
type ScheduleService interface {
	// GetDoctorSchedule returns the doctor's schedule, or a normalized
	// default config when none has been saved yet.
	GetDoctorSchedule(ctx context.Context, doctorID string) (*models.ScheduleConfig, error)

	// SaveDoctorSchedule validates, normalizes and persists a full-object
	// replace of the doctor's schedule.
	SaveDoctorSchedule(ctx context.Context, doctorID string, cfg models.ScheduleConfig) (*models.ScheduleConfig, error)

	// GetTimeSlots computes the bookable slots for one date.
	GetTimeSlots(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error)

	// GetAvailableDates lists bookable dates over the next horizonDays days;
	// pass horizonDays <= 0 for the service default.
	GetAvailableDates(ctx context.Context, doctorID string, horizonDays int) ([]models.AvailableDate, error)
}

// ConfigCache is the cache-with-TTL injected into the service for schedule
// reads. Implementations must treat every error as a miss-equivalent; the
// service never fails a request on cache trouble.
type ConfigCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
