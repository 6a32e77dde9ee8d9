// File: services/schedule/validation.go
package schedule

import (
	"fmt"
	"time"

	"medibook/models"
)

// Editor-side validation. Unlike ValidateScheduleConfig, which silently
// normalizes whatever it is given, these checks reject bad edits so the
// doctor sees the problem at save time instead of patients seeing empty
// booking days later.

// CheckScheduleConfig validates a full config as submitted by the schedule
// editor. It returns the first violation found.
func CheckScheduleConfig(cfg models.ScheduleConfig, now time.Time) error {
	if cfg.TimeSlots.SlotDuration < 1 || cfg.TimeSlots.SlotDuration > 480 {
		return fmt.Errorf("%w; got %d", ErrInvalidSlotDuration, cfg.TimeSlots.SlotDuration)
	}
	if cfg.TimeSlots.BreakDuration < 0 || cfg.TimeSlots.BreakDuration > 60 {
		return fmt.Errorf("%w; got %d", ErrInvalidBreakDuration, cfg.TimeSlots.BreakDuration)
	}

	for weekday, day := range cfg.WorkingHours {
		if !day.Enabled {
			continue
		}
		start, okStart := parseClock(day.Start)
		end, okEnd := parseClock(day.End)
		if !okStart || !okEnd || start >= end {
			return fmt.Errorf("%w: %s %s-%s", ErrInvalidWorkingHours, weekday, day.Start, day.End)
		}
	}

	for i, br := range cfg.TimeSlots.CustomBreaks {
		if err := CheckCustomBreak(br); err != nil {
			return fmt.Errorf("custom break %d: %w", i+1, err)
		}
	}

	for i, u := range cfg.UnavailableDates {
		if err := CheckUnavailableDate(u, now); err != nil {
			return fmt.Errorf("unavailable date %d: %w", i+1, err)
		}
	}
	return nil
}

// CheckCustomBreak validates a single break window: all three fields present
// and start strictly before end.
func CheckCustomBreak(br models.CustomBreak) error {
	if br.Start == "" || br.End == "" || br.Label == "" {
		return ErrInvalidCustomBreak
	}
	start, okStart := parseClock(br.Start)
	end, okEnd := parseClock(br.End)
	if !okStart || !okEnd || start >= end {
		return ErrInvalidCustomBreak
	}
	return nil
}

// CheckUnavailableDate validates a holiday entry: date and reason present,
// and the date not earlier than today relative to now.
func CheckUnavailableDate(u models.UnavailableDate, now time.Time) error {
	if u.Date == "" || u.Reason == "" {
		return ErrInvalidHoliday
	}
	day, err := time.ParseInLocation(dateLayout, u.Date, now.Location())
	if err != nil {
		return fmt.Errorf("%w: bad date %q", ErrInvalidHoliday, u.Date)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return fmt.Errorf("%w: %s", ErrPastHoliday, u.Date)
	}
	return nil
}
