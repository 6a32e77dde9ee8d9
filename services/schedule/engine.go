// File: services/schedule/engine.go
package schedule

import (
	"fmt"
	"strings"
	"time"

	"medibook/models"
)

// The engine is pure computation over a ScheduleConfig snapshot: no I/O, no
// shared state. Callers may invoke it concurrently as long as they do not
// mutate the config mid-call.

const dateLayout = "2006-01-02"

// Default working hours applied to weekdays missing from a config.
const (
	defaultDayStart     = "09:00"
	defaultDayEnd       = "17:00"
	defaultSlotDuration = 30
)

// GenerateTimeSlots computes the ordered bookable slots for one calendar
// date. Disabled weekdays, unavailable dates, and degenerate working hours
// all yield an empty sequence; only an unparseable date is an error.
func GenerateTimeSlots(cfg models.ScheduleConfig, date string) ([]models.TimeSlot, error) {
	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	slots := []models.TimeSlot{}

	weekday := strings.ToLower(day.Weekday().String())
	hours, ok := cfg.WorkingHours[weekday]
	if !ok || !hours.Enabled {
		return slots, nil
	}

	// A holiday overrides the weekday configuration entirely.
	for _, u := range cfg.UnavailableDates {
		if u.Date == date {
			return slots, nil
		}
	}

	start, okStart := parseClock(hours.Start)
	end, okEnd := parseClock(hours.End)
	if !okStart || !okEnd || start >= end {
		return slots, nil
	}

	slotDur := cfg.TimeSlots.SlotDuration
	if slotDur <= 0 {
		// Malformed upstream data; the walk below would never terminate.
		return slots, nil
	}
	breakDur := cfg.TimeSlots.BreakDuration
	if breakDur < 0 {
		breakDur = 0
	}

	breaks := clockIntervals(cfg.TimeSlots.CustomBreaks)

	// Walk in minutes since midnight. The break only spaces out the next
	// slot's start; the slot itself always spans slotDur minutes.
	step := slotDur + breakDur
	for cur := start; cur+slotDur <= end; cur += step {
		if overlapsAny(cur, cur+slotDur, breaks) {
			continue
		}
		label := formatClock12(cur)
		slots = append(slots, models.TimeSlot{Value: label, Label: label})
	}
	return slots, nil
}

// GetAvailableDates lists the bookable dates over the next horizonDays days
// starting today. A date qualifies when its weekday is enabled and it is not
// marked unavailable; whether custom breaks leave any actual slots is checked
// only when the caller asks for that date's slots.
func GetAvailableDates(cfg models.ScheduleConfig, horizonDays int) []models.AvailableDate {
	dates := []models.AvailableDate{}
	today := time.Now()

	for i := 0; i < horizonDays; i++ {
		day := today.AddDate(0, 0, i)
		weekday := strings.ToLower(day.Weekday().String())
		hours, ok := cfg.WorkingHours[weekday]
		if !ok || !hours.Enabled {
			continue
		}
		value := day.Format(dateLayout)
		if isUnavailable(cfg.UnavailableDates, value) {
			continue
		}
		dates = append(dates, models.AvailableDate{
			Value: value,
			Label: day.Format("Mon, Jan 2"),
		})
	}
	return dates
}

// ValidateScheduleConfig fills a partial or zero config into a complete,
// internally consistent one. It never fails and is idempotent; both the
// schedule editor (first load) and the booking side (defensively) run configs
// through it before use. The input is not mutated.
func ValidateScheduleConfig(cfg models.ScheduleConfig) models.ScheduleConfig {
	out := cfg

	out.WorkingHours = make(map[string]models.WorkingDay, len(models.Weekdays))
	for _, weekday := range models.Weekdays {
		day, ok := cfg.WorkingHours[weekday]
		if !ok {
			day = models.WorkingDay{Enabled: isBusinessDay(weekday)}
		}
		if _, valid := parseClock(day.Start); !valid {
			day.Start = defaultDayStart
		}
		if _, valid := parseClock(day.End); !valid {
			day.End = defaultDayEnd
		}
		out.WorkingHours[weekday] = day
	}

	if out.TimeSlots.SlotDuration < 1 || out.TimeSlots.SlotDuration > 480 {
		out.TimeSlots.SlotDuration = defaultSlotDuration
	}
	if out.TimeSlots.BreakDuration < 0 || out.TimeSlots.BreakDuration > 60 {
		out.TimeSlots.BreakDuration = 0
	}

	// Drop break windows that could never exclude anything.
	out.TimeSlots.CustomBreaks = []models.CustomBreak{}
	for _, br := range cfg.TimeSlots.CustomBreaks {
		s, okS := parseClock(br.Start)
		e, okE := parseClock(br.End)
		if !okS || !okE || s >= e || br.Label == "" {
			continue
		}
		out.TimeSlots.CustomBreaks = append(out.TimeSlots.CustomBreaks, br)
	}

	out.UnavailableDates = []models.UnavailableDate{}
	for _, u := range cfg.UnavailableDates {
		if _, err := time.Parse(dateLayout, u.Date); err != nil {
			continue
		}
		out.UnavailableDates = append(out.UnavailableDates, u)
	}

	return out
}

type clockInterval struct {
	start int
	end   int
}

// clockIntervals converts custom breaks to minute intervals, skipping
// malformed entries rather than failing a booking-side read.
func clockIntervals(breaks []models.CustomBreak) []clockInterval {
	var out []clockInterval
	for _, br := range breaks {
		s, okS := parseClock(br.Start)
		e, okE := parseClock(br.End)
		if !okS || !okE || s >= e {
			continue
		}
		out = append(out, clockInterval{start: s, end: e})
	}
	return out
}

// overlapsAny reports whether [start, end) intersects any of the intervals.
func overlapsAny(start, end int, intervals []clockInterval) bool {
	for _, iv := range intervals {
		if start < iv.end && end > iv.start {
			return true
		}
	}
	return false
}

// parseClock converts a 24-hour "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// formatClock12 renders minutes since midnight as a 12-hour "HH:MM AM/PM"
// string, zero-padded the way the booking UI expects.
func formatClock12(minutes int) string {
	hour := minutes / 60
	min := minutes % 60

	suffix := "AM"
	display := hour
	switch {
	case hour == 0:
		display = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		display = hour - 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", display, min, suffix)
}

func isBusinessDay(weekday string) bool {
	return weekday != "saturday" && weekday != "sunday"
}

func isUnavailable(dates []models.UnavailableDate, date string) bool {
	for _, u := range dates {
		if u.Date == date {
			return true
		}
	}
	return false
}
