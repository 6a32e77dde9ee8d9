// File: models/schedule.go
package models

import "time"

// WorkingDay describes the bookable time-of-day range for one weekday.
// Start and End are 24-hour "HH:MM" wall-clock strings.
type WorkingDay struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Start   string `bson:"start" json:"start"`
	End     string `bson:"end" json:"end"`
}

// CustomBreak is a named clock-time exclusion window (e.g. lunch) applied
// to every enabled weekday.
type CustomBreak struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
	Label string `bson:"label" json:"label"`
}

// TimeSlotSettings controls how slots are cut from the working hours.
type TimeSlotSettings struct {
	SlotDuration  int           `bson:"slotDuration" json:"slotDuration"`   // minutes per appointment
	BreakDuration int           `bson:"breakDuration" json:"breakDuration"` // minutes between appointments
	CustomBreaks  []CustomBreak `bson:"customBreaks" json:"customBreaks"`
}

// UnavailableDate marks a full calendar date (YYYY-MM-DD) on which the
// doctor takes no appointments regardless of weekday configuration.
type UnavailableDate struct {
	Date   string `bson:"date" json:"date"`
	Reason string `bson:"reason" json:"reason"`
}

// ScheduleConfig is the persisted per-doctor schedule document. It is owned
// by the doctor and replaced as a whole on every save; the booking side only
// ever reads it.
type ScheduleConfig struct {
	ID               string                `bson:"id" json:"id"`
	DoctorID         string                `bson:"doctorId" json:"doctorId"`
	WorkingHours     map[string]WorkingDay `bson:"workingHours" json:"workingHours"`
	TimeSlots        TimeSlotSettings      `bson:"timeSlots" json:"timeSlots"`
	UnavailableDates []UnavailableDate     `bson:"unavailableDates" json:"unavailableDates"`
	UpdatedAt        time.Time             `bson:"updatedAt" json:"updatedAt"`
}

// TimeSlot is one bookable window on a concrete date. Value and Label carry
// the same 12-hour "HH:MM AM/PM" string; booking clients submit Value and
// render Label.
type TimeSlot struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// AvailableDate is one bookable calendar date within the booking horizon.
// Value is "YYYY-MM-DD"; Label is a short human form like "Mon, Jan 15".
type AvailableDate struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Weekdays lists the lowercase weekday keys of ScheduleConfig.WorkingHours
// in calendar order starting from Monday.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}
