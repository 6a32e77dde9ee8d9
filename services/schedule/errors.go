package schedule

import "errors"

// ErrInvalidDate signals an unparseable date argument. Dates reach the
// service from a controlled picker, so this is a caller bug rather than a
// user-facing condition.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// Validation errors returned when a schedule save is rejected.
var (
	ErrInvalidSlotDuration  = errors.New("slot duration must be between 1 and 480 minutes")
	ErrInvalidBreakDuration = errors.New("break duration must be between 0 and 60 minutes")
	ErrInvalidWorkingHours  = errors.New("working hours start must be before end")
	ErrInvalidCustomBreak   = errors.New("custom break requires start, end and label, with start before end")
	ErrInvalidHoliday       = errors.New("unavailable date requires a date and a reason")
	ErrPastHoliday          = errors.New("unavailable date must not be in the past")
)
