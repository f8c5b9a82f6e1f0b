package schedule

import (
	"strings"

	"github.com/trezcool/timetable/core"
)

// ParseSlotString reads the "Monday, 8:00am-9:00am" strings older clients store for a schedule.
// The result is not checked for start < end; feed it to Normalize for that.
func ParseSlotString(s string) (day Day, start, end int, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, 0, core.NewValidationError(ErrBadTime, core.FieldError{Field: "schedule", Error: "expected \"Day, start-end\""})
	}
	if day, err = ParseDay(parts[0]); err != nil {
		return 0, 0, 0, core.NewValidationError(err, core.FieldError{Field: "day", Error: weekdayText})
	}

	times := strings.SplitN(parts[1], "-", 2)
	if len(times) != 2 {
		return 0, 0, 0, core.NewValidationError(ErrBadTime, core.FieldError{Field: "schedule", Error: "expected \"Day, start-end\""})
	}
	if start, err = ParseTime(times[0]); err != nil {
		return 0, 0, 0, core.NewValidationError(causeError{kind: ErrBadTime, cause: err}, core.FieldError{Field: "start_time", Error: clockTimeText})
	}
	if end, err = ParseTime(times[1]); err != nil {
		return 0, 0, 0, core.NewValidationError(causeError{kind: ErrBadTime, cause: err}, core.FieldError{Field: "end_time", Error: clockTimeText})
	}
	return day, start, end, nil
}

// RawFromSlotString builds a RawSlot out of a legacy schedule string and the entry's identifiers.
func RawFromSlotString(s string, room, section, instructorID, subjectCode string) (RawSlot, error) {
	day, start, end, err := ParseSlotString(s)
	if err != nil {
		return RawSlot{}, err
	}
	return RawSlot{
		Day:          day.String(),
		Start:        FormatTime(start, false),
		End:          FormatTime(end, false),
		Room:         room,
		Section:      section,
		InstructorID: instructorID,
		SubjectCode:  subjectCode,
	}, nil
}

// LegacyString renders a slot the way older clients display it, e.g. "Monday, 8:00am-9:00am".
func (s Slot) LegacyString() string {
	return s.Day.Full() + ", " + FormatRange(s.StartMinute, s.EndMinute, true)
}
