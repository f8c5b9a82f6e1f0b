package testutil

import (
	"testing"

	"github.com/trezcool/timetable/core/schedule"
)

// CreateSlot normalizes a slot from its raw fields and fails the test if that is not possible.
func CreateSlot(
	t *testing.T,
	day, start, end string,
	room, section, instructorID, subjectCode string,
	id ...string,
) schedule.Slot {
	t.Helper()
	raw := schedule.RawSlot{
		Day:          day,
		Start:        start,
		End:          end,
		Room:         room,
		Section:      section,
		InstructorID: instructorID,
		SubjectCode:  subjectCode,
	}
	if len(id) > 0 {
		raw.ID = id[0]
	}
	slot, err := schedule.Normalize(raw)
	if err != nil {
		t.Fatalf("CreateSlot() failed: %v", err)
	}
	return slot
}

// Slot builds a slot from minutes directly, for tests that do not exercise normalization.
func Slot(day schedule.Day, start, end int, room, section, instructorID string) schedule.Slot {
	return schedule.Slot{
		Day:          day,
		StartMinute:  start,
		EndMinute:    end,
		Room:         room,
		Section:      section,
		InstructorID: instructorID,
		SubjectCode:  "SUBJ",
	}
}
