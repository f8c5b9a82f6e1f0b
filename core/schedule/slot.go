package schedule

import (
	"encoding/json"
	"fmt"
)

// RawSlot holds a schedule entry as entered in a form or as returned by the schedules API.
// Nothing in it is trusted until it goes through Normalize.
type RawSlot struct {
	ID           string `json:"id,omitempty"`
	Day          string `json:"day" validate:"weekday"`
	Start        string `json:"start_time" validate:"clocktime"`
	End          string `json:"end_time" validate:"clocktime"`
	Room         string `json:"room" validate:"notblank"`
	Section      string `json:"section" validate:"notblank"`
	InstructorID string `json:"instructor_id" validate:"notblank"`
	SubjectCode  string `json:"subject_code" validate:"notblank"`
}

// Slot is one scheduled occurrence of a subject: one day, one section, one room, one instructor, one time range.
// Slots are values built by Normalize; StartMinute < EndMinute always holds for them.
type Slot struct {
	ID           string
	Day          Day
	StartMinute  int
	EndMinute    int
	Room         string
	Section      string
	InstructorID string
	SubjectCode  string
}

// Set is an insertion-ordered collection of slots owned by the caller.
type Set []Slot

// Raw converts the slot back into its record form with `HH:MM` times.
func (s Slot) Raw() RawSlot {
	return RawSlot{
		ID:           s.ID,
		Day:          s.Day.String(),
		Start:        FormatTime(s.StartMinute, false),
		End:          FormatTime(s.EndMinute, false),
		Room:         s.Room,
		Section:      s.Section,
		InstructorID: s.InstructorID,
		SubjectCode:  s.SubjectCode,
	}
}

func (s Slot) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Raw())
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	var raw RawSlot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	slot, err := Normalize(raw)
	if err != nil {
		return err
	}
	*s = slot
	return nil
}

// Duration is the slot length in minutes.
func (s Slot) Duration() int { return s.EndMinute - s.StartMinute }

func (s Slot) String() string {
	return fmt.Sprintf("%s %s %s [%s] room %s by %s",
		s.Day, FormatRange(s.StartMinute, s.EndMinute, false), s.SubjectCode, s.Section, s.Room, s.InstructorID)
}

// Raw converts every slot of the set to its record form.
func (set Set) Raw() []RawSlot {
	raws := make([]RawSlot, 0, len(set))
	for _, s := range set {
		raws = append(raws, s.Raw())
	}
	return raws
}

// MarshalJSON encodes a nil set as an empty list.
func (set Set) MarshalJSON() ([]byte, error) {
	if set == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Slot(set))
}
