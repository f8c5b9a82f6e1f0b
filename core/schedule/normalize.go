package schedule

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/timetable/core"
)

// Normalize validates a raw schedule entry and builds its canonical Slot.
//
// Failures are *core.ValidationError values listing every offending field. Their Err is the kind of the
// first failing field (ErrUnknownDay, ErrBadTime or ErrMissingField), or ErrInvertedRange when each field
// is fine on its own but the start is not before the end. Match kinds with errors.Is.
func Normalize(raw RawSlot) (Slot, error) {
	raw = raw.clean()

	if err := core.Validate.Struct(raw); err != nil {
		vErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return Slot{}, err
		}
		return Slot{}, fieldsError(vErrs)
	}

	day, _ := ParseDay(raw.Day)
	start, _ := ParseTime(raw.Start)
	end, _ := ParseTime(raw.End)
	if start >= end {
		return Slot{}, core.NewValidationError(
			ErrInvertedRange,
			core.FieldError{Field: "end_time", Error: ErrInvertedRange.Error()},
		)
	}

	return Slot{
		ID:           raw.ID,
		Day:          day,
		StartMinute:  start,
		EndMinute:    end,
		Room:         raw.Room,
		Section:      raw.Section,
		InstructorID: raw.InstructorID,
		SubjectCode:  raw.SubjectCode,
	}, nil
}

// RecordError reports a record of a batch that failed normalization.
type RecordError struct {
	Index int
	Raw   RawSlot
	Err   error
}

func (err RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", err.Index, err.Err)
}

func (err RecordError) Unwrap() error { return err.Err }

// NormalizeAll normalizes a batch of records, typically an API export.
// Valid records keep their relative order; invalid ones are reported by index and left out.
func NormalizeAll(raws []RawSlot) (Set, []RecordError) {
	set := make(Set, 0, len(raws))
	var errs []RecordError
	for i, raw := range raws {
		slot, err := Normalize(raw)
		if err != nil {
			errs = append(errs, RecordError{Index: i, Raw: raw, Err: err})
			continue
		}
		set = append(set, slot)
	}
	return set, errs
}

func (raw RawSlot) clean() RawSlot {
	return RawSlot{
		ID:           core.CleanString(raw.ID),
		Day:          core.CleanString(raw.Day),
		Start:        core.CleanString(raw.Start),
		End:          core.CleanString(raw.End),
		Room:         core.CleanString(raw.Room),
		Section:      core.CleanString(raw.Section),
		InstructorID: core.CleanString(raw.InstructorID),
		SubjectCode:  core.CleanString(raw.SubjectCode),
	}
}

// fieldsError converts validator errors (reported in struct field order) into a *core.ValidationError.
func fieldsError(vErrs validator.ValidationErrors) error {
	flds := core.FromValidatorErrors(vErrs)
	for i, vErr := range vErrs {
		if vErr.Tag() != weekdayTag {
			continue
		}
		if s, ok := vErr.Value().(string); ok {
			if name, ok := suggestDay(s); ok {
				flds[i].Error += fmt.Sprintf(" (did you mean %s?)", name)
			}
		}
	}

	first := vErrs[0]
	kind, ok := tagKinds[first.Tag()]
	if !ok {
		kind = ErrMissingField
	}
	if kind == ErrBadTime {
		if s, ok := first.Value().(string); ok {
			if _, err := ParseTime(s); err != nil {
				kind = causeError{kind: ErrBadTime, cause: err}
			}
		}
	}
	return core.NewValidationError(kind, flds...)
}

// causeError is a normalization kind that keeps the error which triggered it.
// errors.Is matches the kind; errors.As reaches the cause.
type causeError struct {
	kind  error
	cause error
}

func (err causeError) Error() string { return err.kind.Error() + ": " + err.cause.Error() }

func (err causeError) Is(target error) bool { return target == err.kind }

func (err causeError) Unwrap() error { return err.cause }
