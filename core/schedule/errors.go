package schedule

import (
	"errors"
	"fmt"
)

var (
	// time parser errors
	ErrInvalidFormat = errors.New("invalid time format")

	// normalization errors, carried by core.ValidationError.Err
	ErrUnknownDay     = errors.New("unknown day")
	ErrBadTime        = errors.New("bad time")
	ErrInvertedRange  = errors.New("end time must be after start time")
	ErrMissingField   = errors.New("missing field")
	errUnknownGroupBy = errors.New("unknown group key, expected instructor, room or section")
)

// ParseError is returned by ParseTime for input it cannot read as a time of day.
type ParseError struct {
	Input string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parsing time %q: %v", err.Input, err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }
