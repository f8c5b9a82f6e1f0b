package schedule

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/timetable/core"
)

var (
	weekdayTag  = "weekday"
	weekdayText = "unknown day, expected a day name such as Monday or Mon"

	clockTimeTag  = "clocktime"
	clockTimeText = "invalid time, expected a time such as 13:30 or 1:30pm"

	notBlankTag = "notblank"

	// normalization error kind for each failing tag
	tagKinds = map[string]error{
		weekdayTag:   ErrUnknownDay,
		clockTimeTag: ErrBadTime,
		notBlankTag:  ErrMissingField,
		"required":   ErrMissingField,
	}
)

// register custom validators
func init() {
	_ = core.Validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(weekdayTag, weekdayText)

	_ = core.Validate.RegisterValidation(clockTimeTag, clockTimeValidation)
	core.RegisterCustomTranslation(clockTimeTag, clockTimeText)
}

// Custom Validators

// weekdayValidation accepts anything ParseDay understands.
func weekdayValidation(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := ParseDay(s)
		return err == nil
	}
	return false
}

// clockTimeValidation accepts anything ParseTime understands.
func clockTimeValidation(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		_, err := ParseTime(s)
		return err == nil
	}
	return false
}
