package core

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	errBad := errors.New("bad input")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "kind only", err: NewValidationError(errBad), want: "bad input"},
		{
			name: "kind and fields",
			err:  NewValidationError(errBad, FieldError{Field: "room", Error: "required"}, FieldError{Field: "day", Error: "unknown"}),
			want: "bad input (room: required; day: unknown)",
		},
		{name: "fields only", err: NewValidationError(nil, FieldError{Field: "room", Error: "required"}), want: "room: required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	err := NewValidationError(errBad, FieldError{Field: "room", Error: "required"})
	assert.True(t, errors.Is(err, errBad))
	var vErr *ValidationError
	if assert.True(t, errors.As(err, &vErr)) {
		assert.Equal(t, map[string]string{"room": "required"}, vErr.FieldMap())
	}
}

func TestFromValidatorErrors(t *testing.T) {
	type form struct {
		Room string `json:"room" validate:"notblank"`
		Day  string `json:"day" validate:"required"`
		Note string `json:"-"`
	}

	err := Validate.Struct(form{Room: "  "})
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("Validate.Struct() error = %v, want validator.ValidationErrors", err)
	}
	flds := FromValidatorErrors(vErrs)
	assert.Equal(t, []FieldError{
		{Field: "room", Error: "this field cannot be blank"},
		{Field: "day", Error: "this field is required"},
	}, flds)
}
