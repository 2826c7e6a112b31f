package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// Field returns the message reported for `name`, if any.
func (err *ValidationError) Field(name string) (string, bool) {
	for _, fld := range err.Fields {
		if fld.Field == name {
			return fld.Error, true
		}
	}
	return "", false
}

// AsValidationError unwraps err down to its cause and reports whether it is a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	vErr, ok := errors.Cause(err).(*ValidationError)
	return vErr, ok
}
