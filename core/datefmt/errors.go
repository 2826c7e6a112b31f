package datefmt

import "errors"

var (
	// errors
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrUnknownFileType = errors.New("unknown file type")
)
