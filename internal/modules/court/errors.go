package court

import "errors"

var (
	ErrNotFound      = errors.New("court not found")
	ErrValidation    = errors.New("validation error")
	ErrInvalidHours  = errors.New("opening hour must be before closing hour")
	ErrInvalidStatus = errors.New("unknown court status")
)
