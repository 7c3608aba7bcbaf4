package audit

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrAlreadySignedOff = errors.New("quarter is already signed off")
	ErrSignoffNotFound  = errors.New("no signoff recorded for this quarter")
)
