package inspection

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrPersonNotFound = errors.New("person not found")
	ErrDuplicateCycle = errors.New("inspection already recorded for this person and month")
	ErrUnknownItem    = errors.New("submission references an item not owned by this person")
	ErrIncomplete     = errors.New("submission does not cover all owned items")
)
