package registry

import "errors"

var (
	ErrBadHeader      = errors.New("import file is missing required columns")
	ErrPersonNotFound = errors.New("person not found")
)
