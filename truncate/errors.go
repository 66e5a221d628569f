package truncate

import "errors"

// ErrInvalidArgument is returned when truncation parameters cannot be used together.
var ErrInvalidArgument = errors.New("invalid argument")
