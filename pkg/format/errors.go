package format

import "errors"

// ErrMalformed is returned when input does not follow the expected format.
var ErrMalformed = errors.New("malformed graph input")
