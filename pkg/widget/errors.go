package widget

import (
	"errors"
)

// ErrInvalidConfiguration is returned when an enumerated option receives a value outside its allowed set.
var ErrInvalidConfiguration = errors.New("invalid configuration")
