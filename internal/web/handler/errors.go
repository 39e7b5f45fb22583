package handler

import (
	"errors"
)

// ErrNilAppOrConfig is returned by Init when app or cfg is nil.
var ErrNilAppOrConfig = errors.New(ErrNilACFatalLogMsg)
