package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACFatalLogMsg is used if app or cfg var pointer is nil.
	ErrNilACFatalLogMsg = "app or cfg is nil"
)
