package handler

const (
	// RootPath is the root path the route group.
	RootPath = "/"

	// APIPath is the root of the versioned json api.
	APIPath = RootPath + "api/v1/"

	// ErrNilACIFatalLogMsg is used if app, cfg or the id provider is nil.
	ErrNilACIFatalLogMsg = "app, cfg or id provider is nil"
)
