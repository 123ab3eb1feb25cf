package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// APIPrefix is the mount point of the JSON API.
	APIPrefix = "/api"

	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// RouterIDPath is the path of a single entity inside a route group.
	RouterIDPath = "/:id"

	// ErrNilDepsFatalLogMsg is used if the router or a required dependency is nil.
	ErrNilDepsFatalLogMsg = "router or dependencies are nil"

	// MsgInvalidBody is returned when a request body cannot be decoded.
	MsgInvalidBody = "invalid request body"

	// MsgInternal is returned for unexpected failures.
	MsgInternal = "internal server error"
)
