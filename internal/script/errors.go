package script

import "errors"

// Errors returned by the script host.
var (
	// ErrHostClosed indicates the host's Lua state has been shut down.
	ErrHostClosed = errors.New("script host is closed")
)
