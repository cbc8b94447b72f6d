package constants

import "time"

const (
	HTTPScheme       = "http"
	HTTPSecureScheme = "https"

	// RequestIDLength is the length of the per-call correlation ID
	// attached to gateway log lines.
	RequestIDLength = 16

	// DefaultTimeout bounds a single round trip to the platform.
	DefaultTimeout = 10 * time.Second
)
