package constants

import "errors"

// Errors
var (
	ErrNoBaseURL     = errors.New("base url not set")
	ErrNoMarshaler   = errors.New("marshaler is not set")
	ErrNoUnmarshaler = errors.New("unmarshaler is not set")
	ErrEmptyResponse = errors.New("empty response from the PubHub API")
)
