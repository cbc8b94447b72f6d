// Package gateway is the transport layer between the stores and the
// PubHub REST API. It issues exactly one HTTP request per call, always
// with credentials (the session cookie), and classifies every response
// into a decoded success payload or an *APIError before anything
// downstream looks at it.
package gateway

import (
	"context"

	"github.com/tidwall/gjson"
)

// Gateway is the single seam the stores call through. method and path
// follow the endpoint table of the platform (e.g. POST /auth/login).
// body is marshaled as the request body when non-nil; the success
// payload is decoded into out when out is non-nil.
//
// A server-produced error payload comes back as *APIError; any other
// error is a transport failure (network, encoding). HTTP status codes
// carry no meaning of their own at this layer.
type Gateway interface {
	Do(ctx context.Context, method, path string, body, out any) error
}

// APIError is a well-formed error payload from the platform. Its
// message is surfaced to the user verbatim.
type APIError struct {
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// IsErrorPayload reports whether raw response bytes carry the
// platform's discriminated error shape (a JSON object with a string
// "error" field). It is the single authority for success/error
// classification; every response passes through it before any
// success-only field is read.
func IsErrorPayload(data []byte) bool {
	v := gjson.GetBytes(data, "error")
	return v.Exists() && v.Type == gjson.String
}
