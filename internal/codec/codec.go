// Package codec is the encoding seam between the gateway and the wire.
// The platform API is JSON-only, but the gateway never names a concrete
// encoding so the classifier and the transport stay format-agnostic.
package codec

type Marshaler interface {
	Marshal(v any) ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
}
