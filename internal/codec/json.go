package codec

import (
	"github.com/goccy/go-json"
)

// JSON implements both Marshaler and Unmarshaler for the platform's
// wire format. Success and error payloads alike are JSON.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}
