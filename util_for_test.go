package pubhub

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pubhub/pubhub.go/internal/codec"
	"github.com/pubhub/pubhub.go/internal/fakeapi"
	"github.com/pubhub/pubhub.go/pkg/gateway"
)

// newTestClient wires a Client to a fake platform server that is torn
// down with the test.
func newTestClient(t *testing.T) (*Client, *fakeapi.Server) {
	t.Helper()

	srv := fakeapi.NewServer()
	t.Cleanup(srv.Close)

	gw, err := gateway.New(gateway.NewGatewayParams{
		BaseURL:     srv.URL(),
		Marshaler:   codec.JSON{},
		Unmarshaler: codec.JSON{},
	})
	require.NoError(t, err)

	client, err := NewClient(NewClientParams{Gateway: gw})
	require.NoError(t, err)

	return client, srv
}
