package pubhub

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/pubhub/pubhub.go/internal/codec"
	"github.com/pubhub/pubhub.go/pkg/gateway"
	"github.com/pubhub/pubhub.go/pkg/logger"
)

var ErrNoGateway = errors.New("gateway is not set")

// NewClientParams configures a Client. Only Gateway is required.
type NewClientParams struct {
	Gateway gateway.Gateway
	Logger  logger.Logger

	// Preferences backs the two persisted UI settings. Without it they
	// are process-local.
	Preferences *viper.Viper

	// ColorScheme resolves the host preference behind the auto theme.
	ColorScheme ColorSchemeResolver
}

// Client bundles the platform stores, constructed once at process start
// and wired together by reference. There is no ambient global lookup:
// everything a store collaborates with is passed in here.
type Client struct {
	Auth         *AuthSession
	Users        *UserStore
	Publications *PublicationStore
	View         *ViewStore
	Theme        *ThemeStore
}

func NewClient(p NewClientParams) (*Client, error) {
	if p.Gateway == nil {
		return nil, ErrNoGateway
	}

	log := p.Logger
	if log == nil {
		log = logger.Discard{}
	}

	users := NewUserStore(p.Gateway, log)

	return &Client{
		Auth:         NewAuthSession(p.Gateway, users, log),
		Users:        users,
		Publications: NewPublicationStore(p.Gateway, log),
		View:         NewViewStore(p.Preferences),
		Theme:        NewThemeStore(p.Preferences, p.ColorScheme),
	}, nil
}

// FromEndpointURL builds a Client over the default HTTP gateway with
// the JSON codec, pointed at the platform's API base URL
// (e.g. https://pubhub.example.com/api).
func FromEndpointURL(baseURL string) (*Client, error) {
	gw, err := gateway.New(gateway.NewGatewayParams{
		BaseURL:     baseURL,
		Marshaler:   codec.JSON{},
		Unmarshaler: codec.JSON{},
	})
	if err != nil {
		return nil, err
	}

	return NewClient(NewClientParams{Gateway: gw})
}
