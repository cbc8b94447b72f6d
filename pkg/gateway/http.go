package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/pubhub/pubhub.go/internal/codec"
	"github.com/pubhub/pubhub.go/internal/rand"
	"github.com/pubhub/pubhub.go/pkg/constants"
	"github.com/pubhub/pubhub.go/pkg/logger"
)

type NewGatewayParams struct {
	BaseURL     string
	Marshaler   codec.Marshaler
	Unmarshaler codec.Unmarshaler
	Logger      logger.Logger
}

// HTTPGateway implements Gateway over net/http. The cookie jar carries
// the platform's session cookie between calls, which is the whole of
// the client's credential handling.
type HTTPGateway struct {
	baseURL     string
	marshaler   codec.Marshaler
	unmarshaler codec.Unmarshaler
	logger      logger.Logger

	httpClient *http.Client
}

var _ Gateway = (*HTTPGateway)(nil)

func New(p NewGatewayParams) (*HTTPGateway, error) {
	if p.BaseURL == "" {
		return nil, constants.ErrNoBaseURL
	}
	if p.Marshaler == nil {
		return nil, constants.ErrNoMarshaler
	}
	if p.Unmarshaler == nil {
		return nil, constants.ErrNoUnmarshaler
	}

	log := p.Logger
	if log == nil {
		log = logger.Discard{}
	}

	// cookiejar.New never fails with nil options.
	jar, _ := cookiejar.New(nil)

	return &HTTPGateway{
		baseURL:     p.BaseURL,
		marshaler:   p.Marshaler,
		unmarshaler: p.Unmarshaler,
		logger:      log,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: constants.DefaultTimeout,
		},
	}, nil
}

func (g *HTTPGateway) SetTimeout(timeout time.Duration) *HTTPGateway {
	g.httpClient.Timeout = timeout
	return g
}

// SetHTTPClient swaps the underlying client. A jar is attached if the
// given client has none, since the session cookie must survive across
// calls.
func (g *HTTPGateway) SetHTTPClient(client *http.Client) *HTTPGateway {
	if client.Jar == nil {
		client.Jar, _ = cookiejar.New(nil)
	}
	g.httpClient = client
	return g
}

func (g *HTTPGateway) Do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := g.marshaler.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	id := rand.String(constants.RequestIDLength)
	g.logger.Debug("calling PubHub API", "id", id, "method", method, "path", path)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("request failed", "id", id, "error", err)
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(data) == 0 {
		return constants.ErrEmptyResponse
	}

	if IsErrorPayload(data) {
		apiErr := &APIError{}
		if err := g.unmarshaler.Unmarshal(data, apiErr); err != nil {
			return fmt.Errorf("decode error payload: %w", err)
		}
		g.logger.Debug("API returned error payload", "id", id, "error", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := g.unmarshaler.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
