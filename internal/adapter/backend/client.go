package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domainErrors "github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/errors"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// AuthHeader carries the shared admin secret on moderation calls.
const AuthHeader = "X-Admin-Auth"

// RejectionError is a validation-class refusal from the orders resource:
// HTTP 400 with an optional {"error": "..."} body.
type RejectionError struct {
	Reason string
}

func (e RejectionError) Error() string {
	if e.Reason == "" {
		return "order rejected by platform rules"
	}
	return fmt.Sprintf("order rejected: %s", e.Reason)
}

// Client exposes the four remote backend resources.
type Client interface {
	Settings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, secret string, upd model.SettingsUpdate) (*model.Settings, error)
	Tariffs(ctx context.Context) ([]model.Tariff, error)
	SaveTariff(ctx context.Context, secret string, tariff model.Tariff) (*model.Tariff, error)
	Playlist(ctx context.Context) ([]model.PlaylistTrack, error)
	AddTrack(ctx context.Context, secret, trackName, artist string) (*model.PlaylistTrack, error)
	Orders(ctx context.Context, secret string) ([]model.Order, error)
	CreateOrder(ctx context.Context, draft model.OrderDraft, price int) (*model.Order, error)
	UpdateOrder(ctx context.Context, secret string, id int64, status model.OrderStatus, payment model.PaymentStatus) (*model.Order, error)
	DeleteOrder(ctx context.Context, secret string, id int64) error
}

// URLs addresses the four backend functions. Each one is a standalone
// endpoint, there is no common base path.
type URLs struct {
	Orders   string
	Settings string
	Playlist string
	Tariffs  string
}

// HTTPClient implements Client over plain JSON HTTP.
type HTTPClient struct {
	orders     *url.URL
	settings   *url.URL
	playlist   *url.URL
	tariffs    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient validates resource URLs and builds the client.
func NewHTTPClient(urls URLs, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &HTTPClient{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}
	var err error
	if c.orders, err = parseResourceURL("orders", urls.Orders); err != nil {
		return nil, err
	}
	if c.settings, err = parseResourceURL("settings", urls.Settings); err != nil {
		return nil, err
	}
	if c.playlist, err = parseResourceURL("playlist", urls.Playlist); err != nil {
		return nil, err
	}
	if c.tariffs, err = parseResourceURL("tariffs", urls.Tariffs); err != nil {
		return nil, err
	}
	return c, nil
}

func parseResourceURL(name, raw string) (*url.URL, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s url: %w", name, err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("%s url must be absolute", name)
	}
	return parsed, nil
}

// do performs one request and decodes a JSON response into out (skipped
// when out is nil). Status handling is shared by every resource: 400 maps
// to RejectionError, 401/403 to ErrUnauthorized, other non-2xx and all
// transport errors to ErrBackendUnavailable.
func (c *HTTPClient) do(ctx context.Context, method string, endpoint *url.URL, secret string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if secret != "" {
		req.Header.Set(AuthHeader, secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: read body: %v", domainErrors.ErrBackendUnavailable, err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: decode body: %v", domainErrors.ErrBackendUnavailable, err)
		}
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		var rejection struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &rejection)
		return RejectionError{Reason: rejection.Error}
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return domainErrors.ErrUnauthorized
	default:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("backend request failed",
			slog.String("method", method),
			slog.String("url", endpoint.String()),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return fmt.Errorf("%w: %s", domainErrors.ErrBackendUnavailable, resp.Status)
	}
}

func withQueryID(endpoint *url.URL, id int64) *url.URL {
	u := *endpoint
	q := u.Query()
	q.Set("id", fmt.Sprintf("%d", id))
	u.RawQuery = q.Encode()
	return &u
}
