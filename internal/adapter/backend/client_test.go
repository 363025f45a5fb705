package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainErrors "github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/errors"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testURLs(base string) URLs {
	return URLs{
		Orders:   base + "/orders",
		Settings: base + "/settings",
		Playlist: base + "/playlist",
		Tariffs:  base + "/tariffs",
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewHTTPClient(testURLs(server.URL), time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, server
}

func TestNewHTTPClientValidatesURLs(t *testing.T) {
	urls := testURLs("http://localhost")
	urls.Orders = "://bad-url"
	if _, err := NewHTTPClient(urls, time.Second, testLogger()); err == nil {
		t.Fatal("expected error for invalid orders url")
	}

	urls = testURLs("http://localhost")
	urls.Playlist = "/relative"
	if _, err := NewHTTPClient(urls, time.Second, testLogger()); err == nil {
		t.Fatal("expected error for relative playlist url")
	}
}

func TestHTTPClientCreateOrderSendsDraftAndPrice(t *testing.T) {
	var received map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode submission: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.Order{ID: 5, TrackName: "One More Time", Price: 1600})
	}))

	draft := model.OrderDraft{TrackName: "One More Time", Artist: "Daft Punk", CustomerName: "Alex", Tariff: "express"}
	order, err := client.CreateOrder(context.Background(), draft, 1600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID != 5 {
		t.Fatalf("expected order id 5, got %d", order.ID)
	}
	if received["price"] != float64(1600) {
		t.Fatalf("expected price 1600 in payload, got %v", received["price"])
	}
	if received["track_name"] != "One More Time" {
		t.Fatalf("expected draft fields in payload, got %v", received)
	}
}

func TestHTTPClientCreateOrderRejection(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "duplicate track"}`))
	}))

	_, err := client.CreateOrder(context.Background(), model.OrderDraft{}, 500)
	var rejection RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rejection.Reason != "duplicate track" {
		t.Fatalf("expected reason to be parsed, got %q", rejection.Reason)
	}
}

func TestHTTPClientOrdersForwardsSecret(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(AuthHeader); got != "dj-secret" {
			t.Fatalf("expected admin header, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]model.Order{{ID: 1}, {ID: 2}})
	}))

	orders, err := client.Orders(context.Background(), "dj-secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}

func TestHTTPClientUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Orders(context.Background(), "wrong")
	if !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestHTTPClientServerErrorMapsToUnavailable(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Settings(context.Background())
	if !errors.Is(err, domainErrors.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestHTTPClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewHTTPClient(testURLs(server.URL), time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	_, err = client.Tariffs(context.Background())
	if !errors.Is(err, domainErrors.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}

func TestHTTPClientDeleteOrderUsesQueryID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if got := r.URL.Query().Get("id"); got != "42" {
			t.Fatalf("expected id=42 in query, got %q", got)
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.DeleteOrder(context.Background(), "dj-secret", 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHTTPClientUpdateSettingsSendsPartialUpdate(t *testing.T) {
	var received map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode update: %v", err)
		}
		_ = json.NewEncoder(w).Encode(model.Settings{IsAcceptingOrders: false})
	}))

	closed := false
	settings, err := client.UpdateSettings(context.Background(), "dj-secret", model.SettingsUpdate{IsAcceptingOrders: &closed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.IsAcceptingOrders {
		t.Fatal("expected intake to be closed")
	}
	if _, ok := received["promo_code"]; ok {
		t.Fatalf("expected promo_code to be omitted, got %v", received)
	}
	if received["is_accepting_orders"] != false {
		t.Fatalf("expected is_accepting_orders=false, got %v", received)
	}
}

func TestHTTPClientPlaylist(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlist" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]model.PlaylistTrack{{ID: 1, TrackName: "Da Funk", Artist: "Daft Punk", IsPlaying: true}})
	}))

	tracks, err := client.Playlist(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 || !tracks[0].IsPlaying {
		t.Fatalf("unexpected tracks: %+v", tracks)
	}
}
