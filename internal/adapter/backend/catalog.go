package backend

import (
	"context"
	"net/http"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// Settings reads the singleton settings record.
func (c *HTTPClient) Settings(ctx context.Context) (*model.Settings, error) {
	var settings model.Settings
	if err := c.do(ctx, http.MethodGet, c.settings, "", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings writes a partial settings update and returns the
// backend-confirmed record.
func (c *HTTPClient) UpdateSettings(ctx context.Context, secret string, upd model.SettingsUpdate) (*model.Settings, error) {
	var settings model.Settings
	if err := c.do(ctx, http.MethodPost, c.settings, secret, upd, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Tariffs lists the published tariffs.
func (c *HTTPClient) Tariffs(ctx context.Context) ([]model.Tariff, error) {
	var tariffs []model.Tariff
	if err := c.do(ctx, http.MethodGet, c.tariffs, "", nil, &tariffs); err != nil {
		return nil, err
	}
	return tariffs, nil
}

// SaveTariff replaces one tariff record, keyed by its tariff_id.
func (c *HTTPClient) SaveTariff(ctx context.Context, secret string, tariff model.Tariff) (*model.Tariff, error) {
	var saved model.Tariff
	if err := c.do(ctx, http.MethodPut, c.tariffs, secret, tariff, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Playlist reads the current playlist, newest first.
func (c *HTTPClient) Playlist(ctx context.Context) ([]model.PlaylistTrack, error) {
	var tracks []model.PlaylistTrack
	if err := c.do(ctx, http.MethodGet, c.playlist, "", nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

type trackPayload struct {
	TrackName string `json:"track_name"`
	Artist    string `json:"artist"`
}

// AddTrack appends a track; the backend marks it as the one playing.
func (c *HTTPClient) AddTrack(ctx context.Context, secret, trackName, artist string) (*model.PlaylistTrack, error) {
	var track model.PlaylistTrack
	payload := trackPayload{TrackName: trackName, Artist: artist}
	if err := c.do(ctx, http.MethodPost, c.playlist, secret, payload, &track); err != nil {
		return nil, err
	}
	return &track, nil
}
