package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// PlaylistSource is the subset of the backend the poller needs.
type PlaylistSource interface {
	Playlist(ctx context.Context) ([]model.PlaylistTrack, error)
}

// PlaylistPoller refreshes an in-memory playlist snapshot on a fixed
// interval. A single instance runs per process; Stop cancels the ticker
// goroutine so no timer outlives the application.
type PlaylistPoller struct {
	source   PlaylistSource
	interval time.Duration
	logger   *slog.Logger

	mu     sync.RWMutex
	tracks []model.PlaylistTrack

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPlaylistPoller constructs the poller.
func NewPlaylistPoller(source PlaylistSource, interval time.Duration, logger *slog.Logger) *PlaylistPoller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &PlaylistPoller{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

// Start fills the snapshot once and launches the background refresh loop.
func (p *PlaylistPoller) Start(ctx context.Context) {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.refresh(runCtx)

	p.wg.Add(1)
	go p.loop(runCtx)
}

// Stop cancels the refresh loop and waits for it to finish.
func (p *PlaylistPoller) Stop() {
	p.runMu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.runMu.Unlock()

	p.wg.Wait()
}

// Snapshot returns the most recently fetched playlist. The slice is a
// copy, safe for the caller to keep.
func (p *PlaylistPoller) Snapshot() []model.PlaylistTrack {
	p.mu.RLock()
	defer p.mu.RUnlock()

	tracks := make([]model.PlaylistTrack, len(p.tracks))
	copy(tracks, p.tracks)
	return tracks
}

func (p *PlaylistPoller) loop(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// refresh keeps the previous snapshot when the backend is unreachable.
func (p *PlaylistPoller) refresh(ctx context.Context) {
	tracks, err := p.source.Playlist(ctx)
	if err != nil {
		p.logger.Error("playlist refresh failed", slog.String("error", err.Error()))
		return
	}

	p.mu.Lock()
	p.tracks = tracks
	p.mu.Unlock()
}
