package usecase

import (
	"context"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/adapter/backend"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// CatalogUseCase serves the public read-only data. Reads go straight to
// the backend; only the playlist is cached, by the poller.
type CatalogUseCase struct {
	backend backend.Client
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(client backend.Client) *CatalogUseCase {
	return &CatalogUseCase{backend: client}
}

// Tariffs lists the published tariffs.
func (u *CatalogUseCase) Tariffs(ctx context.Context) ([]model.Tariff, error) {
	return u.backend.Tariffs(ctx)
}

// Settings reads the intake gate and the published promo code.
func (u *CatalogUseCase) Settings(ctx context.Context) (*model.Settings, error) {
	return u.backend.Settings(ctx)
}
