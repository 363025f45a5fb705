package usecase

import (
	"strings"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

const (
	// FallbackPrice is charged when the selected tariff is not in the
	// published list (unknown id or list not yet loaded).
	FallbackPrice = 500
	// CelebrationSurcharge is added for the celebration add-on.
	CelebrationSurcharge = 100
)

// ComputePrice returns the total charge for a draft. Pure: the displayed
// quote and the submitted price both come from this one function.
func ComputePrice(tariffs []model.Tariff, d model.OrderDraft, p draft.PromoState) int {
	price := FallbackPrice
	for _, t := range tariffs {
		if t.TariffID == d.Tariff {
			price = t.Price
			break
		}
	}

	if d.HasCelebration {
		price += CelebrationSurcharge
	}

	// An applied promo zeroes the whole order, but only while the entered
	// code still matches the published one.
	if p.Applied && p.ActiveCode != "" && strings.EqualFold(d.PromoCode, p.ActiveCode) {
		return 0
	}

	return price
}
