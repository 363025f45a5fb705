package usecase

import (
	"testing"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

func standardTariffs() []model.Tariff {
	return []model.Tariff{
		{TariffID: "standard", Name: "Standard", Price: 500, TimeEstimate: "30 min"},
		{TariffID: "express", Name: "Express", Price: 1500, TimeEstimate: "5 min"},
	}
}

func TestComputePrice(t *testing.T) {
	cases := []struct {
		name    string
		tariffs []model.Tariff
		draft   model.OrderDraft
		promo   draft.PromoState
		want    int
	}{
		{
			name:    "selected tariff",
			tariffs: standardTariffs(),
			draft:   model.OrderDraft{Tariff: "express"},
			want:    1500,
		},
		{
			name:    "celebration surcharge",
			tariffs: standardTariffs(),
			draft:   model.OrderDraft{Tariff: "express", HasCelebration: true},
			want:    1600,
		},
		{
			name:  "unknown tariff falls back to 500",
			draft: model.OrderDraft{Tariff: "vip"},
			want:  500,
		},
		{
			name:  "fallback plus celebration",
			draft: model.OrderDraft{Tariff: "vip", HasCelebration: true},
			want:  600,
		},
		{
			name:    "applied promo zeroes everything",
			tariffs: standardTariffs(),
			draft:   model.OrderDraft{Tariff: "express", HasCelebration: true, PromoCode: "free2024"},
			promo:   draft.PromoState{ActiveCode: "FREE2024", Applied: true},
			want:    0,
		},
		{
			name:    "applied flag without matching code charges full price",
			tariffs: standardTariffs(),
			draft:   model.OrderDraft{Tariff: "express", PromoCode: "guessed"},
			promo:   draft.PromoState{ActiveCode: "FREE2024", Applied: true},
			want:    1500,
		},
		{
			name:    "applied flag with unpublished code charges full price",
			tariffs: standardTariffs(),
			draft:   model.OrderDraft{Tariff: "standard", PromoCode: "free"},
			promo:   draft.PromoState{Applied: true},
			want:    500,
		},
		{
			name:    "unapplied matching code still charges",
			tariffs: standardTariffs(),
			draft:   model.OrderDraft{Tariff: "standard", PromoCode: "FREE2024"},
			promo:   draft.PromoState{ActiveCode: "FREE2024"},
			want:    500,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePrice(tc.tariffs, tc.draft, tc.promo)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			// Pure function: same inputs, same output.
			if again := ComputePrice(tc.tariffs, tc.draft, tc.promo); again != got {
				t.Fatalf("expected deterministic result, got %d then %d", got, again)
			}
		})
	}
}

func TestComputePriceDoesNotMutateInputs(t *testing.T) {
	tariffs := standardTariffs()
	d := model.OrderDraft{Tariff: "express", HasCelebration: true}
	p := draft.PromoState{ActiveCode: "VIP"}

	_ = ComputePrice(tariffs, d, p)

	if tariffs[1].Price != 1500 || d.Tariff != "express" || p.ActiveCode != "VIP" {
		t.Fatal("inputs must not be mutated")
	}
}
