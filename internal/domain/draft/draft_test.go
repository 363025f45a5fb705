package draft

import (
	"testing"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.Draft.Tariff != "standard" {
		t.Fatalf("expected standard tariff, got %q", s.Draft.Tariff)
	}
	if s.Draft.PaymentMethod != model.PaymentMethodOnline {
		t.Fatalf("expected online payment, got %q", s.Draft.PaymentMethod)
	}
	if s.Draft.HasCelebration {
		t.Fatal("celebration must be off by default")
	}
	if s.Draft.CelebrationCategory != model.CelebrationBirthday {
		t.Fatalf("expected birthday category preselected, got %q", s.Draft.CelebrationCategory)
	}
	if s.Promo.Applied {
		t.Fatal("fresh draft must not have promo applied")
	}
}

func TestSwitchingCelebrationCategoryClearsInput(t *testing.T) {
	s := New().
		SetCelebration(true).
		SetCelebrationText("Alina").
		SetCelebrationType("wedding")

	s = s.SetCelebrationCategory(model.CelebrationOther)

	if s.Draft.CelebrationText != "" || s.Draft.CelebrationType != "" {
		t.Fatalf("expected cleared celebration fields, got %q %q", s.Draft.CelebrationText, s.Draft.CelebrationType)
	}
	if s.Draft.CelebrationCategory != model.CelebrationOther {
		t.Fatalf("expected other category, got %q", s.Draft.CelebrationCategory)
	}
}

func TestSameCelebrationCategoryKeepsInput(t *testing.T) {
	s := New().SetCelebrationText("Alina").SetCelebrationCategory(model.CelebrationBirthday)
	if s.Draft.CelebrationText != "Alina" {
		t.Fatalf("re-selecting the same category must keep input, got %q", s.Draft.CelebrationText)
	}
}

func TestMissingRequired(t *testing.T) {
	cases := []struct {
		name    string
		state   State
		missing []string
	}{
		{"empty form", New(), []string{"track_name", "artist", "customer_name"}},
		{"whitespace only", New().SetTrack("  ", "\t"), []string{"track_name", "artist", "customer_name"}},
		{"complete", New().SetTrack("Song", "Artist").SetCustomer("Dan", ""), nil},
		{"phone optional", New().SetTrack("Song", "Artist").SetCustomer("Dan", "+7 999"), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.state.MissingRequired()
			if len(got) != len(tc.missing) {
				t.Fatalf("expected %v, got %v", tc.missing, got)
			}
			for i := range got {
				if got[i] != tc.missing[i] {
					t.Fatalf("expected %v, got %v", tc.missing, got)
				}
			}
		})
	}
}

func TestResetKeepsActiveCode(t *testing.T) {
	s := New().SetActiveCode("FREE2024").SetTrack("Song", "Artist")
	s, err := s.SetPromoCode("free2024").ApplyPromo()
	if err != nil {
		t.Fatalf("unexpected apply error: %v", err)
	}

	s = s.Reset()

	if s.Draft != New().Draft {
		t.Fatalf("expected pristine draft after reset, got %+v", s.Draft)
	}
	if s.Promo.Applied {
		t.Fatal("reset must drop applied promo")
	}
	if s.Promo.ActiveCode != "FREE2024" {
		t.Fatalf("reset must keep published code, got %q", s.Promo.ActiveCode)
	}
}
