package draft

import (
	"strings"

	domainErrors "github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/errors"
)

// PromoState tracks redemption of the single published promo code.
// Applied may only be true while the entered code matches ActiveCode
// case-insensitively; editing the entered code revokes it (SetPromoCode).
type PromoState struct {
	ActiveCode string
	Applied    bool
}

// SetActiveCode records the code currently published in settings. An
// empty code disables the feature and drops any applied discount.
func (s State) SetActiveCode(code string) State {
	s.Promo.ActiveCode = code
	if code == "" {
		s.Promo.Applied = false
	}
	return s
}

// ApplyPromo attempts to redeem the entered code against the active one.
// Matching is purely local; the backend sees only the resulting price.
func (s State) ApplyPromo() (State, error) {
	if s.Promo.Applied {
		return s, domainErrors.ErrPromoAlreadyApplied
	}
	if s.Promo.ActiveCode == "" {
		return s, domainErrors.ErrPromoNotActive
	}
	if s.Draft.PromoCode == "" {
		return s, domainErrors.ErrPromoMismatch
	}
	if !strings.EqualFold(s.Draft.PromoCode, s.Promo.ActiveCode) {
		return s, domainErrors.ErrPromoMismatch
	}
	s.Promo.Applied = true
	return s, nil
}
