package draft

import (
	"strings"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// State bundles the order form draft with its promo redemption flow. All
// transitions are pure: they take a State by value and return the next one.
type State struct {
	Draft model.OrderDraft
	Promo PromoState
}

// DefaultTariffID is preselected on a fresh form.
const DefaultTariffID = "standard"

// New returns the initial form state: standard tariff, online payment,
// celebration off. The birthday category is preselected even while the
// celebration block is hidden, matching the rendered form.
func New() State {
	return State{Draft: model.OrderDraft{
		Tariff:              DefaultTariffID,
		PaymentMethod:       model.PaymentMethodOnline,
		CelebrationCategory: model.CelebrationBirthday,
	}}
}

// Reset discards everything except the published promo code. Called only
// after a confirmed successful submission.
func (s State) Reset() State {
	next := New()
	next.Promo.ActiveCode = s.Promo.ActiveCode
	return next
}

// SetTrack updates the requested track fields.
func (s State) SetTrack(name, artist string) State {
	s.Draft.TrackName = name
	s.Draft.Artist = artist
	return s
}

// SetCustomer updates the customer contact fields.
func (s State) SetCustomer(name, phone string) State {
	s.Draft.CustomerName = name
	s.Draft.CustomerPhone = phone
	return s
}

// SetTariff selects a tariff by its identifier.
func (s State) SetTariff(tariffID string) State {
	s.Draft.Tariff = tariffID
	return s
}

// SetCelebration toggles the celebration add-on. Sub-fields are kept so a
// re-enabled block shows what the customer already typed.
func (s State) SetCelebration(enabled bool) State {
	s.Draft.HasCelebration = enabled
	return s
}

// SetCelebrationCategory switches between birthday and other. Switching
// category discards the partial text input of the previous one.
func (s State) SetCelebrationCategory(category model.CelebrationCategory) State {
	if s.Draft.CelebrationCategory != category {
		s.Draft.CelebrationText = ""
		s.Draft.CelebrationType = ""
	}
	s.Draft.CelebrationCategory = category
	return s
}

// SetCelebrationText sets the free-text line of the celebration block.
func (s State) SetCelebrationText(text string) State {
	s.Draft.CelebrationText = text
	return s
}

// SetCelebrationType sets the occasion name for the "other" category.
func (s State) SetCelebrationType(kind string) State {
	s.Draft.CelebrationType = kind
	return s
}

// SetPaymentMethod records how the customer intends to pay.
func (s State) SetPaymentMethod(method model.PaymentMethod) State {
	s.Draft.PaymentMethod = method
	return s
}

// SetPromoCode edits the entered promo code. Any edit revokes a previously
// applied promo; the customer has to apply the new value again.
func (s State) SetPromoCode(code string) State {
	s.Draft.PromoCode = code
	s.Promo.Applied = false
	return s
}

// MissingRequired lists the required fields that are still empty.
// Only the track, artist and customer name gate submission; the phone and
// all celebration sub-fields are optional.
func (s State) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(s.Draft.TrackName) == "" {
		missing = append(missing, "track_name")
	}
	if strings.TrimSpace(s.Draft.Artist) == "" {
		missing = append(missing, "artist")
	}
	if strings.TrimSpace(s.Draft.CustomerName) == "" {
		missing = append(missing, "customer_name")
	}
	return missing
}
