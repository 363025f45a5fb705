package usecase

import (
	"context"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/adapter/backend"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	domainErrors "github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/errors"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
)

// OrderUseCase drives the customer ordering workflow: quoting, promo
// redemption and submission.
type OrderUseCase struct {
	backend backend.Client
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(client backend.Client) *OrderUseCase {
	return &OrderUseCase{backend: client}
}

// Quote prices a draft against the currently published tariffs and promo
// code. The promo discount counts only when the customer has applied it.
func (u *OrderUseCase) Quote(ctx context.Context, state draft.State) (int, error) {
	settings, err := u.backend.Settings(ctx)
	if err != nil {
		return 0, err
	}
	state = state.SetActiveCode(settings.PromoCode)

	tariffs, err := u.backend.Tariffs(ctx)
	if err != nil {
		return 0, err
	}

	return ComputePrice(tariffs, state.Draft, state.Promo), nil
}

// ApplyPromo redeems an entered code against the published one. Matching
// is local to the gateway; nothing is written to the backend.
func (u *OrderUseCase) ApplyPromo(ctx context.Context, state draft.State) (draft.State, error) {
	settings, err := u.backend.Settings(ctx)
	if err != nil {
		return state, err
	}
	return state.SetActiveCode(settings.PromoCode).ApplyPromo()
}

// Submit runs the submission workflow: intake guard, required-field gate,
// pricing, backend POST. On success the returned state is reset to form
// defaults; every failure leaves the passed state untouched so the
// customer can retry.
func (u *OrderUseCase) Submit(ctx context.Context, state draft.State) (*model.Order, draft.State, error) {
	settings, err := u.backend.Settings(ctx)
	if err != nil {
		return nil, state, err
	}
	if !settings.IsAcceptingOrders {
		return nil, state, domainErrors.ErrIntakeClosed
	}

	priced := state.SetActiveCode(settings.PromoCode)
	if missing := priced.MissingRequired(); len(missing) > 0 {
		return nil, state, domainErrors.ErrMissingRequired
	}

	tariffs, err := u.backend.Tariffs(ctx)
	if err != nil {
		return nil, state, err
	}
	price := ComputePrice(tariffs, priced.Draft, priced.Promo)

	order, err := u.backend.CreateOrder(ctx, priced.Draft, price)
	if err != nil {
		return nil, state, err
	}

	return order, priced.Reset(), nil
}
