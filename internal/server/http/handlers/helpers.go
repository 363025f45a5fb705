package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/draft"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/domain/model"
	"github.com/pr-poehali-dev/dj-track-ordering-system/internal/server/http/middleware"
)

// CurrentSession extracts the moderation session placed by AdminRequired.
func CurrentSession(c *gin.Context) model.AdminSession {
	val, ok := c.Get(middleware.AdminSecretContextKey)
	if !ok {
		return model.AdminSession{}
	}
	secret, _ := val.(string)
	return model.AdminSession{Secret: secret}
}

// promoState builds a fresh draft carrying only the entered promo code.
func promoState(code string) draft.State {
	return draft.New().SetPromoCode(code)
}
