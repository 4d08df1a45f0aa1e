package components

import (
	"gocery/internal/handler"
	"gocery/internal/handler/api"
	"gocery/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewCartHandler,
		api.NewWishlistHandler,
		api.NewComparisonHandler,
		api.NewOrderHandler,
		api.NewCouponHandler,
		api.NewReviewHandler,
		api.NewNotificationHandler,
		api.NewAssistantHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	product *api.ProductHandler,
	cart *api.CartHandler,
	wishlist *api.WishlistHandler,
	comparison *api.ComparisonHandler,
	order *api.OrderHandler,
	coupon *api.CouponHandler,
	review *api.ReviewHandler,
	notification *api.NotificationHandler,
	assistant *api.AssistantHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Product:      product,
		Cart:         cart,
		Wishlist:     wishlist,
		Comparison:   comparison,
		Order:        order,
		Coupon:       coupon,
		Review:       review,
		Notification: notification,
		Assistant:    assistant,
	}
}
