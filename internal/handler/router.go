package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gocery/internal/domain/user"
	"gocery/internal/handler/api"
	"gocery/internal/handler/middleware"
	"gocery/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Product      *api.ProductHandler
	Cart         *api.CartHandler
	Wishlist     *api.WishlistHandler
	Comparison   *api.ComparisonHandler
	Order        *api.OrderHandler
	Coupon       *api.CouponHandler
	Review       *api.ReviewHandler
	Notification *api.NotificationHandler
	Assistant    *api.AssistantHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Product.ListReviews},
			})

			adminOnly := products.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Product.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Product.Update},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPut, Path: "/items/:productId", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: h.Cart.RemoveItem},
			})
		}

		wishlist := apiGroup.Group("/wishlist")
		{
			// Toggle stays reachable for anonymous users so they get the
			// login-required signal instead of a blocked route.
			toggleGroup := wishlist.Group("")
			toggleGroup.Use(authMiddleware.OptionalAuth())
			addRoutes(toggleGroup, []route{
				{Method: http.MethodPost, Path: "/toggle", Handler: h.Wishlist.Toggle},
			})

			authRequired := wishlist.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Wishlist.Get},
			})
		}

		comparison := apiGroup.Group("/comparison")
		comparison.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(comparison, []route{
				{Method: http.MethodPost, Path: "/toggle", Handler: h.Comparison.Toggle},
				{Method: http.MethodGet, Path: "", Handler: h.Comparison.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Comparison.Clear},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Place},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Order.UpdateStatus,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: h.Coupon.Validate},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
			})
		}

		assistant := apiGroup.Group("/assistant")
		assistant.Use(authMiddleware.RequireAuth())
		{
			addRoutes(assistant, []route{
				{Method: http.MethodPost, Path: "/recipe", Handler: h.Assistant.SuggestRecipe},
				{Method: http.MethodPost, Path: "/describe", Handler: h.Assistant.DescribeProduct},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
