package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/auth"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/campaign"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/cart"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/combo"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/customer"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/menu"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/middleware"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/order"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/recommend"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Menu      *menu.Handler
	Recommend *recommend.Handler
	Combo     *combo.Handler
	Order     *order.Handler
	Cart      *cart.Handler
	Customer  *customer.Handler
	Campaign  *campaign.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── CUSTOMER ROUTES ─────────────────────────
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/menu", h.Menu.GetMenu)
		authed.GET("/menu/upsell", h.Menu.GetUpsellItems)

		authed.POST("/item-addons", h.Recommend.GetAddOns)
		authed.GET("/combos", h.Combo.GetCombos)
		authed.GET("/combos/personalized", h.Recommend.GetPersonalizedCombo)

		authed.POST("/checkout", h.Order.Checkout)
		authed.POST("/orders", h.Order.PlaceOrder)
		authed.GET("/orders/:id/track", h.Order.TrackOrder)
		authed.GET("/orders/history", h.Order.OrderHistory)

		authed.PUT("/cart", h.Cart.SaveCart)
		authed.GET("/cart", h.Cart.GetCart)
		authed.DELETE("/cart", h.Cart.ClearCart)

		authed.GET("/campaigns", h.Campaign.GetCampaigns)

		authed.GET("/profile", h.Customer.GetProfile)
		authed.PUT("/profile/preferences", h.Customer.SavePreferences)
	}

	// ───────────────────────── ADMIN ROUTES ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.POST("/orders/export", h.Order.ExportOrders)
	}

	return r
}
