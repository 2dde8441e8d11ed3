package order

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartClearer lets a successful order empty the customer's cart.
// The cart service satisfies it; a nil clearer skips the step.
type CartClearer interface {
	Clear(ctx context.Context, customerID string) error
}

type Handler struct {
	service *Service
	export  *ExportService
	carts   CartClearer
}

func NewHandler(service *Service, export *ExportService, carts CartClearer) *Handler {
	return &Handler{service: service, export: export, carts: carts}
}

type checkoutRequest struct {
	CartItems []CartItem `json:"cart_items"`
}

// --------------------------------------------------
// POST /checkout: pricing preview for the cart
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customerID := c.GetString("userID")

	result, err := h.service.Checkout(c.Request.Context(), customerID, req.CartItems)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pricing": result})
}

// --------------------------------------------------
// POST /orders: place the order permanently
// --------------------------------------------------
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customerID := c.GetString("userID")
	customerName := c.GetString("userName")
	if customerName == "" {
		customerName = "Guest"
	}

	order, err := h.service.Place(c.Request.Context(), customerID, customerName, req.CartItems)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.carts != nil {
		if err := h.carts.Clear(c.Request.Context(), customerID); err != nil {
			h.service.logger.Warn("cart clear after order failed", zap.String("customer", customerID), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"order_id": order.ID,
		"total":    order.Price,
	})
}

// --------------------------------------------------
// GET /orders/:id/track
// --------------------------------------------------
func (h *Handler) TrackOrder(c *gin.Context) {
	message, err := h.service.Track(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// --------------------------------------------------
// GET /orders/history
// --------------------------------------------------
func (h *Handler) OrderHistory(c *gin.Context) {
	customerID := c.GetString("userID")

	orders, err := h.service.History(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// POST /admin/orders/export: CSV snapshot to object storage
// --------------------------------------------------
func (h *Handler) ExportOrders(c *gin.Context) {
	if h.export == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "export not configured"})
		return
	}

	url, err := h.export.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"export_url": url})
}
