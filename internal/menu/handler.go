package menu

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /menu: smart menu for the logged-in customer
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	customerID := c.GetString("userID")

	smart, err := h.service.SmartMenu(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": smart})
}

// --------------------------------------------------
// GET /menu/upsell?categories=Dessert,Beverages
// --------------------------------------------------
func (h *Handler) GetUpsellItems(c *gin.Context) {
	var categories []string
	if raw := c.Query("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				categories = append(categories, cat)
			}
		}
	}

	upsells, err := h.service.UpsellItems(c.Request.Context(), categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"upsell_items": upsells})
}
