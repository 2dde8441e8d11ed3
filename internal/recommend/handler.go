package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /item-addons: cross-sell for one menu item
// --------------------------------------------------
func (h *Handler) GetAddOns(c *gin.Context) {
	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	email := c.GetString("userEmail")

	recs, err := h.service.AddOns(c.Request.Context(), email, req.ItemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"smart_recommendations": recs})
}

// --------------------------------------------------
// GET /combos/personalized: one AI bundle for me
// --------------------------------------------------
func (h *Handler) GetPersonalizedCombo(c *gin.Context) {
	email := c.GetString("userEmail")

	offer, err := h.service.AIComboFor(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if offer == nil {
		c.JSON(http.StatusOK, gin.H{"combo": nil, "message": "not enough menu data for a combo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"combo": offer})
}
