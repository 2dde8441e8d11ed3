package cart

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

type saveRequest struct {
	Items []Line `json:"items"`
}

// --------------------------------------------------
// PUT /cart: replace the cart wholesale
// --------------------------------------------------
func (h *Handler) SaveCart(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customerID := c.GetString("userID")

	if err := h.service.Save(c.Request.Context(), customerID, req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	customerID := c.GetString("userID")

	lines, err := h.service.Get(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines})
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) ClearCart(c *gin.Context) {
	customerID := c.GetString("userID")

	if err := h.service.Clear(c.Request.Context(), customerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
