package customer

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
// GET /profile
// --------------------------------------------------
func (h *Handler) GetProfile(c *gin.Context) {
	customerID := c.GetString("userID")
	email := c.GetString("userEmail")

	profile, err := h.service.ProfileFor(c.Request.Context(), customerID, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// --------------------------------------------------
// PUT /profile/preferences
// --------------------------------------------------
func (h *Handler) SavePreferences(c *gin.Context) {
	var prefs Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// The token, not the body, decides whose preferences change.
	prefs.Email = c.GetString("userEmail")

	if err := h.service.SavePreferences(c.Request.Context(), prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}
