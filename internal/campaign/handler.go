package campaign

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
// GET /campaigns
// --------------------------------------------------
func (h *Handler) GetCampaigns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"campaigns": h.service.Active(),
		"offers":    h.service.Offers(),
	})
}
