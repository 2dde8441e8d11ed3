package combo

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /combos?count=3 (today's combo deals)
// --------------------------------------------------
func (h *Handler) GetCombos(c *gin.Context) {
	count, _ := strconv.Atoi(c.DefaultQuery("count", "3"))

	deals, err := h.service.GenerateCombos(c.Request.Context(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"combos": deals})
}
