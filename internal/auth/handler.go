package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------------------------------------------------
// POST /auth/register
// --------------------------------------------------
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid request",
		})
		return
	}

	customer, err := h.service.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := GenerateToken(customer.ID, customer.Email, customer.Name, customer.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    customer.ID,
		"name":  customer.Name,
		"email": customer.Email,
		"token": token,
	})
}

// --------------------------------------------------
// POST /auth/login
// --------------------------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid request",
		})
		return
	}

	customer, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": ErrInvalidCredentials.Error()})
		return
	}

	token, err := GenerateToken(customer.ID, customer.Email, customer.Name, customer.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    customer.ID,
		"name":  customer.Name,
		"email": customer.Email,
		"token": token,
	})
}
