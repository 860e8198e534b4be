package delivery

import (
	"errors"
	"fmt"
	"net/http"

	authdomain "contacts-backend/internal/auth/domain"
	"contacts-backend/internal/auth/dto"
	"contacts-backend/internal/auth/token"
	"contacts-backend/internal/auth/usecase"
	"contacts-backend/internal/shared"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles user and token HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	tokens      *token.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, tokens *token.Service) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		tokens:      tokens,
	}
}

// Register creates a new user
// POST /api/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	user, err := h.authUsecase.Register(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", "/api/users/"+user.ID)
	c.JSON(http.StatusCreated, gin.H{"username": user.Username})
}

// GetUser returns a user's public profile
// GET /api/users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// Token issues a fresh bearer token for the authenticated user
// GET /api/token
func (h *AuthHandler) Token(c *gin.Context) {
	userID := c.GetString("userID")

	tok, err := h.tokens.Issue(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:    tok,
		Duration: int(h.tokens.TTL().Seconds()),
	})
}

// Resource returns a greeting for the authenticated user
// GET /api/resource
func (h *AuthHandler) Resource(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)
	c.JSON(http.StatusOK, gin.H{"data": fmt.Sprintf("Hello, %s!", user.Username)})
}
