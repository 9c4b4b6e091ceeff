package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickhire/quickhire-api/internal/api/middleware"
	"github.com/quickhire/quickhire-api/internal/application"
	"github.com/quickhire/quickhire-api/pkg/response"
	"github.com/quickhire/quickhire-api/pkg/types"
)

const tokenLifetime = 24 * time.Hour

// AuthHandler issues and introspects admin session tokens.
type AuthHandler struct {
	svc *application.AuthService
}

func NewAuthHandler(svc *application.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body handlers.loginRequest true "Admin credentials"
// @Success 200 {object} response.Envelope "JWT token"
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("username and password are required"))
		return
	}

	if err := h.svc.VerifyAdmin(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, response.Error("Invalid username or password"))
		return
	}

	token, err := middleware.GenerateToken(req.Username, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error("Failed to generate token"))
		return
	}

	c.SetCookie("token", token, int(tokenLifetime.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response.OK(response.TokenData{
		Token:    token,
		Username: req.Username,
		IsAdmin:  true,
	}))
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Status godoc
// @Summary Token introspection
// @Tags auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	claims, ok := c.MustGet("claims").(*types.Claims)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error("Invalid token claims"))
		return
	}

	c.JSON(http.StatusOK, response.OK(gin.H{
		"username": claims.Username,
		"is_admin": claims.IsAdmin,
		"expires":  claims.ExpiresAt,
	}))
}

// Logout clears the token cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.OKMessage("Logged out"))
}
