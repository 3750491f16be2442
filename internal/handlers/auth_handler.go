package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smith-legal/staff-portal/internal/services"
	"github.com/smith-legal/staff-portal/internal/token"
	"github.com/smith-legal/staff-portal/internal/utils"
)

// AuthHandler serves login and logout.
type AuthHandler struct {
	BaseHandler
	authService   services.AuthService
	codec         *token.Codec
	sessionMaxAge time.Duration
}

// NewAuthHandler creates the authentication handler.
func NewAuthHandler(authService services.AuthService, codec *token.Codec, sessionMaxAge time.Duration, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   NewBaseHandler(logger),
		authService:   authService,
		codec:         codec,
		sessionMaxAge: sessionMaxAge,
	}
}

// LoginResponse is the success body for a login.
type LoginResponse struct {
	Message string                      `json:"message"`
	User    *services.AuthenticatedUser `json:"user"`
}

// Login authenticates a surname/password pair and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if req.Surname == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Surname and password are required",
		})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Surname, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	raw, err := h.codec.Mint(user.UserID, user.Surname)
	if err != nil {
		h.LogError(c, err, "Failed to mint session token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, raw, int(h.sessionMaxAge.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		User:    user,
	})
}

// Logout clears the session cookie. There is no server-side session to
// revoke; the cookie is the whole session.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, MessageResponse{Message: "Logout successful"})
}
