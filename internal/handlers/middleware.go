package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smith-legal/staff-portal/internal/token"
	"github.com/smith-legal/staff-portal/internal/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_token"

// Context keys populated by the session middleware.
const (
	ctxUserIDKey  = "user_id"
	ctxSurnameKey = "surname"
)

// SetupMiddleware sets up the common middleware chain for the Gin router.
func SetupMiddleware(router *gin.Engine, logger utils.Logger) {
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(SecurityMiddleware())
}

// SessionAuthMiddleware resolves the current user from the session cookie.
type SessionAuthMiddleware struct {
	codec *token.Codec
}

// NewSessionAuthMiddleware creates the session middleware around the codec.
func NewSessionAuthMiddleware(codec *token.Codec) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{codec: codec}
}

// RequireAuth rejects requests without a valid session. Browser-style
// requests (Accept includes text/html) are redirected to the login page;
// API callers get a 401 JSON body.
func (m *SessionAuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookieName)
		if err != nil || raw == "" {
			m.reject(c, "Not authenticated")
			return
		}

		sess, ok := m.codec.Verify(raw)
		if !ok {
			m.reject(c, "Invalid or expired session")
			return
		}

		c.Set(ctxUserIDKey, sess.UserID)
		c.Set(ctxSurnameKey, sess.Surname)
		c.Next()
	}
}

// OptionalAuth resolves the session if present and valid, and continues
// either way. Used only to steer authenticated visitors off the login page.
func (m *SessionAuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			if sess, ok := m.codec.Verify(raw); ok {
				c.Set(ctxUserIDKey, sess.UserID)
				c.Set(ctxSurnameKey, sess.Surname)
			}
		}
		c.Next()
	}
}

func (m *SessionAuthMiddleware) reject(c *gin.Context, msg string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: msg})
}

// currentUserID returns the authenticated account id set by RequireAuth.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// CORSMiddleware handles cross-origin requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers.
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
