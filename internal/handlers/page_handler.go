package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smith-legal/staff-portal/internal/utils"
)

// PageHandler serves the minimal browser pages. Rendering is intentionally
// thin; the pages are static assets and all data flows through the JSON API.
type PageHandler struct {
	BaseHandler
	staticDir string
}

// NewPageHandler creates the page handler serving files from staticDir.
func NewPageHandler(staticDir string, logger utils.Logger) *PageHandler {
	return &PageHandler{
		BaseHandler: NewBaseHandler(logger),
		staticDir:   staticDir,
	}
}

// LoginPage serves the login form, redirecting visitors who already hold a
// valid session straight to the home page.
func (h *PageHandler) LoginPage(c *gin.Context) {
	if _, ok := currentUserID(c); ok {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	c.File(h.staticDir + "/login.html")
}

// HomePage serves the dashboard shell. The route is auth-gated.
func (h *PageHandler) HomePage(c *gin.Context) {
	c.File(h.staticDir + "/home.html")
}
