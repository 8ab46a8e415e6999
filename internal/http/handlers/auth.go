package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/http/middleware"
	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	responder   *response.Responder
}

func NewAuthHandler(authService services.AuthService, responder *response.Responder) *AuthHandler {
	return &AuthHandler{authService: authService, responder: responder}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and plants the session cookie. The cookie is
// HTTP-only and same-site strict; its max age matches the token TTL.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	user, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, int(h.authService.SessionTTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name})
}

// Logout clears the cookie. Tokens are stateless, so there is nothing to
// revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
