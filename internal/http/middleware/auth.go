package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/pkg/ctxutil"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

// SessionCookieName is the cookie the session token travels in.
const SessionCookieName = "session"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(baseLog *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		log:         baseLog.With("middleware", "AuthMiddleware"),
		authService: authService,
	}
}

// RequireAuth gates a route group on a valid session cookie. Missing,
// invalid, and expired cookies all yield 403.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorBody{Detail: "Not authenticated"})
			return
		}
		user, err := am.authService.VerifySession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorBody{Detail: "Not authenticated"})
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{
			UserID:   user.ID,
			Username: user.Name,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
