package middleware

import (
	"context"
	"net/http"

	"blackeagles/internal/session"
	"blackeagles/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminKey is set on the gin context once RequireAdmin lets a request through.
const AdminKey = "admin"

// LoginPath is where denied admin requests are sent.
const LoginPath = "/admin/login"

// Guard decides whether a session token may reach an admin route.
type Guard func(ctx context.Context, token string) bool

// RequireAdmin reads the session cookie and asks guard. Denied requests get a
// flash and a redirect to the login page.
func RequireAdmin(guard Guard, flasher *session.Flasher, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		if token != "" && guard(c.Request.Context(), token) {
			c.Set(AdminKey, true)
			c.Next()
			return
		}

		logger.WithComponent("http").Info("admin access denied",
			zap.String("path", c.Request.URL.Path),
			zap.String("ip", c.ClientIP()),
		)
		flasher.Add(c.Writer, c.Request, session.FlashError, "로그인이 필요합니다.")
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
	}
}
