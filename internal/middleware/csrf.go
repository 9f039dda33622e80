package middleware

import (
	"net/http"

	"blackeagles/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// CSRF adapts gorilla/csrf to gin. Forms embed the token with csrf.TemplateField.
func CSRF(authKey []byte, secure bool) gin.HandlerFunc {
	protect := csrf.Protect(authKey,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.WithComponent("http").Warn("csrf rejected",
				zap.String("path", r.URL.Path),
				zap.Error(csrf.FailureReason(r)),
			)
			http.Error(w, "요청이 만료되었습니다. 페이지를 새로고침한 뒤 다시 시도해주세요.", http.StatusForbidden)
		})),
	)

	return func(c *gin.Context) {
		passed := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})

		r := c.Request
		if !secure {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protect(next).ServeHTTP(c.Writer, r)
		if !passed {
			c.Abort()
		}
	}
}
