package handler

import (
	"errors"
	"net/http"
	"time"

	"blackeagles/internal/middleware"
	"blackeagles/internal/service"
	"blackeagles/internal/session"
	apperrors "blackeagles/pkg/app_errors"
	"blackeagles/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CookieOptions describes the admin session cookie.
type CookieOptions struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type AuthHandler struct {
	service service.AuthService
	pages   *Pages
	cookie  CookieOptions
}

func NewAuthHandler(service service.AuthService, pages *Pages, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{service: service, pages: pages, cookie: cookie}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET(middleware.LoginPath, h.LoginForm)
	r.POST(middleware.LoginPath, h.Login)
	r.GET("/admin/logout", h.Logout)
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	if token, _ := c.Cookie(h.cookie.Name); token != "" && h.service.Authorized(c, token) {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	h.pages.HTML(c, http.StatusOK, "admin/login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)

	sess, err := h.service.Login(c, form.Username, form.Password)
	if err != nil {
		log := logger.WithComponent("handler").With(zap.String("operation", "Login"), zap.Error(err))
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			log.Warn("Invalid credentials", zap.String("ip", c.ClientIP()))
			h.pages.Redirect(c, middleware.LoginPath, session.FlashError, "아이디 또는 비밀번호가 잘못되었습니다.")
			return
		}
		log.Error("Login failed")
		h.pages.Redirect(c, middleware.LoginPath, session.FlashError, "로그인 처리 중 오류가 발생했습니다.")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sess.Token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
	h.pages.Redirect(c, "/admin", session.FlashSuccess, "로그인 성공!")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)
	if err := h.service.Logout(c, token); err != nil {
		logger.WithComponent("handler").Error("Logout failed", zap.Error(err))
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	h.pages.Redirect(c, "/", session.FlashSuccess, "로그아웃되었습니다.")
}
