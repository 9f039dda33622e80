package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blackeagles/config"
	"blackeagles/internal/handler"
	"blackeagles/internal/session"
	"blackeagles/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

type testEnv struct {
	router  *gin.Engine
	flasher *session.Flasher
	pages   *handler.Pages
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.LoadTestConfig()
	flasher := session.NewFlasher(cfg.Server.Key("flash-hash"), cfg.Server.Key("flash-block"), false)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	router := gin.New()
	router.HTMLRender = renderer

	return &testEnv{
		router:  router,
		flasher: flasher,
		pages:   handler.NewPages(flasher, func() time.Time { return fixedNow }),
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// flashes decodes the flash cookie a redirect left behind.
func (e *testEnv) flashes(t *testing.T, w *httptest.ResponseRecorder) []session.Flash {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return e.flasher.Pop(httptest.NewRecorder(), req)
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
