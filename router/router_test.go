package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/lzmu/lzmubackend/config"
	"github.com/lzmu/lzmubackend/mailer"
	"github.com/lzmu/lzmubackend/middleware"
	"github.com/lzmu/lzmubackend/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := config.Config{
		AllowedOrigins: "https://lzmu.dev",
		Email:          config.Email{Provider: "dev", DevDir: t.TempDir()},
		Quote:          config.Quote{From: "Quotes <quotes@lzmu.dev>", To: "hello@lzmu.dev"},
	}
	return router.New(cfg, mailer.NewResolver(cfg.Email), zap.NewNop())
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{method: http.MethodGet, path: "/ping", code: http.StatusOK},
		{method: http.MethodGet, path: "/api/options", code: http.StatusOK},
		{method: http.MethodPost, path: "/api/send", body: `{"name":"Jane"}`, code: http.StatusOK},
		{method: http.MethodGet, path: "/api/send", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, tt.code, w.Code, "%s %s", tt.method, tt.path)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	r := newRouter(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/send", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	allowed := preflight("https://lzmu.dev")
	assert.Equal(t, "https://lzmu.dev", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := preflight("https://evil.example")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusForbidden, denied.Code)
}
