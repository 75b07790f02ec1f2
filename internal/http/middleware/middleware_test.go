package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func serve(t *testing.T, mw gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := serve(t, RequestID(), req)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given")
	w = serve(t, RequestID(), req)
	if got := w.Header().Get("X-Request-ID"); got != "given" {
		t.Errorf("request id = %q, want the inbound value", got)
	}
}

func TestRecovery_ConvertsPanicToJSON500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestLoggerFrom_FallbackNeverNil(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if LoggerFrom(c) == nil {
		t.Fatal("expected a usable fallback logger")
	}
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewRateLimiter(0.0001, 2, KeyByClientIP())
	mw := rl.Handler()

	for i := 0; i < 2; i++ {
		w := serve(t, mw, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
	w := serve(t, mw, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Errorf("missing Retry-After header")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(0.0001, 1, func(c *gin.Context) string {
		return c.GetHeader("X-Tenant")
	})
	mw := rl.Handler()

	reqA := httptest.NewRequest(http.MethodGet, "/", nil)
	reqA.Header.Set("X-Tenant", "a")
	if w := serve(t, mw, reqA); w.Code != http.StatusOK {
		t.Fatalf("tenant a first: %d", w.Code)
	}

	reqB := httptest.NewRequest(http.MethodGet, "/", nil)
	reqB.Header.Set("X-Tenant", "b")
	if w := serve(t, mw, reqB); w.Code != http.StatusOK {
		t.Errorf("tenant b should have its own bucket, got %d", w.Code)
	}
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	w := serve(t, SecurityHeaders(SecurityOptions{EnablePolicy: true}),
		httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "no-referrer",
	}
	for k, v := range want {
		if got := w.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if w.Header().Get("Permissions-Policy") == "" {
		t.Error("expected a Permissions-Policy header")
	}
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS must not be sent when disabled")
	}
}

func TestSecurityHeaders_HSTSOnlyOverHTTPS(t *testing.T) {
	opt := SecurityOptions{EnableHSTS: true, HSTSMaxAge: time.Hour}

	w := serve(t, SecurityHeaders(opt), httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS sent for plain HTTP")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w = serve(t, SecurityHeaders(opt), req)
	if got := w.Header().Get("Strict-Transport-Security"); got != "max-age=3600; includeSubDomains; preload" {
		t.Errorf("HSTS = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abcd…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 4); got != "abc" {
		t.Errorf("short string modified: %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Errorf("zero max should disable truncation, got %q", got)
	}
}

func TestCountRenderedDocument(t *testing.T) {
	// Must not panic; counters are registered at package init.
	CountRenderedDocument("html", true)
	CountRenderedDocument("xlsx", false)
}
