package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/newshield/go-insurance-backend/internal/config"
	"github.com/newshield/go-insurance-backend/internal/domain"
)

func testConfig() config.Config {
	return config.Config{
		Port:              "0",
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
		MaxHeaderBytes:    1 << 20,
		GinMode:           gin.TestMode,
		APIBasePath:       "/api/v1",
		RateRPS:           1000,
		RateBurst:         1000,
		Brand: config.BrandConfig{
			Name:    "NSIB",
			Tagline: "Professional Insurance Solutions",
		},
		OTEL: config.OTELConfig{ServiceName: "test"},
	}
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Comparison{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	r := gin.New()
	RegisterRoutes(r, db, testConfig())
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := get(newEngine(t), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	w := get(newEngine(t), "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	r := newEngine(t)

	w := get(r, "/health")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("request id = %q, want propagated fixed-id", got)
	}
}

func TestNoRouteAndNoMethod(t *testing.T) {
	r := newEngine(t)

	w := get(r, "/nope")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	var er struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if er.Code != "not_found" {
		t.Errorf("code = %q", er.Code)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/lines", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("method not allowed: status %d", rec.Code)
	}
}

func TestAPIRoutesMounted(t *testing.T) {
	r := newEngine(t)

	w := get(r, "/api/v1/lines")
	if w.Code != http.StatusOK {
		t.Fatalf("lines: status %d", w.Code)
	}
	w = get(r, "/api/v1/comparisons")
	if w.Code != http.StatusOK {
		t.Fatalf("comparisons: status %d", w.Code)
	}
}

func TestCORSWildcardDefault(t *testing.T) {
	w := get(newEngine(t), "/health")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("ACAO = %q, want *", got)
	}
}

func TestSecurityHeaders(t *testing.T) {
	w := get(newEngine(t), "/health")
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("nosniff header = %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("frame options = %q", got)
	}
}

func TestRateLimiter(t *testing.T) {
	cfg := testConfig()
	cfg.RateRPS = 0.0001
	cfg.RateBurst = 1

	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:router_rl_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Comparison{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	r := gin.New()
	RegisterRoutes(r, db, cfg)

	if w := get(r, "/health"); w.Code != http.StatusOK {
		t.Fatalf("first request: status %d", w.Code)
	}
	if w := get(r, "/health"); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status %d, want 429", w.Code)
	}
}
