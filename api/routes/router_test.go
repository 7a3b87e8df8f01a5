package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"comedyslots/internal/bookings"
	"comedyslots/internal/shared/config"
	"comedyslots/internal/shared/database"
	"comedyslots/pkg/logger"

	"github.com/gin-gonic/gin"
)

type stubNotifier struct {
	healthErr error
}

func (s *stubNotifier) NotifyBooking(ctx context.Context, notice bookings.Notice) error { return nil }

func (s *stubNotifier) HealthCheck(ctx context.Context) error { return s.healthErr }

func (s *stubNotifier) Transport() string { return "inline" }

func newTestEngine(t *testing.T, notifier bookings.Notifier) (*gin.Engine, *Router) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	router := NewRouter(cfg, &database.DB{}, notifier, logger.NewNop())
	engine := gin.New()
	router.SetupRoutes(engine)
	return engine, router
}

func TestOperationalRoutes(t *testing.T) {
	tests := []struct {
		name     string
		notifier bookings.Notifier
		path     string
		wantCode int
		wantBody string
	}{
		{"ping", nil, "/ping", http.StatusOK, `"pong"`},
		{"status reports transport", &stubNotifier{}, "/status", http.StatusOK, `"notifications":"inline"`},
		{"status without notifier", nil, "/status", http.StatusOK, `"notifications":"none"`},
		{"health ok", &stubNotifier{}, "/health", http.StatusOK, `"healthy"`},
		{"health degraded by notifier", &stubNotifier{healthErr: errors.New("broker down")}, "/health", http.StatusServiceUnavailable, "broker down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newTestEngine(t, tt.notifier)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantCode {
				t.Fatalf("code = %d, want %d (%s)", w.Code, tt.wantCode, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %s does not contain %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestBookingRoutesRequireToken(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/bookings"},
		{http.MethodGet, "/api/v1/bookings"},
		{http.MethodPatch, "/api/v1/bookings/00000000-0000-0000-0000-000000000001/status"},
		{http.MethodPost, "/api/v1/bookings/00000000-0000-0000-0000-000000000001/cancel"},
		{http.MethodGet, "/api/v1/promoter/bookings"},
		{http.MethodPost, "/api/v1/shows"},
	} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s = %d, want 401", route.method, route.path, w.Code)
		}
	}
}

func TestShutdownWithoutRoutes(t *testing.T) {
	router := NewRouter(config.Load(), &database.DB{}, nil, logger.NewNop())
	if err := router.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() = %v", err)
	}
}

func TestSwaggerDocCoversAPIRoutes(t *testing.T) {
	engine, _ := newTestEngine(t, nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("doc.json = %d", w.Code)
	}

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}

	base := config.Load().GetAPIBasePath()
	if doc.BasePath != base {
		t.Errorf("basePath = %q, want %q", doc.BasePath, base)
	}

	documented := 0
	for _, route := range engine.Routes() {
		path, ok := strings.CutPrefix(route.Path, base)
		if !ok {
			continue
		}
		path = strings.ReplaceAll(path, ":id", "{id}")
		method := strings.ToLower(route.Method)
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("%s %s is not documented", route.Method, route.Path)
		}
		documented++
	}

	var total int
	for _, ops := range doc.Paths {
		total += len(ops)
	}
	if total != documented {
		t.Errorf("doc has %d operations, router serves %d", total, documented)
	}
}
