package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"
	"github.com/animall-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestResolveAllowedOrigin(t *testing.T) {
	cases := []struct {
		name             string
		origin           string
		allowed          []string
		allowCredentials bool
		want             string
	}{
		{"wildcard", "https://a.example", []string{"*"}, false, "*"},
		{"wildcard with credentials echoes origin", "https://a.example", []string{"*"}, true, "https://a.example"},
		{"exact match", "https://a.example", []string{"https://a.example"}, false, "https://a.example"},
		{"case insensitive", "https://A.example", []string{"https://a.example"}, false, "https://A.example"},
		{"no match", "https://evil.example", []string{"https://a.example"}, false, ""},
		{"empty origin non-wildcard", "", []string{"https://a.example"}, false, ""},
		{"empty allowed list", "https://a.example", nil, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveAllowedOrigin(tc.origin, tc.allowed, tc.allowCredentials)
			if got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, getRequestID(c))
	})

	// 未携带请求 ID 时自动签发
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	issued := w.Header().Get("X-Request-ID")
	if issued == "" {
		t.Fatalf("request id should be issued")
	}
	if w.Body.String() != issued {
		t.Fatalf("context request id %q != header %q", w.Body.String(), issued)
	}

	// 已携带时原样透传
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req2.Header.Set("X-Request-ID", "req-123")
	r.ServeHTTP(w2, req2)
	if got := w2.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("request id want req-123 got %q", got)
	}
}

func setupSessionMiddlewareTest(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:session_middleware_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Session{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	sessionService := service.NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewCartRepository(db),
		repository.NewChatMessageRepository(db),
		repository.NewGenerationRepository(db),
		service.NewArtworkService(t.TempDir()),
		nil,
		nil,
		720,
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionMiddleware(sessionService))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestSessionMiddlewareIssuesSession(t *testing.T) {
	r := setupSessionMiddlewareTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	issued := w.Header().Get(constants.SessionIDHeader)
	if issued == "" {
		t.Fatalf("session id should be issued on response header")
	}

	var session models.Session
	if err := models.DB.First(&session, "id = ?", issued).Error; err != nil {
		t.Fatalf("session row missing: %v", err)
	}
}

func TestSessionMiddlewareEchoesExistingSession(t *testing.T) {
	r := setupSessionMiddlewareTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.SessionIDHeader, "existing-session")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(constants.SessionIDHeader); got != "existing-session" {
		t.Fatalf("session id want existing-session got %q", got)
	}
}

func TestSessionMiddlewareRejectsOversizedID(t *testing.T) {
	r := setupSessionMiddlewareTest(t)

	oversized := make([]byte, 80)
	for i := range oversized {
		oversized[i] = 'a'
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(constants.SessionIDHeader, string(oversized))
	r.ServeHTTP(w, req)
	issued := w.Header().Get(constants.SessionIDHeader)
	if issued == string(oversized) {
		t.Fatalf("oversized session id should be replaced")
	}
	if issued == "" {
		t.Fatalf("replacement session id should be issued")
	}
}
