package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(CORSMiddleware(allowedOrigins))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func TestCORSMiddleware(t *testing.T) {
	testCases := []struct {
		name           string
		allowedOrigins []string
		origin         string
		wantAllowed    bool
	}{
		{
			name:           "exact origin allowed",
			allowedOrigins: []string{"http://localhost:5173"},
			origin:         "http://localhost:5173",
			wantAllowed:    true,
		},
		{
			name:           "unknown origin not allowed",
			allowedOrigins: []string{"http://localhost:5173"},
			origin:         "http://evil.example.com",
			wantAllowed:    false,
		},
		{
			name:           "wildcard prefix allowed",
			allowedOrigins: []string{"https://goldior-*"},
			origin:         "https://goldior-frontend.vercel.app",
			wantAllowed:    true,
		},
		{
			name:           "no origin header",
			allowedOrigins: []string{"http://localhost:5173"},
			origin:         "",
			wantAllowed:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := corsRouter(tc.allowedOrigins)

			req, _ := http.NewRequest("GET", "/ping", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get("Access-Control-Allow-Origin")
			if tc.wantAllowed && got != tc.origin {
				t.Errorf("Allow-Origin = %q, want %q", got, tc.origin)
			}
			if !tc.wantAllowed && got != "" {
				t.Errorf("Allow-Origin = %q, want unset", got)
			}
		})
	}

	t.Run("preflight request short-circuits", func(t *testing.T) {
		router := corsRouter([]string{"http://localhost:5173"})

		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Methods") == "" {
			t.Error("expected Allow-Methods header on preflight")
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("requests beyond the burst are rejected", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(1, 2))
		router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req, _ := http.NewRequest("GET", "/ping", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("first two requests = %v, want 200s within the burst", codes[:2])
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("third request = %d, want 429", codes[2])
		}
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(0, 0))
		router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

		for i := 0; i < 10; i++ {
			req, _ := http.NewRequest("GET", "/ping", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d = %d, want 200", i, w.Code)
			}
		}
	})
}
