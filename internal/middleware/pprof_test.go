package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"urlshortener/internal/middleware"
)

func TestPprofAuth(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		headerValue    string
		expectedStatus int
	}{
		{
			name:           "empty secret locks endpoints",
			secret:         "",
			headerValue:    "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid secret",
			secret:         "test-secret",
			headerValue:    "test-secret",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid secret",
			secret:         "test-secret",
			headerValue:    "wrong",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "prefix of secret",
			secret:         "secret123",
			headerValue:    "secret12",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing header with secret configured",
			secret:         "test-secret",
			headerValue:    "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(middleware.PprofAuth(tt.secret))
			e.GET("/debug/pprof/", func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
			if tt.headerValue != "" {
				req.Header.Set("X-Pprof-Secret", tt.headerValue)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRegisterPprof(t *testing.T) {
	e := echo.New()
	middleware.RegisterPprof(e, "s3cret")

	endpoints := []string{
		"/debug/pprof/",
		"/debug/pprof/heap",
		"/debug/pprof/goroutine",
		"/debug/pprof/allocs",
		"/debug/pprof/block",
		"/debug/pprof/mutex",
		"/debug/pprof/threadcreate",
		"/debug/pprof/cmdline",
	}

	for _, ep := range endpoints {
		t.Run(ep, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, ep, nil)
			req.Header.Set("X-Pprof-Secret", "s3cret")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code, "endpoint %s should respond", ep)
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/heap", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
