package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestExtractIP(t *testing.T) {
	t.Run("direct connection", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.7:54321"

		assert.Equal(t, "203.0.113.7", extractIP(r, nil))
	})

	t.Run("forwarded header ignored from untrusted source", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.7:54321"
		r.Header.Set(HeaderForwardedFor, "198.51.100.1")

		assert.Equal(t, "203.0.113.7", extractIP(r, []string{"10.0.0.1"}))
	})

	t.Run("forwarded header honored from trusted proxy", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "10.0.0.1:54321"
		r.Header.Set(HeaderForwardedFor, "198.51.100.1, 198.51.100.2")

		// Rightmost hop is the one the trusted proxy vouches for.
		assert.Equal(t, "198.51.100.2", extractIP(r, []string{"10.0.0.1"}))
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil && err.Error() == "http: request body too large" {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("small body passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader("tiny")))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64))))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	request := func() *httptest.ResponseRecorder {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "203.0.113.7:54321"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		return w
	}

	for i := 0; i < RateLimitPerWindow; i++ {
		assert.Equal(t, http.StatusOK, request().Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, request().Code)
}

func TestRateLimitIsolatesIPs(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	for i := 0; i <= RateLimitPerWindow; i++ {
		detector.RecordRequest("203.0.113.7")
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "198.51.100.9:1234"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AdminAuthMiddleware("secret", nil, detector)(okHandler())

	t.Run("valid key", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/v1/admin/reload", nil)
		r.Header.Set(HeaderAPIKey, "secret")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid key", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/v1/admin/reload", nil)
		r.Header.Set(HeaderAPIKey, "nope")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing key", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/v1/admin/reload", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
