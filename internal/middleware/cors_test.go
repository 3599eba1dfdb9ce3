package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCorsMiddleware Проверяет заголовки CORS для дашборда.
func TestCorsMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("разрешённый origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/servers/fetch", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := httptest.NewRecorder()
		CorsMiddleware(inner).ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("локальная сеть разрешена", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/servers/fetch", nil)
		req.Header.Set("Origin", "http://192.168.1.50:3000")

		w := httptest.NewRecorder()
		CorsMiddleware(inner).ServeHTTP(w, req)

		assert.Equal(t, "http://192.168.1.50:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("посторонний origin не разрешён", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/servers/fetch", nil)
		req.Header.Set("Origin", "http://evil.example.com")

		w := httptest.NewRecorder()
		CorsMiddleware(inner).ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight OPTIONS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/servers/insert", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

		w := httptest.NewRecorder()
		CorsMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, called, "preflight не должен доходить до хендлера")
	})
}
