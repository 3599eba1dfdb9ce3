package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trsv-dev/simple-server-inventory/internal/contextkeys"
	"github.com/trsv-dev/simple-server-inventory/internal/logger"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// TestLogMiddleware Проверяет, что middleware присваивает запросу requestID
// и не искажает ответ вложенного хендлера.
func TestLogMiddleware(t *testing.T) {
	var requestIDFromCtx string

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDFromCtx, _ = r.Context().Value(contextkeys.RequestID).(string)
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/servers/fetch", nil)
	w := httptest.NewRecorder()

	LogMiddleware(inner).ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "body", w.Body.String())
	assert.NotEmpty(t, requestIDFromCtx)
	assert.Equal(t, requestIDFromCtx, w.Header().Get("X-Request-ID"))
}
