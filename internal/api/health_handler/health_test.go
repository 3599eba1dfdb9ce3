package health_handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/simple-server-inventory/internal/contextkeys"
	"github.com/trsv-dev/simple-server-inventory/internal/errs"
	"github.com/trsv-dev/simple-server-inventory/internal/logger"
	"github.com/trsv-dev/simple-server-inventory/internal/models"
	storageMocks "github.com/trsv-dev/simple-server-inventory/internal/storage/mocks"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// fakeChecker Проверяльщик сети с заранее заданными ответами.
type fakeChecker struct {
	tcp  bool
	icmp bool
}

func (f *fakeChecker) CheckTCP(ctx context.Context, address string, port string, timeout time.Duration) bool {
	return f.tcp
}

func (f *fakeChecker) CheckICMP(ctx context.Context, address string, timeout time.Duration) bool {
	return f.icmp
}

// requestWithServerID Запрос с id сервера в контексте (как после ParseServerIDMiddleware).
func requestWithServerID(serverID int64) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/servers/42/status", nil)
	ctx := context.WithValue(req.Context(), contextkeys.ServerID, serverID)
	return req.WithContext(ctx)
}

// TestHealth Проверяет health-чек сервиса.
func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("БД доступна", func(t *testing.T) {
		mockStorage := storageMocks.NewMockServerStorage(ctrl)
		mockStorage.EXPECT().Ping(gomock.Any()).Return(nil)

		h := NewHealthHandler(mockStorage, &fakeChecker{}, "3389")

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		h.Health(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("БД недоступна", func(t *testing.T) {
		mockStorage := storageMocks.NewMockServerStorage(ctrl)
		mockStorage.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		h := NewHealthHandler(mockStorage, &fakeChecker{}, "3389")

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		h.Health(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, w.Body.String())
	})
}

// TestServerStatus Проверяет проверку доступности сервера из инвентаря.
func TestServerStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverWithIP := &models.ServerDetails{
		ServerRecord: models.ServerRecord{ID: 42, ServerName: "edge", ServerIP: "192.168.1.10"},
	}

	tests := []struct {
		name         string
		setupStorage func(m *storageMocks.MockServerStorage)
		checker      *fakeChecker
		wantStatus   int
		wantBody     string
	}{
		{
			name: "доступен по TCP",
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().GetServer(gomock.Any(), int64(42)).Return(serverWithIP, nil)
			},
			checker:    &fakeChecker{tcp: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":42,"online":true}`,
		},
		{
			name: "TCP закрыт, но отвечает на ICMP",
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().GetServer(gomock.Any(), int64(42)).Return(serverWithIP, nil)
			},
			checker:    &fakeChecker{tcp: false, icmp: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":42,"online":true}`,
		},
		{
			name: "недоступен",
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().GetServer(gomock.Any(), int64(42)).Return(serverWithIP, nil)
			},
			checker:    &fakeChecker{},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":42,"online":false}`,
		},
		{
			name: "сервер не найден",
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().GetServer(gomock.Any(), int64(42)).
					Return(nil, errs.NewErrServerNotFound(42, nil))
			},
			checker:    &fakeChecker{},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "у сервера не указан IP",
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().GetServer(gomock.Any(), int64(42)).Return(&models.ServerDetails{
					ServerRecord: models.ServerRecord{ID: 42, ServerName: "edge"},
				}, nil)
			},
			checker:    &fakeChecker{tcp: true},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := storageMocks.NewMockServerStorage(ctrl)
			tt.setupStorage(mockStorage)

			h := NewHealthHandler(mockStorage, tt.checker, "3389")

			w := httptest.NewRecorder()
			h.ServerStatus(w, requestWithServerID(42))

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}
