package inventory_handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/simple-server-inventory/internal/broadcast"
	"github.com/trsv-dev/simple-server-inventory/internal/errs"
	"github.com/trsv-dev/simple-server-inventory/internal/logger"
	"github.com/trsv-dev/simple-server-inventory/internal/models"
	"github.com/trsv-dev/simple-server-inventory/internal/storage"
	storageMocks "github.com/trsv-dev/simple-server-inventory/internal/storage/mocks"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// captureBroadcaster Брокер, запоминающий опубликованные события.
type captureBroadcaster struct {
	broadcast.NoopAdapter
	topics   []string
	payloads [][]byte
}

func (c *captureBroadcaster) Publish(topic string, data []byte) error {
	c.topics = append(c.topics, topic)
	c.payloads = append(c.payloads, data)
	return nil
}

// postForm Выполняет form-encoded POST к хендлеру.
func postForm(handler http.HandlerFunc, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	handler(w, req)

	return w
}

// TestInsertServer Проверяет добавление нового сервера.
func TestInsertServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		setupStorage func(m *storageMocks.MockServerStorage)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "успешное добавление",
			form: url.Values{
				"server_name":  {"web-01"},
				"server_ip":    {"192.168.1.10"},
				"category":     {"Product"},
				"sub_category": {"Backend"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().
					AddServer(gomock.Any(), gomock.Any()).
					Return(int64(101), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Server added successfully",
		},
		{
			name: "невалидный IP адрес",
			form: url.Values{
				"server_name": {"web-01"},
				"server_ip":   {"999.999.999.999"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Invalid IP address.",
		},
		{
			name:         "пустое имя сервера",
			form:         url.Values{"server_name": {"   "}},
			setupStorage: func(m *storageMocks.MockServerStorage) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Missing server name.",
		},
		{
			name: "дубликат имени сервера",
			form: url.Values{"server_name": {"web-01"}},
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().
					AddServer(gomock.Any(), gomock.Any()).
					Return(int64(0), errs.NewErrDuplicatedServerName("web-01", errors.New("duplicate")))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Error: Server name must be unique.",
		},
		{
			name: "общая ошибка базы данных",
			form: url.Values{"server_name": {"web-01"}},
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().
					AddServer(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("connection refused"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Database error.",
		},
		{
			name: "невалидная дата",
			form: url.Values{
				"server_name":    {"web-01"},
				"allocated_date": {"15.01.2024"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Invalid date for field allocated_date.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := storageMocks.NewMockServerStorage(ctrl)
			tt.setupStorage(mockStorage)

			h := NewInventoryHandler(mockStorage, broadcast.NewNoopAdapter())

			w := postForm(h.InsertServer, "/api/servers/insert", tt.form)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

// TestInsertServerPublishesEvent Событие инвентаря публикуется без полей с учетными данными.
func TestInsertServerPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := storageMocks.NewMockServerStorage(ctrl)
	mockStorage.EXPECT().
		AddServer(gomock.Any(), gomock.Any()).
		Return(int64(101), nil)

	broadcaster := &captureBroadcaster{}
	h := NewInventoryHandler(mockStorage, broadcaster)

	form := url.Values{
		"server_name":  {"web-01"},
		"rdp_user":     {"administrator"},
		"rdp_password": {"secret"},
	}

	w := postForm(h.InsertServer, "/api/servers/insert", form)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, broadcaster.payloads, 1)
	assert.Equal(t, broadcast.InventoryStream, broadcaster.topics[0])

	payload := string(broadcaster.payloads[0])
	assert.Contains(t, payload, `"action":"inserted"`)
	assert.Contains(t, payload, `"server_name":"web-01"`)
	assert.Contains(t, payload, `"id":101`)
	assert.NotContains(t, payload, "secret")
	assert.NotContains(t, payload, "rdp_password")
}

// TestUpdateServer Проверяет полное обновление сервера.
func TestUpdateServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		setupStorage func(m *storageMocks.MockServerStorage)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "успешное обновление",
			form: url.Values{
				"id":          {"5"},
				"server_name": {"web-01"},
				"server_ip":   {"10.0.0.1"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().
					EditServer(gomock.Any(), int64(5), gomock.Any()).
					Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Server updated successfully",
		},
		{
			name:         "отсутствует id",
			form:         url.Values{"server_name": {"web-01"}},
			setupStorage: func(m *storageMocks.MockServerStorage) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Missing server ID.",
		},
		{
			name: "нечисловой id",
			form: url.Values{
				"id":          {"abc"},
				"server_name": {"web-01"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Invalid server ID.",
		},
		{
			name: "невалидный IP адрес",
			form: url.Values{
				"id":          {"5"},
				"server_name": {"web-01"},
				"server_ip":   {"300.1.1.1"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Invalid IP address.",
		},
		{
			name: "нет изменений или сервер не найден",
			form: url.Values{
				"id":          {"5"},
				"server_name": {"web-01"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().
					EditServer(gomock.Any(), int64(5), gomock.Any()).
					Return(errs.NewErrServerNotModified(5, nil))
			},
			wantStatus: http.StatusOK,
			wantBody:   "No changes made or server not found.",
		},
		{
			name: "обновление в занятое имя",
			form: url.Values{
				"id":          {"5"},
				"server_name": {"web-02"},
			},
			setupStorage: func(m *storageMocks.MockServerStorage) {
				m.EXPECT().
					EditServer(gomock.Any(), int64(5), gomock.Any()).
					Return(errs.NewErrDuplicatedServerName("web-02", errors.New("duplicate")))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Error: Server name must be unique.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorage := storageMocks.NewMockServerStorage(ctrl)
			tt.setupStorage(mockStorage)

			h := NewInventoryHandler(mockStorage, broadcast.NewNoopAdapter())

			w := postForm(h.UpdateServer, "/api/servers/update", tt.form)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

// TestFetchServers Проверяет поиск/список серверов.
func TestFetchServers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("числовой запрос возвращает совпадения по id и имени", func(t *testing.T) {
		mockStorage := storageMocks.NewMockServerStorage(ctrl)
		mockStorage.EXPECT().
			FindServers(gomock.Any(), storage.Query{Kind: storage.QueryByIDOrName, ID: 42, Substring: "42"}).
			Return([]models.ServerDetails{
				{ServerRecord: models.ServerRecord{ID: 42, ServerName: "edge"}},
				{ServerRecord: models.ServerRecord{ID: 7, ServerName: "server42"}},
			}, nil)

		h := NewInventoryHandler(mockStorage, broadcast.NewNoopAdapter())

		req := httptest.NewRequest(http.MethodGet, "/api/servers/fetch?q=42", nil)
		w := httptest.NewRecorder()
		h.FetchServers(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var servers []models.ServerDetails
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &servers))
		require.Len(t, servers, 2)
		assert.Equal(t, int64(42), servers[0].ID)
		assert.Equal(t, "server42", servers[1].ServerName)
	})

	t.Run("пустое хранилище - пустой массив, а не null", func(t *testing.T) {
		mockStorage := storageMocks.NewMockServerStorage(ctrl)
		mockStorage.EXPECT().
			FindServers(gomock.Any(), storage.Query{Kind: storage.QueryListAll}).
			Return(nil, nil)

		h := NewInventoryHandler(mockStorage, broadcast.NewNoopAdapter())

		req := httptest.NewRequest(http.MethodGet, "/api/servers/fetch", nil)
		w := httptest.NewRecorder()
		h.FetchServers(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		mockStorage := storageMocks.NewMockServerStorage(ctrl)
		mockStorage.EXPECT().
			FindServers(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		h := NewInventoryHandler(mockStorage, broadcast.NewNoopAdapter())

		req := httptest.NewRequest(http.MethodGet, "/api/servers/fetch?q=edge", nil)
		w := httptest.NewRecorder()
		h.FetchServers(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

// TestMethodNotAllowed Хендлеры отвечают 405 на неподдерживаемые методы.
func TestMethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := storageMocks.NewMockServerStorage(ctrl)
	h := NewInventoryHandler(mockStorage, broadcast.NewNoopAdapter())

	tests := []struct {
		name    string
		method  string
		handler http.HandlerFunc
	}{
		{"insert только POST", http.MethodGet, h.InsertServer},
		{"update только POST", http.MethodGet, h.UpdateServer},
		{"fetch только GET", http.MethodPost, h.FetchServers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/servers", nil)
			w := httptest.NewRecorder()
			tt.handler(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		})
	}
}
