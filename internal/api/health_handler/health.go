package health_handler

import (
	"errors"
	"net/http"

	"github.com/trsv-dev/simple-server-inventory/internal/api/response"
	"github.com/trsv-dev/simple-server-inventory/internal/contextkeys"
	"github.com/trsv-dev/simple-server-inventory/internal/errs"
	"github.com/trsv-dev/simple-server-inventory/internal/logger"
	"github.com/trsv-dev/simple-server-inventory/internal/netutils"
	"github.com/trsv-dev/simple-server-inventory/internal/storage"
)

// HealthHandler Хендлеры проверки здоровья сервиса и доступности серверов из инвентаря.
type HealthHandler struct {
	storage    storage.ServerStorage
	netChecker netutils.Checker
	statusPort string
}

// NewHealthHandler Конструктор HealthHandler.
func NewHealthHandler(storage storage.ServerStorage, netChecker netutils.Checker, statusPort string) *HealthHandler {
	return &HealthHandler{
		storage:    storage,
		netChecker: netChecker,
		statusPort: statusPort,
	}
}

// healthResponse Ответ health-чека сервиса.
type healthResponse struct {
	Status string `json:"status"`
}

// serverStatusResponse Ответ проверки доступности сервера из инвентаря.
type serverStatusResponse struct {
	ID     int64 `json:"id"`
	Online bool  `json:"online"`
}

// Health Проверка живости сервиса: пингуется соединение с БД.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if err := h.storage.Ping(ctx); err != nil {
		logger.Log.Error("БД недоступна", logger.String("err", err.Error()))
		response.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	response.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// ServerStatus Проверка сетевой доступности сервера из инвентаря по запросу.
// Результат не сохраняется и не влияет на поле server_status записи.
func (h *HealthHandler) ServerStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	serverID, ok := ctx.Value(contextkeys.ServerID).(int64)
	if !ok {
		logger.Log.Error("Не удалось получить id сервера из контекста")
		response.ErrorJSON(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	details, err := h.storage.GetServer(ctx, serverID)

	var errServerNotFound *errs.ErrServerNotFound
	if err != nil {
		switch {
		case errors.As(err, &errServerNotFound):
			logger.Log.Warn("Сервер не найден", logger.Int64("serverID", serverID))
			response.ErrorJSON(w, http.StatusNotFound, "Server not found")
			return
		default:
			logger.Log.Error("Ошибка при получении информации о сервере", logger.String("err", err.Error()))
			response.ErrorJSON(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	if details.ServerIP == "" {
		response.ErrorJSON(w, http.StatusBadRequest, "Server has no IP address")
		return
	}

	// сначала дешевая проверка TCP-портом, при неудаче - ICMP
	timeout := netutils.DefaultHostTimeout
	online := h.netChecker.CheckTCP(ctx, details.ServerIP, h.statusPort, timeout)
	if !online {
		online = h.netChecker.CheckICMP(ctx, details.ServerIP, timeout)
	}

	logger.Log.Debug("Проверка доступности сервера",
		logger.Int64("serverID", serverID),
		logger.String("address", details.ServerIP),
		logger.String("online", boolToString(online)),
	)

	response.JSON(w, http.StatusOK, serverStatusResponse{ID: serverID, Online: online})
}

func boolToString(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
