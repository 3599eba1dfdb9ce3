package inventory_handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/trsv-dev/simple-server-inventory/internal/api/response"
	"github.com/trsv-dev/simple-server-inventory/internal/broadcast"
	"github.com/trsv-dev/simple-server-inventory/internal/errs"
	"github.com/trsv-dev/simple-server-inventory/internal/logger"
	"github.com/trsv-dev/simple-server-inventory/internal/models"
	"github.com/trsv-dev/simple-server-inventory/internal/storage"
	"github.com/trsv-dev/simple-server-inventory/internal/validation"
)

// Тексты ответов insert/update. Дашборд показывает их пользователю дословно,
// поэтому они фиксированы и не меняются вместе с внутренними сообщениями ошибок.
const (
	msgServerAdded    = "Server added successfully"
	msgServerUpdated  = "Server updated successfully"
	msgNoChanges      = "No changes made or server not found."
	msgMissingID      = "Missing server ID."
	msgInvalidID      = "Invalid server ID."
	msgMissingName    = "Missing server name."
	msgInvalidIP      = "Invalid IP address."
	msgInvalidForm    = "Invalid form data."
	msgDuplicatedName = "Error: Server name must be unique."
	msgDatabaseError  = "Database error."
)

// InventoryHandler Хендлеры операций инвентаря: insert, update, fetch.
// Состояния между запросами не хранит, все персистентное состояние — у хранилища.
type InventoryHandler struct {
	storage     storage.ServerStorage
	broadcaster broadcast.Broadcaster
}

// NewInventoryHandler Конструктор InventoryHandler.
func NewInventoryHandler(storage storage.ServerStorage, broadcaster broadcast.Broadcaster) *InventoryHandler {
	return &InventoryHandler{
		storage:     storage,
		broadcaster: broadcaster,
	}
}

// inventoryEvent Событие инвентаря для SSE. Несет базовую форму записи —
// поля с учетными данными в события не попадают.
type inventoryEvent struct {
	Action string              `json:"action"`
	Server models.ServerRecord `json:"server"`
}

// publishEvent Публикует событие инвентаря. Ошибки публикации не влияют на ответ клиенту.
func (h *InventoryHandler) publishEvent(action string, record models.ServerRecord) {
	data, err := json.Marshal(inventoryEvent{Action: action, Server: record})
	if err != nil {
		logger.Log.Error("Ошибка кодирования события инвентаря", logger.String("err", err.Error()))
		return
	}

	if err = h.broadcaster.Publish(broadcast.InventoryStream, data); err != nil {
		logger.Log.Warn("Ошибка публикации события инвентаря", logger.String("err", err.Error()))
	}
}

// parseForm Разбирает и валидирует form-encoded тело insert/update запроса.
// При ошибке сам пишет ответ и возвращает nil.
func parseForm(w http.ResponseWriter, r *http.Request) *models.ServerDetails {
	if err := r.ParseForm(); err != nil {
		logger.Log.Error("Ошибка разбора формы", logger.String("err", err.Error()))
		response.Text(w, http.StatusBadRequest, msgInvalidForm)
		return nil
	}

	details, err := validation.ParseServerForm(r.PostForm)

	var errInvalidIP *errs.ErrInvalidIP
	var errInvalidDate *errs.ErrInvalidDate

	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingServerName):
			response.Text(w, http.StatusBadRequest, msgMissingName)
		case errors.As(err, &errInvalidIP):
			logger.Log.Warn("Передан невалидный IP-адрес", logger.String("address", errInvalidIP.Address))
			response.Text(w, http.StatusBadRequest, msgInvalidIP)
		case errors.As(err, &errInvalidDate):
			logger.Log.Warn("Передана невалидная дата",
				logger.String("field", errInvalidDate.Field), logger.String("value", errInvalidDate.Value))
			response.Text(w, http.StatusBadRequest, fmt.Sprintf("Invalid date for field %s.", errInvalidDate.Field))
		default:
			logger.Log.Error("Ошибка валидации формы", logger.String("err", err.Error()))
			response.Text(w, http.StatusBadRequest, msgInvalidForm)
		}
		return nil
	}

	return details
}

// InsertServer Добавление нового сервера (POST, form-encoded).
func (h *InventoryHandler) InsertServer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	details := parseForm(w, r)
	if details == nil {
		return
	}

	id, err := h.storage.AddServer(ctx, details)

	var errDuplicatedName *errs.ErrDuplicatedServerName
	if err != nil {
		switch {
		case errors.As(err, &errDuplicatedName):
			logger.Log.Warn("Дубликат имени сервера", logger.String("server_name", errDuplicatedName.Name))
			response.Text(w, http.StatusBadRequest, msgDuplicatedName)
			return
		default:
			logger.Log.Error("Ошибка добавления сервера в БД", logger.String("err", err.Error()))
			response.Text(w, http.StatusBadRequest, msgDatabaseError)
			return
		}
	}

	details.ID = id

	logger.Log.Debug("Сервер успешно добавлен",
		logger.Int64("serverID", id), logger.String("server_name", details.ServerName))

	h.publishEvent("inserted", details.ServerRecord)
	response.Text(w, http.StatusOK, msgServerAdded)
}

// UpdateServer Полная замена всех изменяемых полей сервера (POST, form-encoded + id).
// Пропущенные поля получают значения по умолчанию, а не прежние сохраненные:
// дашборд всегда пересылает строку целиком.
func (h *InventoryHandler) UpdateServer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		logger.Log.Error("Ошибка разбора формы", logger.String("err", err.Error()))
		response.Text(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	id, err := validation.ParseServerID(r.PostForm.Get("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingServerID):
			response.Text(w, http.StatusBadRequest, msgMissingID)
		default:
			logger.Log.Warn("Некорректный id сервера", logger.String("err", err.Error()))
			response.Text(w, http.StatusBadRequest, msgInvalidID)
		}
		return
	}

	details := parseForm(w, r)
	if details == nil {
		return
	}

	err = h.storage.EditServer(ctx, id, details)

	var errDuplicatedName *errs.ErrDuplicatedServerName
	var errNotModified *errs.ErrServerNotModified

	if err != nil {
		switch {
		case errors.As(err, &errNotModified):
			// "нет такого id" и "все значения идентичны" сознательно не различаются
			logger.Log.Debug("Обновление не внесло изменений", logger.Int64("serverID", id))
			response.Text(w, http.StatusOK, msgNoChanges)
			return
		case errors.As(err, &errDuplicatedName):
			logger.Log.Warn("Дубликат имени сервера при обновлении",
				logger.Int64("serverID", id), logger.String("server_name", errDuplicatedName.Name))
			response.Text(w, http.StatusBadRequest, msgDuplicatedName)
			return
		default:
			logger.Log.Error("Ошибка обновления сервера в БД", logger.String("err", err.Error()))
			response.Text(w, http.StatusBadRequest, msgDatabaseError)
			return
		}
	}

	details.ID = id

	logger.Log.Debug("Сервер успешно обновлен", logger.Int64("serverID", id))

	h.publishEvent("updated", details.ServerRecord)
	response.Text(w, http.StatusOK, msgServerUpdated)
}

// FetchServers Поиск/список серверов (GET, необязательный параметр q).
// Всегда отвечает JSON-массивом, пустым при отсутствии результатов.
func (h *InventoryHandler) FetchServers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	query := storage.ResolveQuery(r.URL.Query().Get("q"))

	servers, err := h.storage.FindServers(ctx, query)
	if err != nil {
		logger.Log.Error("Ошибка при поиске серверов", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Failed to fetch servers")
		return
	}

	// если записей нет - возвращаем пустой массив, а не null
	if len(servers) == 0 {
		servers = []models.ServerDetails{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(servers); err != nil {
		logger.Log.Error("Ошибка кодирования JSON", logger.String("err", err.Error()))
	}
}
