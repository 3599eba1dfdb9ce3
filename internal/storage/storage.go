package storage

import (
	"context"

	"github.com/trsv-dev/simple-server-inventory/internal/models"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks . ServerStorage

// ServerStorage Интерфейс хранилища учетных записей серверов.
// Хранилище — единственный владелец персистентного состояния. Уникальность
// server_name обеспечивается уникальным индексом БД, а не проверкой перед вставкой.
type ServerStorage interface {
	// AddServer Добавляет сервер и возвращает присвоенный id.
	AddServer(ctx context.Context, details *models.ServerDetails) (int64, error)
	// EditServer Полностью заменяет все изменяемые поля записи с данным id.
	EditServer(ctx context.Context, serverID int64, details *models.ServerDetails) error
	// GetServer Возвращает запись сервера по id.
	GetServer(ctx context.Context, serverID int64) (*models.ServerDetails, error)
	// FindServers Выполняет разрешенный поисковый запрос.
	FindServers(ctx context.Context, query Query) ([]models.ServerDetails, error)
	// Ping Проверка соединения с хранилищем.
	Ping(ctx context.Context) error
	Close() error
}
