package broadcast

import "net/http"

//go:generate mockgen -destination=mocks/broadcast_mock.go -package=mocks . Broadcaster

// InventoryStream Единственный поток событий инвентаря.
// Авторизации в системе нет, поэтому и топики на пользователей не делятся.
const InventoryStream = "inventory"

// Broadcaster Интерфейс публикации событий инвентаря для дашборда.
type Broadcaster interface {
	Publish(topic string, data []byte) error
	HTTPHandler() http.Handler
	Close() error
}
