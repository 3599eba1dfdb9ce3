package broadcast

import (
	"net/http"

	"github.com/r3labs/sse/v2"
)

// R3labsSSEAdapter — адаптер для библиотеки r3labs/sse.
// Обёртка предоставляет Publisher (Publish/Close) и http.Handler для монтирования.
type R3labsSSEAdapter struct {
	srv *sse.Server
}

// NewR3labsSSEAdapter создаёт новый экземпляр адаптера (и internal sse.Server).
func NewR3labsSSEAdapter() *R3labsSSEAdapter {
	srv := sse.New()

	srv.CreateStream(InventoryStream)

	return &R3labsSSEAdapter{srv: srv}
}

// Publish Публикует событие в указанный топик (stream). Данные передаются в поле Event.Data.
func (a *R3labsSSEAdapter) Publish(topic string, data []byte) error {
	a.srv.Publish(topic, &sse.Event{Data: data})
	return nil
}

// Close Закрывает все EventSource соединения.
func (a *R3labsSSEAdapter) Close() error {
	a.srv.Close()
	return nil
}

// HTTPHandler возвращает http.Handler, который можно примонтировать в маршруты (например, на /api/events).
// r3labs.Server сам обрабатывает параметр ?stream= и управляет подписками/реплеем.
func (a *R3labsSSEAdapter) HTTPHandler() http.Handler {
	return a.srv
}
