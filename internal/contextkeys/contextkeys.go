package contextkeys

// Ключи значений контекста запроса.
type contextKey string

const (
	// ServerID id сервера, извлеченный из URL-параметров роутера.
	ServerID contextKey = "serverID"
	// RequestID Уникальный идентификатор входящего запроса для логирования.
	RequestID contextKey = "requestID"
)
