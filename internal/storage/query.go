package storage

import "strconv"

// QueryKind Вид поискового запроса.
type QueryKind int

const (
	// QueryListAll Пустой поисковый запрос: вернуть все записи.
	QueryListAll QueryKind = iota
	// QueryByIDOrName Числовой запрос: id равен числу ИЛИ имя содержит подстроку.
	QueryByIDOrName
	// QueryByName Текстовый запрос: имя содержит подстроку.
	QueryByName
)

// Query Размеченный вариант поискового запроса. Строится один раз
// резолвером и единообразно исполняется хранилищем — ветвление
// "число или имя" не расползается по вызывающему коду.
type Query struct {
	Kind      QueryKind
	ID        int64
	Substring string
}

// ResolveQuery Классифицирует свободный поисковый запрос.
// Пустая строка — список всех записей. Строка из одних десятичных цифр
// ищется и как id, и как подстрока имени (в инвентаре встречаются имена
// вида "server42"). Все остальное — поиск по подстроке имени.
func ResolveQuery(term string) Query {
	if term == "" {
		return Query{Kind: QueryListAll}
	}

	if isDigits(term) {
		// переполнение int64 цифровой строкой трактуем как обычный текстовый поиск
		if id, err := strconv.ParseInt(term, 10, 64); err == nil {
			return Query{Kind: QueryByIDOrName, ID: id, Substring: term}
		}
	}

	return Query{Kind: QueryByName, Substring: term}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
