package errs

import (
	"errors"
	"fmt"
)

// Ошибки валидации обязательных полей.
// Проверяются до любого обращения к хранилищу.
var (
	// ErrMissingServerName Имя сервера пустое после обрезки пробелов.
	ErrMissingServerName = errors.New("не указано имя сервера")

	// ErrMissingServerID В запросе на обновление отсутствует id сервера.
	ErrMissingServerID = errors.New("не указан id сервера")
)

// ErrInvalidIP Кастомная ошибка, сообщающая о том, что передан невалидный IP-адрес.
type ErrInvalidIP struct {
	Address string
}

func (ip *ErrInvalidIP) Error() string {
	return fmt.Sprintf("Невалидный IP-адрес: %s", ip.Address)
}

func NewErrInvalidIP(address string) *ErrInvalidIP {
	return &ErrInvalidIP{Address: address}
}

// ErrInvalidDate Кастомная ошибка, сообщающая о том, что дата не соответствует формату YYYY-MM-DD.
type ErrInvalidDate struct {
	Field string
	Value string
	Err   error
}

func (id *ErrInvalidDate) Error() string {
	return fmt.Sprintf("Невалидная дата в поле %s: %s. Ошибка: %v", id.Field, id.Value, id.Err)
}

func (id *ErrInvalidDate) Unwrap() error {
	return id.Err
}

func NewErrInvalidDate(field, value string, err error) *ErrInvalidDate {
	return &ErrInvalidDate{
		Field: field,
		Value: value,
		Err:   err,
	}
}
