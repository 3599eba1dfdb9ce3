package errs

import "fmt"

// ErrDuplicatedServerName Кастомная ошибка, сообщающая о том, что имя сервера уже занято.
// Возникает только на уровне уникального индекса БД, никогда из предварительной проверки.
type ErrDuplicatedServerName struct {
	Name string
	Err  error
}

func (dn *ErrDuplicatedServerName) Error() string {
	return fmt.Sprintf("Сервер с именем `%s` уже существует. Ошибка: %v", dn.Name, dn.Err)
}

func (dn *ErrDuplicatedServerName) Unwrap() error {
	return dn.Err
}

func NewErrDuplicatedServerName(name string, err error) *ErrDuplicatedServerName {
	return &ErrDuplicatedServerName{
		Name: name,
		Err:  err,
	}
}

// ErrServerNotFound Кастомная ошибка, сообщающая о том, что сервер с таким id не найден.
type ErrServerNotFound struct {
	Err error
	ID  int64
}

func (nf *ErrServerNotFound) Error() string {
	return fmt.Sprintf("Сервер id=%d не найден. Ошибка: %v", nf.ID, nf.Err)
}

func (nf *ErrServerNotFound) Unwrap() error {
	return nf.Err
}

func NewErrServerNotFound(id int64, err error) *ErrServerNotFound {
	if err == nil {
		err = fmt.Errorf("сервер не найден")
	}

	return &ErrServerNotFound{
		Err: err,
		ID:  id,
	}
}

// ErrServerNotModified Кастомная ошибка, сообщающая о том, что обновление не затронуло ни одной строки.
// Сервер либо не существует, либо все значения уже были идентичны, случаи не различаются.
type ErrServerNotModified struct {
	Err error
	ID  int64
}

func (nm *ErrServerNotModified) Error() string {
	return fmt.Sprintf("Обновление сервера id=%d не внесло изменений (нет такого id или данные идентичны). Ошибка: %v", nm.ID, nm.Err)
}

func (nm *ErrServerNotModified) Unwrap() error {
	return nm.Err
}

func NewErrServerNotModified(id int64, err error) *ErrServerNotModified {
	if err == nil {
		err = fmt.Errorf("затронуто 0 строк")
	}

	return &ErrServerNotModified{
		Err: err,
		ID:  id,
	}
}
