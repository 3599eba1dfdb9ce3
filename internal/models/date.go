package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date Календарная дата без времени суток (формат YYYY-MM-DD), допускающая NULL.
// Используется для полей allocated_date, surrendered_date и last_backup_date.
type Date struct {
	Time  time.Time
	Valid bool
}

// ParseDate Разбирает строку формата YYYY-MM-DD. Пустая строка — это NULL, а не ошибка.
func ParseDate(value string) (Date, error) {
	if value == "" {
		return Date{}, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, err
	}

	return Date{Time: t, Valid: true}, nil
}

// String Возвращает дату в формате YYYY-MM-DD или пустую строку для NULL.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}

	return d.Time.Format(dateLayout)
}

// MarshalJSON Сериализует дату как "YYYY-MM-DD" или null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(d.Time.Format(dateLayout))
}

// UnmarshalJSON Читает дату из "YYYY-MM-DD", пустой строки или null.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if s == nil {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan Реализация sql.Scanner: читает DATE-колонку (NULL, time.Time или строку).
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v, Valid: true}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("неподдерживаемый тип для Date: %T", value)
	}
}

// Value Реализация driver.Valuer: NULL для невалидной даты.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}

	return d.Time, nil
}
