package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/trsv-dev/simple-server-inventory/internal/errs"
	"github.com/trsv-dev/simple-server-inventory/internal/models"
)

// ParseServerForm Разбирает form-encoded поля запроса в нормализованную модель сервера.
// Чистое преобразование без побочных эффектов: либо нормализованная запись, либо типизированная ошибка.
//
// Правила нормализации:
//   - у всех текстовых полей обрезаются начальные и конечные пробелы;
//   - server_name обязателен (после обрезки);
//   - server_ip, если не пуст, должен быть валидным IPv4/IPv6 литералом;
//   - priority приводится к int, при ошибке разбора молча становится 0,
//     вызывающая сторона не может отличить явный 0 от некорректного значения;
//   - server_status по умолчанию active, backup по умолчанию No;
//   - даты разбираются в формате YYYY-MM-DD, пустые остаются NULL.
func ParseServerForm(form url.Values) (*models.ServerDetails, error) {
	details := &models.ServerDetails{
		ServerRecord: models.ServerRecord{
			ServerName:      strings.TrimSpace(form.Get("server_name")),
			ServerIP:        strings.TrimSpace(form.Get("server_ip")),
			Category:        strings.TrimSpace(form.Get("category")),
			SubCategory:     strings.TrimSpace(form.Get("sub_category")),
			Purpose:         strings.TrimSpace(form.Get("purpose")),
			ServerStatus:    strings.TrimSpace(form.Get("server_status")),
			Owner:           strings.TrimSpace(form.Get("owner")),
			Backup:          strings.TrimSpace(form.Get("backup")),
			CommvaultBackup: strings.TrimSpace(form.Get("commvault_backup")),
			BackupStatus:    strings.TrimSpace(form.Get("backup_status")),
			Remarks:         strings.TrimSpace(form.Get("remarks")),
		},
		RDPUser:          strings.TrimSpace(form.Get("rdp_user")),
		RDPPassword:      strings.TrimSpace(form.Get("rdp_password")),
		BackendServer:    strings.TrimSpace(form.Get("backend_server")),
		BackendUser:      strings.TrimSpace(form.Get("backend_user")),
		BackendPassword:  strings.TrimSpace(form.Get("backend_password")),
		VPN:              strings.TrimSpace(form.Get("vpn")),
		ConnectionMethod: strings.TrimSpace(form.Get("connection_method")),
	}

	if details.ServerName == "" {
		return nil, errs.ErrMissingServerName
	}

	if !IsValidIP(details.ServerIP) {
		return nil, errs.NewErrInvalidIP(details.ServerIP)
	}

	// молчаливое приведение: нечисловой priority становится нулем, а не ошибкой
	priority, err := strconv.Atoi(strings.TrimSpace(form.Get("priority")))
	if err != nil {
		priority = 0
	}
	details.Priority = priority

	if details.ServerStatus == "" {
		details.ServerStatus = models.StatusActive
	}

	if details.Backup == "" {
		details.Backup = models.BackupNo
	}

	dates := []struct {
		field string
		dst   *models.Date
	}{
		{"allocated_date", &details.AllocatedDate},
		{"surrendered_date", &details.SurrenderedDate},
		{"last_backup_date", &details.LastBackupDate},
	}

	for _, d := range dates {
		value := strings.TrimSpace(form.Get(d.field))

		parsed, parseErr := models.ParseDate(value)
		if parseErr != nil {
			return nil, errs.NewErrInvalidDate(d.field, value, parseErr)
		}

		*d.dst = parsed
	}

	return details, nil
}

// ParseServerID Разбирает обязательный для обновления id сервера.
// Пустое значение — отдельная ошибка ErrMissingServerID, нечисловое или
// неположительное — ошибка разбора.
func ParseServerID(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errs.ErrMissingServerID
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("некорректный id сервера: %w", err)
	}

	if id <= 0 {
		return 0, fmt.Errorf("id сервера должен быть положительным числом, получено %d", id)
	}

	return id, nil
}

// IsValidIP Проверяет, что строка — валидный IPv4 или IPv6 литерал.
// Пустая строка допустима: поле server_ip необязательное.
func IsValidIP(address string) bool {
	if address == "" {
		return true
	}

	return net.ParseIP(address) != nil
}
