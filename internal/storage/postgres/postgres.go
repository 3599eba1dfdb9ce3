package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/trsv-dev/simple-server-inventory/internal/errs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/trsv-dev/simple-server-inventory/internal/logger"
	"github.com/trsv-dev/simple-server-inventory/internal/models"
	"github.com/trsv-dev/simple-server-inventory/internal/storage"
	"github.com/trsv-dev/simple-server-inventory/internal/storage/postgres/utils"
)

// Код PostgreSQL для нарушения уникального ограничения.
const uniqueViolationCode = "23505"

// PgStorage Структура хранилища в PostgreSQL, удовлетворяющая интерфейсу ServerStorage.
type PgStorage struct {
	DB *sql.DB
}

// InitStorage Инициализация хранилища.
func InitStorage(DatabaseURI string) (*PgStorage, error) {
	// открываем соединение с БД (пул соединений database/sql)
	pg, err := sql.Open("pgx", DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка подключения к БД PostgreSQL", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка подключения к БД PostgreSQL: %w", err)
	}

	// проверяем, "живое" ли соединение
	if err = pg.Ping(); err != nil {
		logger.Log.Error("Ошибка при попытке подключения к БД PostgreSQL", logger.String("err", err.Error()))
		return nil, fmt.Errorf("нет связи с БД PostgreSQL: %w", err)
	}

	// применяем миграции
	err = utils.ApplyMigrations(DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка применения миграций к БД PostgreSQL", logger.String("err", err.Error()))
		_ = pg.Close()
		return nil, fmt.Errorf("ошибка применения миграций к БД PostgreSQL: %w", err)
	}

	pgStorage := &PgStorage{DB: pg}

	logger.Log.Info("В качестве хранилища используется БД PostgreSQL")
	return pgStorage, nil
}

// serverColumns Полный список колонок записи сервера (без id), в порядке вставки.
const serverColumns = `server_name, server_ip, category, sub_category, purpose, allocated_date, server_status, surrendered_date, owner, priority, backup, commvault_backup, backup_status, last_backup_date, rdp_user, rdp_password, backend_server, backend_user, backend_password, vpn, connection_method, remarks`

// serverArgs Аргументы запроса в том же порядке, что и serverColumns.
func serverArgs(details *models.ServerDetails) []any {
	return []any{
		details.ServerName,
		details.ServerIP,
		details.Category,
		details.SubCategory,
		details.Purpose,
		details.AllocatedDate,
		details.ServerStatus,
		details.SurrenderedDate,
		details.Owner,
		details.Priority,
		details.Backup,
		details.CommvaultBackup,
		details.BackupStatus,
		details.LastBackupDate,
		details.RDPUser,
		details.RDPPassword,
		details.BackendServer,
		details.BackendUser,
		details.BackendPassword,
		details.VPN,
		details.ConnectionMethod,
		details.Remarks,
	}
}

// scanServer Читает одну строку выборки в модель сервера.
func scanServer(row interface{ Scan(dest ...any) error }) (*models.ServerDetails, error) {
	var details models.ServerDetails

	err := row.Scan(
		&details.ID,
		&details.ServerName,
		&details.ServerIP,
		&details.Category,
		&details.SubCategory,
		&details.Purpose,
		&details.AllocatedDate,
		&details.ServerStatus,
		&details.SurrenderedDate,
		&details.Owner,
		&details.Priority,
		&details.Backup,
		&details.CommvaultBackup,
		&details.BackupStatus,
		&details.LastBackupDate,
		&details.RDPUser,
		&details.RDPPassword,
		&details.BackendServer,
		&details.BackendUser,
		&details.BackendPassword,
		&details.VPN,
		&details.ConnectionMethod,
		&details.Remarks,
	)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// AddServer Добавление нового сервера в БД. Возвращает присвоенный id.
// Уникальность server_name гарантирует индекс: при одновременной вставке
// двух одинаковых имен ровно одна из них завершится ошибкой дубликата.
func (pg *PgStorage) AddServer(ctx context.Context, details *models.ServerDetails) (int64, error) {
	query := `INSERT INTO servers (` + serverColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
			  RETURNING id`

	var id int64

	err := pg.DB.QueryRowContext(ctx, query, serverArgs(details)...).Scan(&id)

	var pgErr *pgconn.PgError
	if err != nil {
		switch {
		// если ошибка говорит о дубликате имени сервера - выходим из функции и возвращаем ошибку
		case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
			return 0, errs.NewErrDuplicatedServerName(details.ServerName, err)
		default:
			return 0, fmt.Errorf("ошибка при добавлении сервера: %w", err)
		}
	}

	return id, nil
}

// EditServer Полная замена всех изменяемых полей записи с данным id.
// Условие IS DISTINCT FROM оставляет запись с идентичными значениями
// незатронутой, и такой случай неотличим от отсутствующего id
// (errs.ErrServerNotModified).
func (pg *PgStorage) EditServer(ctx context.Context, serverID int64, details *models.ServerDetails) error {
	query := `UPDATE servers
			  SET server_name = $1, server_ip = $2, category = $3, sub_category = $4, purpose = $5,
			      allocated_date = $6, server_status = $7, surrendered_date = $8, owner = $9, priority = $10,
			      backup = $11, commvault_backup = $12, backup_status = $13, last_backup_date = $14,
			      rdp_user = $15, rdp_password = $16, backend_server = $17, backend_user = $18,
			      backend_password = $19, vpn = $20, connection_method = $21, remarks = $22
			  WHERE id = $23
			    AND (server_name, server_ip, category, sub_category, purpose, allocated_date, server_status,
			         surrendered_date, owner, priority, backup, commvault_backup, backup_status, last_backup_date,
			         rdp_user, rdp_password, backend_server, backend_user, backend_password, vpn,
			         connection_method, remarks)
			        IS DISTINCT FROM
			        ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	args := append(serverArgs(details), serverID)

	result, err := pg.DB.ExecContext(ctx, query, args...)

	var pgErr *pgconn.PgError
	if err != nil {
		switch {
		case errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode:
			return errs.NewErrDuplicatedServerName(details.ServerName, err)
		default:
			logger.Log.Error("Ошибка запроса на обновление сервера", logger.String("err", err.Error()))
			return fmt.Errorf("ошибка при обновлении сервера: %w", err)
		}
	}

	affectedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при выполнении запроса: %w", err)
	}

	if affectedRows == 0 {
		return errs.NewErrServerNotModified(serverID, fmt.Errorf("%w: затронутых строк %d", sql.ErrNoRows, affectedRows))
	}

	return nil
}

// GetServer Получение записи сервера по id.
func (pg *PgStorage) GetServer(ctx context.Context, serverID int64) (*models.ServerDetails, error) {
	query := `SELECT id, ` + serverColumns + ` FROM servers WHERE id = $1`

	details, err := scanServer(pg.DB.QueryRowContext(ctx, query, serverID))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, errs.NewErrServerNotFound(serverID, err)
		default:
			return nil, err
		}
	}

	return details, nil
}

// FindServers Исполнение разрешенного поискового запроса.
// Поиск по подстроке имени регистронезависимый (ILIKE).
func (pg *PgStorage) FindServers(ctx context.Context, query storage.Query) ([]models.ServerDetails, error) {
	base := `SELECT id, ` + serverColumns + ` FROM servers`

	var rows *sql.Rows
	var err error

	switch query.Kind {
	case storage.QueryByIDOrName:
		q := base + ` WHERE id = $1 OR server_name ILIKE '%' || $2 || '%' ORDER BY id`
		rows, err = pg.DB.QueryContext(ctx, q, query.ID, query.Substring)
	case storage.QueryByName:
		q := base + ` WHERE server_name ILIKE '%' || $1 || '%' ORDER BY id`
		rows, err = pg.DB.QueryContext(ctx, q, query.Substring)
	default:
		q := base + ` ORDER BY id`
		rows, err = pg.DB.QueryContext(ctx, q)
	}

	if err != nil {
		logger.Log.Error("Ошибка при поиске серверов", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при поиске серверов: %w", err)
	}
	defer rows.Close()

	var servers []models.ServerDetails

	for rows.Next() {
		details, scanErr := scanServer(rows)
		if scanErr != nil {
			logger.Log.Error("Ошибка парсинга строки выборки серверов", logger.String("err", scanErr.Error()))
			return nil, scanErr
		}

		servers = append(servers, *details)
	}

	err = rows.Err()
	if err != nil {
		logger.Log.Error("Ошибка при обработке строк выборки серверов", logger.String("err", err.Error()))
		return nil, err
	}

	return servers, nil
}

// Ping Проверка соединения с БД.
func (pg *PgStorage) Ping(ctx context.Context) error {
	return pg.DB.PingContext(ctx)
}

func (pg *PgStorage) Close() error {
	err := pg.DB.Close()
	if err != nil {
		logger.Log.Error("Ошибка закрытия соединения с БД PostgreSQL", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка закрытия БД PostgreSQL: %w", err)
	}

	return nil
}
