package models

// Статусы сервера.
const (
	StatusActive      = "active"
	StatusInactive    = "inactive"
	StatusMaintenance = "maintenance"
)

// Значения поля backup.
const (
	BackupYes = "Yes"
	BackupNo  = "No"
)

// Categories Категории серверов. Наборы проверяются только на стороне
// дашборда (select-списки), хранилище принимает любое значение.
var Categories = []string{"Product", "Development", "Testing", "Common RM"}

// SubCategories Подкатегории серверов. Как и Categories, не проверяются хранилищем.
var SubCategories = []string{"Frontend", "Backend", "Database", "Infrastructure"}

// ServerRecord Базовая модель учетной записи сервера.
// id присваивается хранилищем при создании и никогда не меняется.
type ServerRecord struct {
	ID              int64  `json:"id,omitempty"`
	ServerName      string `json:"server_name"`
	ServerIP        string `json:"server_ip"`
	Category        string `json:"category"`
	SubCategory     string `json:"sub_category"`
	Purpose         string `json:"purpose"`
	AllocatedDate   Date   `json:"allocated_date"`
	ServerStatus    string `json:"server_status"`
	SurrenderedDate Date   `json:"surrendered_date"`
	Owner           string `json:"owner"`
	Priority        int    `json:"priority"`
	Backup          string `json:"backup"`
	CommvaultBackup string `json:"commvault_backup"`
	BackupStatus    string `json:"backup_status"`
	LastBackupDate  Date   `json:"last_backup_date"`
	Remarks         string `json:"remarks"`
}

// ServerDetails Расширенная модель сервера с данными подключения.
// Учетные данные хранятся и отдаются открытым текстом. В SSE-события
// эти поля не попадают, там используется базовая ServerRecord.
type ServerDetails struct {
	ServerRecord
	RDPUser          string `json:"rdp_user"`
	RDPPassword      string `json:"rdp_password"`
	BackendServer    string `json:"backend_server"`
	BackendUser      string `json:"backend_user"`
	BackendPassword  string `json:"backend_password"`
	VPN              string `json:"vpn"`
	ConnectionMethod string `json:"connection_method"`
}
