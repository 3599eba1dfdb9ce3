package di_containers

import (
	"github.com/trsv-dev/simple-server-inventory/internal/api/health_handler"
	"github.com/trsv-dev/simple-server-inventory/internal/api/inventory_handler"
	"github.com/trsv-dev/simple-server-inventory/internal/broadcast"
	"github.com/trsv-dev/simple-server-inventory/internal/config"
	"github.com/trsv-dev/simple-server-inventory/internal/netutils"
	"github.com/trsv-dev/simple-server-inventory/internal/storage"
)

// HandlersContainer Контейнер со всеми хендлерами приложения (и их зависимостями).
type HandlersContainer struct {
	InventoryHandler *inventory_handler.InventoryHandler
	HealthHandler    *health_handler.HealthHandler
	Broadcaster      broadcast.Broadcaster
}

// NewHandlersContainer Конструктор контейнера с зависимостями для хендлеров.
func NewHandlersContainer(storage storage.ServerStorage, srvConfig *config.Config, broadcaster broadcast.Broadcaster) *HandlersContainer {
	netChecker := netutils.NewNetworkChecker()

	inventoryHandler := inventory_handler.NewInventoryHandler(storage, broadcaster)
	healthHandler := health_handler.NewHealthHandler(storage, netChecker, srvConfig.StatusPort)

	return &HandlersContainer{
		InventoryHandler: inventoryHandler,
		HealthHandler:    healthHandler,
		Broadcaster:      broadcaster,
	}
}
