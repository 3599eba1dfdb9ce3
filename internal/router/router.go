package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/trsv-dev/simple-server-inventory/internal/di_containers"
	"github.com/trsv-dev/simple-server-inventory/internal/middleware"
)

// Router Роутер.
func Router(h *di_containers.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	// middleware логгера всех запросов
	router.Use(middleware.LogMiddleware)
	// CORS для статического дашборда
	router.Use(middleware.CorsMiddleware)

	router.Route("/api", func(r chi.Router) {
		// health-чек сервиса
		r.Get("/health", h.HealthHandler.Health)

		// SSE события инвентаря для открытых дашбордов
		r.Mount("/events", h.Broadcaster.HTTPHandler())

		r.Route("/servers", func(r chi.Router) {
			r.Get("/fetch", h.InventoryHandler.FetchServers)    // поиск/список серверов
			r.Post("/insert", h.InventoryHandler.InsertServer)  // добавление сервера
			r.Post("/update", h.InventoryHandler.UpdateServer)  // полное обновление сервера

			// маршруты С ID параметром
			r.Route("/{serverID}", func(r chi.Router) {
				// извлекаем ID из параметров роутера
				r.Use(middleware.ParseServerIDMiddleware)

				r.Get("/status", h.HealthHandler.ServerStatus) // проверка доступности по сети
			})
		})
	})

	return router
}
