package http

import (
	"taskboard/internal/config"
	"taskboard/internal/http/handlers"
	"taskboard/internal/http/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the HTML pages, the JSON API and the ops endpoints.
func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string, cfg *config.Config) {
	repo := repository.NewTaskRepository(db)
	svc := service.NewTaskService(repo)
	h := handlers.NewHandler(svc)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Mutating form posts share one limiter window
	formRL := middleware.RedisRateLimit(cfg.FormRateLimit, cfg.FormRateWindow)

	// Server-rendered pages
	r.GET("/", h.ListPage)
	r.GET("/tasks/new", h.NewTaskPage)
	r.POST("/tasks", formRL, h.CreateTaskForm)
	r.GET("/tasks/:id/edit", h.EditTaskPage)
	r.POST("/tasks/:id", formRL, h.EditTaskForm)
	r.POST("/tasks/:id/toggle", formRL, h.ToggleTaskForm)
	r.GET("/tasks/:id/delete", h.DeleteTaskPage)
	r.POST("/tasks/:id/delete", formRL, h.DeleteTaskForm)

	// JSON API
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, h)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler) {
	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/:id", h.GetTask)
	api.PUT("/tasks/:id", h.ReplaceTask)
	api.PATCH("/tasks/:id", h.PatchTask)
	api.PATCH("/tasks/:id/toggle", h.ToggleTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
}
