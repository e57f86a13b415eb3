package http

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, log zerolog.Logger, allowedOrigins []string) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	if len(allowedOrigins) > 0 {
		e.Use(middleware.CORS(allowedOrigins))
	}

	e.GET("/", h.Root)

	api := e.Group("/api")
	api.GET("", h.APIInfo)
	api.GET("/health", h.Health)

	api.GET("/tasks", h.ListTasks)
	api.POST("/tasks", h.CreateTask)
	api.GET("/tasks/export", h.ExportTasks)
	api.GET("/tasks/:id", h.GetTask)
	api.PATCH("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
}
