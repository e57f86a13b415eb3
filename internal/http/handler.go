package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/export"
	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	port        int
	log         zerolog.Logger
}

// NewHandler wires the task endpoints. port is only reported by the health check.
func NewHandler(taskService *services.TaskService, port int, log zerolog.Logger) *Handler {
	return &Handler{
		taskService: taskService,
		port:        port,
		log:         log,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to the Task Manager!")
}

func (h *Handler) APIInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.APIInfoResponse{
		Message:   "Welcome to the Task Management API!",
		Endpoints: []string{"/api/health", "/api/tasks"},
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Message: "Backend is running!",
		Port:    h.port,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return h.fail(c, err, false)
	}

	return c.JSON(http.StatusOK, dto.TaskListResponse{
		Success: true,
		Data:    dto.NewTaskResponses(tasks),
	})
}

func (h *Handler) ExportTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return h.fail(c, err, false)
	}

	var buf bytes.Buffer
	if err := export.WriteTasks(&buf, dto.NewTaskResponses(tasks)); err != nil {
		return h.fail(c, err, false)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="tasks.xlsx"`)
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, apperrors.ErrInvalidJSON, false)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err, false)
	}

	return c.JSON(http.StatusCreated, dto.TaskEnvelope{
		Success: true,
		Data:    dto.NewTaskResponse(task),
		Message: "Task created successfully",
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return h.fail(c, err, true)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, true)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return h.fail(c, err, false)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, apperrors.ErrInvalidJSON, false)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		return h.fail(c, err, false)
	}

	return c.JSON(http.StatusOK, dto.TaskEnvelope{
		Success: true,
		Data:    dto.NewTaskResponse(task),
		Message: "Task updated successfully",
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return h.fail(c, err, true)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return h.fail(c, err, true)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

// taskID treats an id that is not a positive integer like an unknown task.
func taskID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.ErrTaskNotFound
	}
	return uint(id), nil
}

// fail writes the error body. Server errors on the get and delete endpoints
// carry only the error text, matching the published contract.
func (h *Handler) fail(c echo.Context, err error, bare bool) error {
	status := apperrors.StatusCode(err)

	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		if bare {
			return c.JSON(status, dto.BareErrorResponse{Error: err.Error()})
		}
	}

	return c.JSON(status, dto.ErrorResponse{Success: false, Error: err.Error()})
}
