package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/validators"
)

type TaskService struct {
	repo *repository.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo *repository.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{
		repo: repo,
		log:  log.With().Str("component", "task_service").Logger(),
	}
}

func (s *TaskService) ListTasks(ctx context.Context, search string) ([]model.Task, error) {
	tasks, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, internal("failed to get task", err)
	}
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return nil, err
	}

	task := dto.NewTaskModel(req)
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.log.Info().Uint("task_id", task.ID).Str("entity_name", task.EntityName).Msg("task created")
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint, req dto.UpdateTaskRequest) (*model.Task, error) {
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		// An unknown id wins over a bad body.
		if _, findErr := s.repo.FindByID(ctx, id); findErr != nil {
			return nil, internal("failed to update task", findErr)
		}
		return nil, err
	}

	task, err := s.repo.Update(ctx, id, req.Columns())
	if err != nil {
		return nil, internal("failed to update task", err)
	}

	s.log.Info().Uint("task_id", task.ID).Str("status", task.Status).Msg("task updated")
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internal("failed to delete task", err)
	}

	s.log.Info().Uint("task_id", id).Msg("task deleted")
	return nil
}

// internal wraps storage failures but passes the not-found sentinel through untouched.
func internal(msg string, err error) error {
	if errors.Is(err, apperrors.ErrTaskNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
