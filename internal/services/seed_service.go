package services

import (
	"context"
	"fmt"

	dto "task-tracker.com/task-tracker/internal/data_models"
	model "task-tracker.com/task-tracker/internal/models"
	"task-tracker.com/task-tracker/internal/validators"
)

// Seed stores the given tasks in one batch. Every task is validated first, so
// a bad entry leaves the store untouched. Unless force is set it leaves a
// store that already holds tasks alone.
func (s *TaskService) Seed(ctx context.Context, tasks []dto.CreateTaskRequest, force bool) (int, error) {
	if !force {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count tasks: %w", err)
		}
		if count > 0 {
			s.log.Info().Int64("existing", count).Msg("store not empty, skipping seed")
			return 0, nil
		}
	}

	batch := make([]*model.Task, 0, len(tasks))
	for i := range tasks {
		if err := validators.ValidateCreateTaskRequest(&tasks[i]); err != nil {
			return 0, fmt.Errorf("seeding task %d: %w", i+1, err)
		}
		batch = append(batch, dto.NewTaskModel(tasks[i]))
	}

	if err := s.repo.CreateMany(ctx, batch); err != nil {
		return 0, fmt.Errorf("failed to seed tasks: %w", err)
	}

	s.log.Info().Int("created", len(batch)).Msg("sample tasks added")
	return len(batch), nil
}
