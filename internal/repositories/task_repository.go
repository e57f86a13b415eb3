package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db  *gorm.DB
	now func() time.Time
}

type Option func(*TaskRepository)

// WithClock replaces the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(r *TaskRepository) {
		r.now = now
	}
}

func NewTaskRepository(db *gorm.DB, opts ...Option) *TaskRepository {
	r := &TaskRepository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns tasks newest first. A non-empty search keeps rows whose entity
// name or contact person contains it, ignoring case.
func (r *TaskRepository) List(ctx context.Context, search string) ([]model.Task, error) {
	tasks := []model.Task{}
	query := r.db.WithContext(ctx).Model(&model.Task{})

	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(r.searchCondition(), pattern, pattern)
	}

	if err := query.Order("created_at desc").Order("id desc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// searchCondition folds both the columns and the term inside the database so
// a term typed exactly as stored always matches, whatever the engine's case
// folding covers.
func (r *TaskRepository) searchCondition() string {
	if r.db.Dialector.Name() == "postgres" {
		return `entity_name ILIKE ? ESCAPE '\' OR contact_person ILIKE ? ESCAPE '\'`
	}
	return `LOWER(entity_name) LIKE LOWER(?) ESCAPE '\' OR LOWER(contact_person) LIKE LOWER(?) ESCAPE '\'`
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	return count, err
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	now := r.timestamp()
	task.ID = 0
	task.CreatedAt = now
	task.UpdatedAt = now

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
}

// CreateMany inserts every task in one transaction; either all are stored or none.
func (r *TaskRepository) CreateMany(ctx context.Context, tasks []*model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	now := r.timestamp()
	for _, task := range tasks {
		task.ID = 0
		task.CreatedAt = now
		task.UpdatedAt = now
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tasks).Error
	})
}

// Update applies the given columns and always refreshes updated_at, even when
// columns is empty.
func (r *TaskRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (*model.Task, error) {
	var task model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return notFound(err)
		}

		updates := make(map[string]interface{}, len(columns)+1)
		for column, value := range columns {
			updates[column] = value
		}
		updates["updated_at"] = r.timestamp()

		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			return err
		}

		return tx.First(&task, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Task{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrTaskNotFound
		}
		return nil
	})
}

// Postgres stores microseconds, so timestamps are truncated to keep what we
// return identical to what a later read yields.
func (r *TaskRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Microsecond)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrTaskNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
