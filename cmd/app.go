package cmd

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	config "task-tracker.com/task-tracker/internal/configs"
	dto "task-tracker.com/task-tracker/internal/data_models"
	"task-tracker.com/task-tracker/internal/fixtures"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

// app holds everything a command needs. Close releases the database.
type app struct {
	cfg         config.Config
	log         zerolog.Logger
	db          *gorm.DB
	taskService *services.TaskService
}

func newApp() (*app, error) {
	envErr := godotenv.Load()

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	log, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}

	db, err := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN, log)
	if err != nil {
		return nil, err
	}

	taskRepo := repository.NewTaskRepository(db)

	return &app{
		cfg:         cfg,
		log:         log,
		db:          db,
		taskService: services.NewTaskService(taskRepo, log),
	}, nil
}

func (a *app) seed(ctx context.Context, file string, force bool) (int, error) {
	samples, err := loadFixtures(file)
	if err != nil {
		return 0, err
	}
	return a.taskService.Seed(ctx, samples, force)
}

func (a *app) Close() {
	if err := config.CloseDatabase(a.db); err != nil {
		a.log.Error().Err(err).Msg("closing database")
	}
}

func loadFixtures(file string) ([]dto.CreateTaskRequest, error) {
	if file == "" {
		return fixtures.Default()
	}
	return fixtures.LoadFile(file)
}
