package app

import (
	"io"
	"log/slog"

	"task-manager/database"
	"task-manager/services"
	"task-manager/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	TaskService *services.TaskService
	Validator   *validator.Validator
	Logger      *slog.Logger

	store io.Closer
}

// New creates a new App instance with all dependencies
func New(db *database.DB, logger *slog.Logger) *App {
	return &App{
		TaskService: services.NewTaskService(database.NewRepository(db)),
		Validator:   validator.New(),
		Logger:      logger,
		store:       db,
	}
}

// Close releases the storage handle
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
