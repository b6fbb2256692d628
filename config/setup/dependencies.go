package setup

import (
	"log/slog"

	"task-manager/app"
	"task-manager/database"
)

// InitDatabase opens the SQLite database and ensures the schema exists
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	application := app.New(db, logger)
	logger.Debug("application initialized with dependency injection")
	return application
}

// Shutdown releases the resources owned by the application
func Shutdown(application *app.App, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil {
		if err := application.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
