package services

import "task-manager/models"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	InsertTask(title, category string, priority int) (*models.Task, error)
	ListTasks() ([]models.Task, error)
	ToggleTask(id int64) error
}
