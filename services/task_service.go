package services

import (
	"fmt"

	"task-manager/models"
)

// TaskService handles business logic for tasks
type TaskService struct {
	repo TaskRepository
}

// NewTaskService creates a new task service
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Add creates a task. The store assigns the id and the task starts not completed.
func (ts *TaskService) Add(req models.CreateTaskRequest) (*models.Task, error) {
	if req.Title == nil || req.Category == nil || req.Priority == nil {
		return nil, fmt.Errorf("%w: title, category and priority are required", ErrInvalidRequest)
	}

	return ts.repo.InsertTask(*req.Title, *req.Category, *req.Priority)
}

// List returns every task
func (ts *TaskService) List() ([]models.Task, error) {
	tasks, err := ts.repo.ListTasks()
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = make([]models.Task, 0)
	}
	return tasks, nil
}

// Toggle flips the completed flag of a task. Toggling an id that does not exist
// succeeds and changes nothing.
func (ts *TaskService) Toggle(id int64) error {
	return ts.repo.ToggleTask(id)
}
