package database

import (
	"task-manager/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ==================== TASKS ====================

// InsertTask stores a new, not yet completed task and returns it with its assigned id
func (r *Repository) InsertTask(title, category string, priority int) (*models.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result, err := r.db.conn.Exec(`
		INSERT INTO tasks (title, category, priority, completed)
		VALUES (?, ?, ?, 0)
	`, title, category, priority)
	if err != nil {
		return nil, &StorageError{Op: "insert task", Err: err}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, &StorageError{Op: "read inserted task id", Err: err}
	}

	return &models.Task{
		ID:        &id,
		Title:     title,
		Category:  category,
		Priority:  priority,
		Completed: false,
	}, nil
}

// ListTasks returns every stored task. Order is whatever the store yields.
func (r *Repository) ListTasks() ([]models.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	rows, err := r.db.conn.Query(`
		SELECT id, title, category, priority, completed
		FROM tasks
	`)
	if err != nil {
		return nil, &StorageError{Op: "list tasks", Err: err}
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		var id int64
		if err := rows.Scan(&id, &task.Title, &task.Category, &task.Priority, &task.Completed); err != nil {
			return nil, &StorageError{Op: "list tasks", Err: err}
		}
		task.ID = &id
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list tasks", Err: err}
	}

	return tasks, nil
}

// ToggleTask flips the completed flag of a task. An unknown id is not an error.
func (r *Repository) ToggleTask(id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	_, err := r.db.conn.Exec(`
		UPDATE tasks SET completed = NOT completed
		WHERE id = ?
	`, id)
	if err != nil {
		return &StorageError{Op: "toggle task", Err: err}
	}
	return nil
}
