package models

// Task is a single entry of the task list. ID is nil until the store assigns one.
type Task struct {
	ID        *int64 `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Priority  int    `json:"priority"`
	Completed bool   `json:"completed"`
}

// CreateTaskRequest carries the fields of a new task. Pointers distinguish a missing
// key from an empty value: every key must be present, any value of the right type is
// accepted.
type CreateTaskRequest struct {
	Title    *string `json:"title" validate:"required"`
	Category *string `json:"category" validate:"required"`
	Priority *int    `json:"priority" validate:"required"`
}

// AddTaskCommand is the body of the add_task command. The front-end sends the whole
// task object, id and completed included; only the creation fields are read.
type AddTaskCommand struct {
	Task *CreateTaskRequest `json:"task" validate:"required"`
}

// ToggleTaskCommand is the body of the toggle_task command.
type ToggleTaskCommand struct {
	ID *int64 `json:"id" validate:"required"`
}
