package handlers

import (
	"strconv"

	"task-manager/app"
	"task-manager/models"

	"github.com/gofiber/fiber/v2"
)

// GetTasks lists every task
func GetTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks, err := a.TaskService.List()
		if err != nil {
			return failure(c, "Failed to fetch tasks", err)
		}

		return success(c, fiber.Map{"tasks": tasks})
	}
}

// CreateTask creates a new task
func CreateTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		task, err := a.TaskService.Add(req)
		if err != nil {
			return failure(c, "Failed to create task", err)
		}

		return created(c, fiber.Map{"task": task})
	}
}

// ToggleTask flips the completed flag of the task in the path
func ToggleTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return badRequest(c, "task ID must be an integer")
		}

		if err := a.TaskService.Toggle(id); err != nil {
			return failure(c, "Failed to toggle task", err)
		}

		return success(c, fiber.Map{"message": "Task toggled successfully"})
	}
}
