package handlers

import (
	"task-manager/app"
	"task-manager/models"

	"github.com/gofiber/fiber/v2"
)

// Command names understood by Invoke. They match what the desktop front-end calls.
const (
	CommandAddTask    = "add_task"
	CommandGetTasks   = "get_tasks"
	CommandToggleTask = "toggle_task"
)

type commandHandler func(a *app.App, c *fiber.Ctx) error

var commands = map[string]commandHandler{
	CommandAddTask:    addTaskCommand,
	CommandGetTasks:   getTasksCommand,
	CommandToggleTask: toggleTaskCommand,
}

// Invoke runs a named command. A successful command answers with its bare result
// as JSON; a failed one answers with {"error": "<message>"}.
func Invoke(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("command")
		handler, ok := commands[name]
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown command: " + name})
		}
		return handler(a, c)
	}
}

func addTaskCommand(a *app.App, c *fiber.Ctx) error {
	var cmd models.AddTaskCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequest(c, "invalid arguments for add_task: "+err.Error())
	}
	if err := a.Validator.Validate(&cmd); err != nil {
		return badRequest(c, "invalid arguments for add_task: "+err.Error())
	}

	task, err := a.TaskService.Add(*cmd.Task)
	if err != nil {
		return failure(c, "add_task failed", err)
	}

	return c.JSON(task)
}

func getTasksCommand(a *app.App, c *fiber.Ctx) error {
	tasks, err := a.TaskService.List()
	if err != nil {
		return failure(c, "get_tasks failed", err)
	}

	return c.JSON(tasks)
}

func toggleTaskCommand(a *app.App, c *fiber.Ctx) error {
	var cmd models.ToggleTaskCommand
	if err := c.BodyParser(&cmd); err != nil {
		return badRequest(c, "invalid arguments for toggle_task: "+err.Error())
	}
	if err := a.Validator.Validate(&cmd); err != nil {
		return badRequest(c, "invalid arguments for toggle_task: "+err.Error())
	}

	if err := a.TaskService.Toggle(*cmd.ID); err != nil {
		return failure(c, "toggle_task failed", err)
	}

	return c.JSON(nil)
}
