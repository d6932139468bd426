package handler

import (
	"errors"

	todoerror "github.com/VeerKakar17/calendar-todo-list/internal/errors"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/dto"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/service"
	"github.com/VeerKakar17/calendar-todo-list/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTaskInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	subjectID, _ := c.Locals(constant.SubjectKey).(string)

	task, err := h.taskService.Create(c.Context(), subjectID, input)
	if err != nil {
		if errors.Is(err, todoerror.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(dto.NewTaskOutput(task))
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	subjectID, _ := c.Locals(constant.SubjectKey).(string)

	tasks, err := h.taskService.ListByOwner(c.Context(), subjectID)
	if err != nil {
		if errors.Is(err, todoerror.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	out := make([]dto.TaskOutput, 0, len(tasks))
	for i := range tasks {
		out = append(out, dto.NewTaskOutput(&tasks[i]))
	}

	return c.JSON(out)
}
