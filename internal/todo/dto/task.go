package dto

import (
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/domain"
)

type CreateTaskInput struct {
	Text      string `json:"text"`
	DueDate   string `json:"due_date"`
	TaskType  string `json:"task_type"`
	TaskClass string `json:"task_class"`
}

type TaskOutput struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Text        string  `json:"text"`
	DueDate     string  `json:"due_date"`
	TaskType    string  `json:"task_type"`
	TaskClass   string  `json:"task_class"`
	RepeatType  *string `json:"repeat_type"`
	IsCompleted bool    `json:"is_completed"`
}

func NewTaskOutput(task *domain.Task) TaskOutput {
	return TaskOutput{
		ID:          task.ID,
		UserID:      task.UserID,
		Text:        task.Text,
		DueDate:     task.DueDate,
		TaskType:    task.TaskType,
		TaskClass:   task.TaskClass,
		RepeatType:  task.RepeatType,
		IsCompleted: task.IsCompleted,
	}
}
