package service

import (
	"context"
	"fmt"
	"time"

	todoerror "github.com/VeerKakar17/calendar-todo-list/internal/errors"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/domain"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/dto"
	"github.com/google/uuid"
)

type TaskService struct {
	tasks domain.TaskRepository
	users domain.UserRepository
}

func NewTaskService(tasks domain.TaskRepository, users domain.UserRepository) *TaskService {
	return &TaskService{
		tasks: tasks,
		users: users,
	}
}

func (s *TaskService) Create(ctx context.Context, ownerID string, input dto.CreateTaskInput) (*domain.Task, error) {
	// A token can outlive its user; the subject must still exist.
	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if owner == nil {
		return nil, todoerror.ErrUserNotFound
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      owner.ID,
		Text:        input.Text,
		DueDate:     input.DueDate,
		TaskType:    input.TaskType,
		TaskClass:   input.TaskClass,
		IsCompleted: false,
		CreatedAt:   time.Now(),
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner: %w", err)
	}
	if owner == nil {
		return nil, todoerror.ErrUserNotFound
	}

	return s.tasks.ListByOwner(ctx, ownerID)
}
