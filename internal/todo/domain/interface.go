package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/VeerKakar17/calendar-todo-list/internal/todo/domain UserRepository,TaskRepository

import "context"

// UserRepository lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByIdentifier matches identifier against username or email.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	ListByOwner(ctx context.Context, userID string) ([]Task, error)
}
