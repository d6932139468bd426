package postgres

import (
	"context"
	"fmt"

	"github.com/VeerKakar17/calendar-todo-list/internal/todo/domain"
)

type PostgresTaskRepository struct {
	db DB
}

func NewPostgresTaskRepository(db DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{db: db}
}

const taskColumns = `id, user_id, text, due_date, task_type, task_class, repeat_type, is_completed, created_at`

func (r *PostgresTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO tasks (id, user_id, text, due_date, task_type, task_class, repeat_type, is_completed, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, task.ID, task.UserID, task.Text, task.DueDate, task.TaskType, task.TaskClass,
		task.RepeatType, task.IsCompleted, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (r *PostgresTaskRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+taskColumns+`
        FROM tasks
        WHERE user_id = $1
        ORDER BY created_at
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		err := rows.Scan(&task.ID, &task.UserID, &task.Text, &task.DueDate, &task.TaskType,
			&task.TaskClass, &task.RepeatType, &task.IsCompleted, &task.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}
