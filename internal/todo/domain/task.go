package domain

import "time"

// Task is a single todo item. RepeatType is a pointer because the column is
// nullable and nothing sets it yet.
type Task struct {
	ID          string
	UserID      string
	Text        string
	DueDate     string
	TaskType    string
	TaskClass   string
	RepeatType  *string
	IsCompleted bool
	CreatedAt   time.Time
}
