package dto

import (
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/domain"
)

type UserOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func NewUserOutput(user *domain.User) UserOutput {
	return UserOutput{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
