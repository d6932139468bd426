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

type UserService struct {
	repo   domain.UserRepository
	hasher *PasswordHasher
	codec  TokenCodec
}

func NewUserService(repo domain.UserRepository, hasher *PasswordHasher, codec TokenCodec) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		codec:  codec,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, todoerror.ErrUsernameTaken
	}

	existing, err = s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, todoerror.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The checks above are optimistic; a concurrent registration hits the
	// unique constraints instead and surfaces as the same sentinels.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenPair, error) {
	user, err := s.repo.GetByIdentifier(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// One error for both unknown identifier and wrong password.
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, todoerror.ErrInvalidCredentials
	}

	accessToken, err := s.codec.Mint(user.ID, TokenKindAccess)
	if err != nil {
		return nil, err
	}

	// The refresh token carries the same subject as its paired access
	// token; it is the sole authority for minting replacements.
	refreshToken, err := s.codec.Mint(user.ID, TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
