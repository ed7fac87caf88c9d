package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"debategame/db"
	"debategame/models"

	"github.com/rs/zerolog"
)

// UserService is the user directory: username registration and lookup.
type UserService struct {
	store  db.Store
	logger zerolog.Logger
}

func NewUserService(store db.Store, logger zerolog.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

func (s *UserService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	now := time.Now()
	user := &models.User{
		Username:  username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			s.logger.Warn().Str("username", username).Msg("user already exists")
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.logger.Info().Str("username", username).Msg("user created")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	user, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
