package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"ExerciseTracker/models"
	"ExerciseTracker/repository"
	"ExerciseTracker/utils"
)

type UserService struct {
	Users repository.UserRepository
	Now   Clock
}

// NewUserService initializes UserService with the user repository
func NewUserService(users repository.UserRepository, now Clock) *UserService {
	if now == nil {
		now = SystemClock
	}
	return &UserService{Users: users, Now: now}
}

// Register creates a user. The lookup gives the common case a clean error;
// the store's unique guard settles races between concurrent registrations.
func (s *UserService) Register(ctx context.Context, req models.NewUserRequest) (*models.UserSummary, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, utils.NewValidationError("no username given")
	}

	existing, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("username already exists")
	}

	user, err := s.Users.Create(ctx, username, s.Now())
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			log.Printf("Username %q taken by a concurrent registration", username)
			return nil, utils.NewConflictError("username already exists")
		}
		return nil, err
	}

	summary := user.Summary()
	return &summary, nil
}

// ListUsers returns every user as {username, id}.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return s.Users.List(ctx)
}
