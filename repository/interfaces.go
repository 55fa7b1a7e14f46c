package repository

import (
	"context"
	"errors"
	"time"

	"ExerciseTracker/models"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUsernameTaken is returned by Create when the store's uniqueness
	// guard rejects the username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUserNotFound is returned by AppendExercise for an unknown id.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository is the record store for users and their embedded logs.
// Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, username string, createdAt time.Time) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.UserSummary, error)
	AppendExercise(ctx context.Context, id string, e models.Exercise) (*models.User, error)
	Close(ctx context.Context) error
}

var validate = validator.New()

// validateUser enforces the document schema before anything is written.
// Failures are validator.ValidationErrors.
func validateUser(u *models.User) error {
	return validate.Struct(u)
}

func validateExercise(e *models.Exercise) error {
	return validate.Struct(e)
}
