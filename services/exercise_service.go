package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"ExerciseTracker/models"
	"ExerciseTracker/repository"
	"ExerciseTracker/utils"
)

type ExerciseService struct {
	Users repository.UserRepository
	Now   Clock
}

func NewExerciseService(users repository.UserRepository, now Clock) *ExerciseService {
	if now == nil {
		now = SystemClock
	}
	return &ExerciseService{Users: users, Now: now}
}

// validateAddExercise checks the request before the store is touched and
// stops at the first problem.
func validateAddExercise(req models.AddExerciseRequest, now Clock) (models.Exercise, error) {
	var e models.Exercise
	if strings.TrimSpace(req.UserID) == "" {
		return e, utils.NewValidationError("no ID given")
	}
	e.Description = strings.TrimSpace(req.Description)
	if e.Description == "" {
		return e, utils.NewValidationError("missing description")
	}
	rawDuration := strings.TrimSpace(req.Duration)
	if rawDuration == "" {
		return e, utils.NewValidationError("missing duration")
	}
	duration, err := strconv.ParseFloat(rawDuration, 64)
	if err != nil || duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return e, utils.NewValidationError("invalid duration")
	}
	e.Duration = duration

	if strings.TrimSpace(req.Date) == "" {
		e.Date = utils.CalendarDay(now())
	} else {
		e.Date, err = utils.ParseDate(req.Date)
		if err != nil {
			return e, utils.NewValidationError("invalid date")
		}
	}
	return e, nil
}

// AddExercise appends one exercise to the user's log.
func (s *ExerciseService) AddExercise(ctx context.Context, req models.AddExerciseRequest) (*models.ExerciseResponse, error) {
	exercise, err := validateAddExercise(req, s.Now)
	if err != nil {
		return nil, err
	}
	userID := strings.TrimSpace(req.UserID)

	user, err := s.Users.AppendExercise(ctx, userID, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, utils.NewNotFoundError("no valid ID exists")
		}
		return nil, err
	}

	return &models.ExerciseResponse{
		Username:    user.Username,
		ID:          user.ID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        utils.FormatCalendar(exercise.Date),
	}, nil
}

// GetLog returns the user's exercises in [from, to], newest first,
// truncated to limit when one is given.
func (s *ExerciseService) GetLog(ctx context.Context, q models.LogQuery) (*models.LogResponse, error) {
	userID := strings.TrimSpace(q.UserID)
	if userID == "" {
		return nil, utils.NewValidationError("no ID given")
	}

	now := s.Now()
	from, to := epoch, utils.CalendarDay(now)
	var err error
	if strings.TrimSpace(q.From) != "" {
		if from, err = utils.ParseDate(q.From); err != nil {
			return nil, utils.NewValidationError("invalid from date")
		}
	}
	if strings.TrimSpace(q.To) != "" {
		if to, err = utils.ParseDate(q.To); err != nil {
			return nil, utils.NewValidationError("invalid to date")
		}
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("incorrect ID given")
	}

	entries := FilterByDate(user.Log, from, to)
	SortNewestFirst(entries)
	limit, hasLimit := ParseLimit(q.Limit)
	rendered := ApplyLimit(RenderLog(entries), limit, hasLimit)

	resp := &models.LogResponse{
		Username: user.Username,
		ID:       user.ID,
		Count:    len(rendered),
		Log:      rendered,
	}
	if strings.TrimSpace(q.From) != "" {
		resp.From = utils.FormatCalendar(from)
	}
	if strings.TrimSpace(q.To) != "" {
		resp.To = utils.FormatCalendar(to)
	}
	return resp, nil
}
