package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ExerciseTracker/models"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

const sqliteDateLayout = "2006-01-02"

type SQLiteUserRepository struct {
	db *sql.DB
}

func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user with a fresh uuid. The UNIQUE constraint on
// username is what rejects duplicates.
func (r *SQLiteUserRepository) Create(ctx context.Context, username string, createdAt time.Time) (*models.User, error) {
	u := &models.User{ID: uuid.NewString(), Username: username, Log: []models.Exercise{}, CreatedAt: createdAt.UTC()}
	if err := validateUser(u); err != nil {
		return nil, err
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, username, created_at) VALUES (?, ?, ?)`,
		u.ID, u.Username, u.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, fmt.Errorf("create %q: %w", username, ErrUsernameTaken)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

func (r *SQLiteUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT id, username, created_at FROM users WHERE id = ?`, id)
}

func (r *SQLiteUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT id, username, created_at FROM users WHERE username = ?`, username)
}

func (r *SQLiteUserRepository) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	log, err := r.loadLog(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Log = log
	return &u, nil
}

func (r *SQLiteUserRepository) loadLog(ctx context.Context, userID string) ([]models.Exercise, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT description, duration, date FROM exercises WHERE user_id = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercises: %w", err)
	}
	defer rows.Close()

	out := []models.Exercise{}
	for rows.Next() {
		var e models.Exercise
		var date string
		if err := rows.Scan(&e.Description, &e.Duration, &date); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		e.Date, err = time.Parse(sqliteDateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("bad stored date %q: %w", date, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// List returns users in creation order without their logs.
func (r *SQLiteUserRepository) List(ctx context.Context) ([]models.UserSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	out := []models.UserSummary{}
	for rows.Next() {
		var s models.UserSummary
		if err := rows.Scan(&s.ID, &s.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendExercise adds e to the end of the user's log in one transaction.
func (r *SQLiteUserRepository) AppendExercise(ctx context.Context, id string, e models.Exercise) (*models.User, error) {
	if err := validateExercise(&e); err != nil {
		return nil, err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var u models.User
	err = tx.QueryRowContext(ctx, `SELECT id, username, created_at FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("append to %q: %w", id, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO exercises (user_id, description, duration, date) VALUES (?, ?, ?, ?)`,
		id, e.Description, e.Duration, e.Date.UTC().Format(sqliteDateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to insert exercise: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log, err := r.loadLog(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Log = log
	return &u, nil
}

func (r *SQLiteUserRepository) Close(context.Context) error {
	return r.db.Close()
}
