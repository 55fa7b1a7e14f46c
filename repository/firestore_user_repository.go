package repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"ExerciseTracker/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usernamesCollection = "usernames"

// FirestoreUserRepository keeps users in the "users" collection and one
// reservation document per username in "usernames". Creating the
// reservation with Create is what makes usernames unique.
type FirestoreUserRepository struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{FirestoreClient: client}
}

// usernameKey maps a username to a legal document id.
func usernameKey(username string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(username))
}

func (r *FirestoreUserRepository) Create(ctx context.Context, username string, createdAt time.Time) (*models.User, error) {
	userRef := r.FirestoreClient.Collection(usersCollection).NewDoc()
	reservation := r.FirestoreClient.Collection(usernamesCollection).Doc(usernameKey(username))

	u := &models.User{ID: userRef.ID, Username: username, Log: []models.Exercise{}, CreatedAt: createdAt.UTC()}
	if err := validateUser(u); err != nil {
		return nil, err
	}

	err := r.FirestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(reservation, map[string]interface{}{"userId": u.ID}); err != nil {
			return err
		}
		return tx.Create(userRef, u)
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, fmt.Errorf("create %q: %w", username, ErrUsernameTaken)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (r *FirestoreUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, nil
	}
	doc, err := r.FirestoreClient.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return decodeUser(doc)
}

func (r *FirestoreUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	iter := r.FirestoreClient.Collection(usersCollection).Where("username", "==", username).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return decodeUser(doc)
}

// List selects only the summary fields so logs are never transferred.
func (r *FirestoreUserRepository) List(ctx context.Context) ([]models.UserSummary, error) {
	iter := r.FirestoreClient.Collection(usersCollection).
		Select("id", "username", "createdAt").
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	out := []models.UserSummary{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		u, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, u.Summary())
	}
	return out, nil
}

// AppendExercise rewrites the log inside a transaction. ArrayUnion is not
// used because it drops entries equal to an existing one.
func (r *FirestoreUserRepository) AppendExercise(ctx context.Context, id string, e models.Exercise) (*models.User, error) {
	if err := validateExercise(&e); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("append: %w", ErrUserNotFound)
	}
	e.Date = e.Date.UTC()
	ref := r.FirestoreClient.Collection(usersCollection).Doc(id)

	var updated *models.User
	err := r.FirestoreClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}
		u, err := decodeUser(doc)
		if err != nil {
			return err
		}
		u.Log = append(u.Log, e)
		if err := tx.Update(ref, []firestore.Update{{Path: "log", Value: u.Log}}); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("append to %q: %w", id, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to append exercise: %w", err)
	}
	return updated, nil
}

func (r *FirestoreUserRepository) Close(context.Context) error {
	return r.FirestoreClient.Close()
}

func decodeUser(doc *firestore.DocumentSnapshot) (*models.User, error) {
	var u models.User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}
	if u.ID == "" {
		u.ID = doc.Ref.ID
	}
	return &u, nil
}
