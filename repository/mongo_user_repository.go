package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ExerciseTracker/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

type MongoUserRepository struct {
	db    *mongo.Database
	users *mongo.Collection
}

// NewMongoUserRepository makes sure the unique username index exists.
func NewMongoUserRepository(ctx context.Context, db *mongo.Database) (*MongoUserRepository, error) {
	users := db.Collection(usersCollection)
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return nil, fmt.Errorf("create username index: %w", err)
	}
	return &MongoUserRepository{db: db, users: users}, nil
}

func (r *MongoUserRepository) Create(ctx context.Context, username string, createdAt time.Time) (*models.User, error) {
	u := &models.User{ID: uuid.NewString(), Username: username, Log: []models.Exercise{}, CreatedAt: createdAt.UTC()}
	if err := validateUser(u); err != nil {
		return nil, err
	}
	if _, err := r.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("create %q: %w", username, ErrUsernameTaken)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.users.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// List projects the log away so the payload stays small.
func (r *MongoUserRepository) List(ctx context.Context) ([]models.UserSummary, error) {
	opts := options.Find().
		SetProjection(bson.M{"log": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cur.Close(ctx)

	out := []models.UserSummary{}
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		out = append(out, u.Summary())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendExercise pushes e onto the log atomically and returns the updated user.
func (r *MongoUserRepository) AppendExercise(ctx context.Context, id string, e models.Exercise) (*models.User, error) {
	if err := validateExercise(&e); err != nil {
		return nil, err
	}
	e.Date = e.Date.UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := r.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"log": e}}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("append to %q: %w", id, ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to append exercise: %w", err)
	}
	return &u, nil
}

func (r *MongoUserRepository) Close(ctx context.Context) error {
	return r.db.Client().Disconnect(ctx)
}
