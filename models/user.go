package models

import "time"

// User is the stored document. Log is embedded and append-only.
type User struct {
	ID        string     `json:"id" firestore:"id" bson:"_id" validate:"required"`
	Username  string     `json:"username" firestore:"username" bson:"username" validate:"required"`
	Log       []Exercise `json:"log,omitempty" firestore:"log" bson:"log"`
	CreatedAt time.Time  `json:"-" firestore:"createdAt" bson:"createdAt"`
}

// UserSummary is the public projection of a user, without the log.
type UserSummary struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{Username: u.Username, ID: u.ID}
}

// NewUserRequest is the form schema for registration.
type NewUserRequest struct {
	Username string `form:"username" json:"username"`
}
