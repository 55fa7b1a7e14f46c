package models

import "time"

// Exercise is one logged activity embedded in a User.
type Exercise struct {
	Description string    `json:"description" firestore:"description" bson:"description" validate:"required"`
	Duration    float64   `json:"duration" firestore:"duration" bson:"duration" validate:"gte=0"`
	Date        time.Time `json:"date" firestore:"date" bson:"date" validate:"required"`
}

// AddExerciseRequest is the form schema for logging an exercise.
// Date is optional; everything else is required.
type AddExerciseRequest struct {
	UserID      string `form:"userId" json:"userId"`
	Description string `form:"description" json:"description"`
	Duration    string `form:"duration" json:"duration"`
	Date        string `form:"date" json:"date"`
}

// LogQuery is the query-string schema for the log endpoint.
// UserID is required; the rest are optional.
type LogQuery struct {
	UserID string `form:"userId" json:"userId"`
	From   string `form:"from" json:"from"`
	To     string `form:"to" json:"to"`
	Limit  string `form:"limit" json:"limit"`
}

// ExerciseResponse is returned after a successful add.
type ExerciseResponse struct {
	Username    string  `json:"username"`
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// LogEntry is one rendered log line.
type LogEntry struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// LogResponse is the payload of a log query. From and To are only present
// when the client supplied them.
type LogResponse struct {
	Username string     `json:"username"`
	ID       string     `json:"id"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
