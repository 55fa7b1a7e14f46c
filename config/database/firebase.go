package database

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"ExerciseTracker/config/environment"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// OpenFirestore initializes the Firebase app from base64 encoded service
// account credentials and returns its Firestore client.
func OpenFirestore(ctx context.Context, cfg environment.FirebaseConfig) (*firestore.Client, error) {
	if cfg.CredentialsBase64 == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_BASE64 environment variable is missing")
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID environment variable is missing")
	}

	decodedCredentials, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, option.WithCredentialsJSON(decodedCredentials))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	log.Println("Firebase Firestore initialized successfully")
	return client, nil
}
