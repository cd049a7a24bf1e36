package auth

import (
	"context"
	"fmt"
	"os"
	"sync"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var (
	firebaseOnce sync.Once
	firebaseAuth *firebaseauth.Client
	firebaseErr  error
	projectID    string
)

// firebaseClient initializes Firebase lazily so the server can boot without
// Google sign-in configured. Endpoints that need it fail with a clear error.
func firebaseClient(ctx context.Context) (*firebaseauth.Client, error) {
	firebaseOnce.Do(func() {
		credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		projectID = os.Getenv("FIREBASE_PROJECT_ID")
		if credsJSON == "" || projectID == "" {
			firebaseErr = fmt.Errorf("FIREBASE_CREDENTIALS_JSON and FIREBASE_PROJECT_ID must be set")
			return
		}

		opt := option.WithCredentialsJSON([]byte(credsJSON))
		config := &firebase.Config{ProjectID: projectID}

		app, err := firebase.NewApp(ctx, config, opt)
		if err != nil {
			firebaseErr = fmt.Errorf("initializing Firebase app: %w", err)
			return
		}

		firebaseAuth, firebaseErr = app.Auth(ctx)
	})
	return firebaseAuth, firebaseErr
}
