package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"
)

// FirebaseVerifier validates Firebase ID tokens server-side, so protected
// routes can check that a bearer token really belongs to the signed-in user.
type FirebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier initializes the Admin SDK with the project's default
// credentials (GOOGLE_APPLICATION_CREDENTIALS or the runtime service
// account, shared with the Firestore client).
func NewFirebaseVerifier(ctx context.Context, projectID string) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase auth client: %w", err)
	}
	logrus.Infof("✅ Firebase token verifier initialized for project: %s", projectID)
	return &FirebaseVerifier{client: client}, nil
}

// VerifyToken checks a raw Authorization header value and returns the UID
// the token was minted for.
func (v *FirebaseVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	if rawToken == "" {
		return "", errors.New("no bearer token in header")
	}
	token := strings.TrimPrefix(rawToken, "Bearer ")

	verified, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("ID token verification failed: %w", err)
	}
	return verified.UID, nil
}
