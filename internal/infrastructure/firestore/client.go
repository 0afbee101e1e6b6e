package firestore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Client wraps the Firestore connection shared by the repositories.
type Client struct {
	client *firestore.Client
}

// NewClient connects to Firestore for the given project. On Cloud Run the
// default service-account credentials are used; locally a credentials file
// is read from GOOGLE_APPLICATION_CREDENTIALS, falling back to default
// authentication when the file is missing.
func NewClient(ctx context.Context, projectID string) (*Client, error) {
	var client *firestore.Client
	var err error

	isCloudRun := os.Getenv("K_SERVICE") != ""

	if isCloudRun {
		client, err = firestore.NewClient(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to create Firestore client with default auth: %w", err)
		}
		logrus.Infof("✅ Firestore client initialized for project: %s (Cloud Run default auth)", projectID)
		return &Client{client: client}, nil
	}

	credentialsFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsFile == "" {
		credentialsFile = "voyage-asie-firestore-key.json"
	}

	if _, statErr := os.Stat(credentialsFile); statErr != nil {
		logrus.Warnf("⚠️ Credentials file not found: %s, trying default authentication", credentialsFile)
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		logrus.Infof("📄 Using credentials file: %s", credentialsFile)
		client, err = firestore.NewClient(ctx, projectID, option.WithCredentialsFile(credentialsFile))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	logrus.Infof("✅ Firestore client initialized for project: %s", projectID)
	return &Client{client: client}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// GetClient exposes the raw Firestore client to the repositories.
func (c *Client) GetClient() *firestore.Client {
	return c.client
}
