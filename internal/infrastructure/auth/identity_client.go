package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

const defaultIdentityBaseURL = "https://identitytoolkit.googleapis.com/v1"

// IdentityClient performs email/password authentication against the
// Firebase Identity Toolkit REST API, the same endpoints the web SDK's
// signInWithEmailAndPassword / createUserWithEmailAndPassword call.
type IdentityClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewIdentityClient creates a client bound to the project's web API key.
func NewIdentityClient(apiKey string) *IdentityClient {
	return &IdentityClient{
		apiKey:     apiKey,
		baseURL:    defaultIdentityBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SignIn exchanges email/password for a session.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	return c.call(ctx, "accounts:signInWithPassword", email, password)
}

// SignUp creates the account and signs it in.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) (*model.Session, error) {
	return c.call(ctx, "accounts:signUp", email, password)
}

func (c *IdentityClient) call(ctx context.Context, endpoint, email, password string) (*model.Session, error) {
	if c.apiKey == "" || c.apiKey == model.APIKeyPlaceholder {
		return nil, model.ErrAPIKeyNotConfigured
	}

	payload, err := json.Marshal(identityRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr identityErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			// Surface the provider's message unchanged (EMAIL_NOT_FOUND,
			// INVALID_PASSWORD, EMAIL_EXISTS, ...).
			logrus.Warnf("⚠️ Auth rejected for %s: %s", email, apiErr.Error.Message)
			return nil, fmt.Errorf("authentication failed: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("auth endpoint returned an error status: %s", resp.Status)
	}

	var body identityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse auth response: %w", err)
	}

	return &model.Session{
		UID:     body.LocalID,
		Email:   body.Email,
		IDToken: body.IDToken,
	}, nil
}

// --- structs for the Identity Toolkit wire format ---

type identityRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type identityErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
