package repository

import (
	"context"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/model"
)

// AuthProvider performs email/password authentication against the identity
// backend. Both calls return a Session on success; failures carry the
// provider's message so the UI can surface it unchanged.
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignUp(ctx context.Context, email, password string) (*model.Session, error)
}
