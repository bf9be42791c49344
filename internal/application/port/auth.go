package port

import (
	"context"

	"github.com/bnema/atlas/internal/domain/entity"
)

// Credentials identify a user to the auth service.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// Authenticator yields an opaque user identity plus the user's previously
// persisted state.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (*entity.Snapshot, error)
	Register(ctx context.Context, creds Credentials) (*entity.Snapshot, error)
}
