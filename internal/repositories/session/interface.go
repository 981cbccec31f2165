package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hosogai/enkai/internal/repositories/session Repository

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when no session exists for a key
var ErrSessionNotFound = errors.New("session not found")

// Repository defines the interface for mansion session storage.
// Sessions are keyed by the client's session identity; storing a
// session under an existing key overwrites the previous state.
type Repository interface {
	// GetSession retrieves the session stored under a key
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// SaveSession stores a session, replacing any previous state
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// DeleteSession removes the session stored under a key
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
