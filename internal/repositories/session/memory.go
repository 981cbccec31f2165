package session

import (
	"context"
	"errors"
	"sync"

	"github.com/hosogai/enkai/internal/models"
)

// memoryRepository implements the Repository interface with a
// process-local map. This is the default store for single-instance
// deployments; sessions do not survive a restart.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.MansionSession
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.MansionSession),
	}
}

// GetSession retrieves the session stored under a key
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Hand out a copy so callers cannot mutate stored state in place.
	copied := *stored
	copied.Pattern = append([]models.RoundEntry(nil), stored.Pattern...)

	return &GetSessionOutput{
		Session: &copied,
	}, nil
}

// SaveSession stores a session, replacing any previous state
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	copied := *input.Session
	copied.Pattern = append([]models.RoundEntry(nil), input.Session.Pattern...)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[copied.ID] = &copied

	return nil
}

// DeleteSession removes the session stored under a key
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, input.SessionID)

	return nil
}
