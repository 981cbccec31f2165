package mansion

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hosogai/enkai/internal/services/mansion Service

import "context"

// Service defines the interface for mansion game operations
type Service interface {
	// Start resets the session's state and generates a fresh round
	// pattern, discarding any previous playthrough under the key
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Choose resolves the current round against the player's pick.
	// Terminal sessions are returned unchanged.
	Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error)
}
