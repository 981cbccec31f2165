package memory

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hosogai/enkai/internal/services/memory Service

import "context"

// Service defines the interface for memory-match operations
type Service interface {
	// BuildSession scans the asset pool and deals a fresh shuffled deck
	BuildSession(ctx context.Context, input *BuildSessionInput) (*BuildSessionOutput, error)

	// CheckMatch reports whether two flipped cards form a pair
	CheckMatch(ctx context.Context, input *CheckMatchInput) (*CheckMatchOutput, error)

	// Finish computes the final score and persists it to the ledger
	Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error)
}
