package quiz

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hosogai/enkai/internal/services/quiz Service

import "context"

// Service defines the interface for drink quiz operations
type Service interface {
	// StartSession validates the player list and builds the initial
	// client-held quiz session
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// RandomDrink draws a uniformly random catalog entry, skipping
	// excluded IDs
	RandomDrink(ctx context.Context, input *RandomDrinkInput) (*RandomDrinkOutput, error)

	// GetDrink looks up a catalog entry by ID
	GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error)

	// CheckAnswer scores a free-text answer against a drink's name
	CheckAnswer(ctx context.Context, input *CheckAnswerInput) (*CheckAnswerOutput, error)

	// Finish persists the quiz scores to the score ledger
	Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error)
}
