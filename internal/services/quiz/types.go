package quiz

import (
	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/rng"
	"github.com/hosogai/enkai/internal/services/ledger"
)

const (
	// defaultMaxRounds is the number of rounds in a full quiz
	defaultMaxRounds = 10

	// exactMatchPoints is awarded for an exact name match
	exactMatchPoints = 100

	// partialMatchPoints is awarded for a substring match
	partialMatchPoints = 50
)

// Config holds configuration for the quiz service
type Config struct {
	// Catalog is the immutable drink catalog, loaded at startup
	Catalog []models.DrinkEntry

	// MaxRounds overrides the rounds per quiz; defaults to 10
	MaxRounds int

	// Service dependencies
	Rand   *rng.Rand
	Ledger ledger.Service
}

// StartSessionInput contains parameters for starting a quiz
type StartSessionInput struct {
	// Players lists the participating player names in turn order
	Players []string
}

// StartSessionOutput contains the initial client-held session
type StartSessionOutput struct {
	Session *models.QuizSession
}

// RandomDrinkInput contains parameters for drawing a drink
type RandomDrinkInput struct {
	// ExcludeIDs lists drink IDs already seen this quiz
	ExcludeIDs []string
}

// RandomDrinkOutput contains the drawn drink, nil when the exclusion
// set covers the whole catalog
type RandomDrinkOutput struct {
	Drink *models.DrinkEntry
}

// GetDrinkInput contains parameters for a catalog lookup
type GetDrinkInput struct {
	DrinkID string
}

// GetDrinkOutput contains the looked-up drink
type GetDrinkOutput struct {
	Drink *models.DrinkEntry
}

// CheckAnswerInput contains parameters for scoring an answer
type CheckAnswerInput struct {
	// DrinkID identifies the drink being answered
	DrinkID string

	// Answer is the player's free-text answer
	Answer string
}

// CheckAnswerOutput contains the scoring result
type CheckAnswerOutput struct {
	// Correct indicates whether the answer was accepted
	Correct bool

	// Points is 100 for an exact match, 50 for a partial match, else 0
	Points int
}

// FinishInput contains parameters for finishing a quiz
type FinishInput struct {
	// Scores maps each player name to their final score
	Scores map[string]int
}

// FinishOutput contains the persisted ledger record
type FinishOutput struct {
	Record *models.ScoreRecord
}
