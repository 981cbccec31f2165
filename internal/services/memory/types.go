package memory

import (
	"github.com/hosogai/enkai/internal/common/uuid"
	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/rng"
	"github.com/hosogai/enkai/internal/services/ledger"
)

const (
	// defaultTargetPairs is the number of image pairs in a full deck
	defaultTargetPairs = 8

	// matchPoints is awarded per successful pair
	matchPoints = 10
)

// Config holds configuration for the memory-match service
type Config struct {
	// AssetsDir is the directory scanned for card images
	AssetsDir string

	// TargetPairs overrides the pairs per deck; defaults to 8
	TargetPairs int

	// Service dependencies
	Rand    *rng.Rand
	UUIDGen uuid.UUID
	Ledger  ledger.Service
}

// BuildSessionInput contains parameters for dealing a new deck
type BuildSessionInput struct {
	// PlayerName is the player the session belongs to
	PlayerName string
}

// BuildSessionOutput contains the initial session state
type BuildSessionOutput struct {
	Session *models.MemorySession
}

// CheckMatchInput contains the two flipped cards as reported by the
// client. Image filenames are preferred when both are present; the
// pair IDs are the fallback.
type CheckMatchInput struct {
	Card1Image string
	Card2Image string
	Card1Pair  int
	Card2Pair  int
}

// CheckMatchOutput contains the match result
type CheckMatchOutput struct {
	// Match indicates whether the two cards form a pair
	Match bool

	// Points is 10 on a match, else 0
	Points int
}

// FinishInput contains parameters for finishing a game
type FinishInput struct {
	// PlayerName is the player the result belongs to
	PlayerName string

	// PairsMatched is the number of pairs found during the game
	PairsMatched int

	// SpecialBonus is an extra adjustment applied to the final score
	SpecialBonus int
}

// FinishOutput contains the final score and the persisted record
type FinishOutput struct {
	FinalScore int
	Record     *models.ScoreRecord
}
