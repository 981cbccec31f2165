package ledger

import (
	"github.com/hosogai/enkai/internal/common/clock"
	"github.com/hosogai/enkai/internal/models"
	ledgerRepo "github.com/hosogai/enkai/internal/repositories/score_ledger"
)

const (
	// defaultRetentionDays is how long records survive before pruning
	defaultRetentionDays = 7

	// dateLayout is the date-only form stored in each record
	dateLayout = "2006-01-02"
)

// Config holds configuration for the ledger service
type Config struct {
	// Number of days records are retained; defaults to 7
	RetentionDays int

	// Repository dependency
	Repo ledgerRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// SaveInput contains parameters for saving a game result
type SaveInput struct {
	// PlayerScores maps each player name to their final score
	PlayerScores map[string]int

	// GameType identifies the game that produced the result
	GameType models.GameType
}

// SaveOutput contains the result of saving a game result
type SaveOutput struct {
	// Record is the ledger entry that was appended
	Record *models.ScoreRecord
}

// AllRecordsInput contains parameters for listing the ledger
type AllRecordsInput struct{}

// AllRecordsOutput contains the full current ledger
type AllRecordsOutput struct {
	Records []*models.ScoreRecord
}

// TodayRankingInput contains parameters for the daily ranking
type TodayRankingInput struct{}

// TodayRankingOutput contains the ranked daily results
type TodayRankingOutput struct {
	Ranking []*models.RankingEntry
}

// PlayerStatsInput contains parameters for player statistics
type PlayerStatsInput struct {
	// PlayerName is the player to aggregate stats for
	PlayerName string
}

// PlayerStatsOutput contains the aggregated player statistics
type PlayerStatsOutput struct {
	Stats *models.PlayerStats
}
