package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hosogai/enkai/internal/services/ledger Service

import "context"

// Service defines the interface for score ledger operations
type Service interface {
	// Save appends a finished game's scores to the ledger, pruning
	// expired records first
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// AllRecords returns the full current ledger
	AllRecords(ctx context.Context, input *AllRecordsInput) (*AllRecordsOutput, error)

	// TodayRanking returns today's best score per player, ranked
	TodayRanking(ctx context.Context, input *TodayRankingInput) (*TodayRankingOutput, error)

	// PlayerStats aggregates one player's results across the ledger
	PlayerStats(ctx context.Context, input *PlayerStatsInput) (*PlayerStatsOutput, error)
}
