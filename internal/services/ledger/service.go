package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/hosogai/enkai/internal/common/clock"
	"github.com/hosogai/enkai/internal/models"
	ledgerRepo "github.com/hosogai/enkai/internal/repositories/score_ledger"
)

// service implements the Service interface
type service struct {
	retentionDays int
	repo          ledgerRepo.Repository
	clock         clock.Clock
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	retentionDays := cfg.RetentionDays
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}

	return &service{
		retentionDays: retentionDays,
		repo:          cfg.Repo,
		clock:         cfg.Clock,
	}, nil
}

// Save appends a finished game's scores to the ledger. Records older
// than the retention window are pruned first; records with an
// unparseable date are kept rather than dropped.
func (s *service) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.GameType == "" {
		return nil, ErrEmptyGameType
	}

	now := s.clock.Now()

	records, err := s.pruneExpired(ctx, now)
	if err != nil {
		return nil, err
	}

	record := &models.ScoreRecord{
		Timestamp: now.Format(time.RFC3339),
		Date:      now.Format(dateLayout),
		GameType:  input.GameType,
		Players:   playerOrder(input.PlayerScores),
		Scores:    input.PlayerScores,
		Winner:    "",
	}
	if record.Scores == nil {
		record.Scores = map[string]int{}
	}

	// Winner is the highest score; ties go to the earlier player in
	// the record's player order.
	for _, name := range record.Players {
		if record.Winner == "" || record.Scores[name] > record.Scores[record.Winner] {
			record.Winner = name
		}
	}

	records = append(records, record)

	err = s.repo.WriteRecords(ctx, &ledgerRepo.WriteRecordsInput{
		Records: records,
	})
	if err != nil {
		return nil, err
	}

	return &SaveOutput{
		Record: record,
	}, nil
}

// AllRecords returns the full current ledger, unfiltered
func (s *service) AllRecords(ctx context.Context, input *AllRecordsInput) (*AllRecordsOutput, error) {
	listOutput, err := s.repo.ListRecords(ctx, &ledgerRepo.ListRecordsInput{})
	if err != nil {
		return nil, err
	}

	return &AllRecordsOutput{
		Records: listOutput.Records,
	}, nil
}

// TodayRanking filters the ledger to today's records, takes each
// player's best score, and ranks descending. Equal scores get
// distinct consecutive ranks in first-seen order.
func (s *service) TodayRanking(ctx context.Context, input *TodayRankingInput) (*TodayRankingOutput, error) {
	listOutput, err := s.repo.ListRecords(ctx, &ledgerRepo.ListRecordsInput{})
	if err != nil {
		return nil, err
	}

	today := s.clock.Now().Format(dateLayout)

	var names []string
	best := map[string]int{}

	for _, record := range listOutput.Records {
		if record.Date != today {
			continue
		}
		for _, name := range record.Players {
			score, ok := record.Scores[name]
			if !ok {
				continue
			}
			if prev, seen := best[name]; seen {
				if score > prev {
					best[name] = score
				}
			} else {
				best[name] = score
				names = append(names, name)
			}
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		return best[names[i]] > best[names[j]]
	})

	ranking := make([]*models.RankingEntry, 0, len(names))
	for idx, name := range names {
		ranking = append(ranking, &models.RankingEntry{
			Rank:  idx + 1,
			Name:  name,
			Score: best[name],
		})
	}

	return &TodayRankingOutput{
		Ranking: ranking,
	}, nil
}

// PlayerStats aggregates one player's results across the whole ledger
func (s *service) PlayerStats(ctx context.Context, input *PlayerStatsInput) (*PlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerName == "" {
		return nil, ErrEmptyPlayer
	}

	listOutput, err := s.repo.ListRecords(ctx, &ledgerRepo.ListRecordsInput{})
	if err != nil {
		return nil, err
	}

	stats := &models.PlayerStats{
		PlayerName: input.PlayerName,
	}

	for _, record := range listOutput.Records {
		if !containsPlayer(record.Players, input.PlayerName) {
			continue
		}

		stats.TotalGames++
		stats.TotalPoints += record.Scores[input.PlayerName]
		if record.Winner == input.PlayerName {
			stats.TotalWins++
		}
	}

	if stats.TotalGames > 0 {
		stats.AveragePoints = float64(stats.TotalPoints) / float64(stats.TotalGames)
	}

	return &PlayerStatsOutput{
		Stats: stats,
	}, nil
}

// pruneExpired drops records strictly older than the retention window
// and rewrites the ledger. Unparseable dates fail open: the record is
// retained.
func (s *service) pruneExpired(ctx context.Context, now time.Time) ([]*models.ScoreRecord, error) {
	listOutput, err := s.repo.ListRecords(ctx, &ledgerRepo.ListRecordsInput{})
	if err != nil {
		return nil, err
	}

	cutoff := dateOnly(now.AddDate(0, 0, -s.retentionDays))

	kept := make([]*models.ScoreRecord, 0, len(listOutput.Records))
	for _, record := range listOutput.Records {
		recordDate, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			kept = append(kept, record)
			continue
		}

		if !recordDate.Before(cutoff) {
			kept = append(kept, record)
		}
	}

	if len(kept) != len(listOutput.Records) {
		err = s.repo.WriteRecords(ctx, &ledgerRepo.WriteRecordsInput{
			Records: kept,
		})
		if err != nil {
			return nil, err
		}
	}

	return kept, nil
}

// playerOrder returns the record's canonical player ordering. Map
// iteration order is not stable, so names are sorted to keep winner
// tie-breaks and stored records deterministic.
func playerOrder(scores map[string]int) []string {
	names := make([]string, 0, len(scores))
	for name := range scores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func containsPlayer(players []string, name string) bool {
	for _, player := range players {
		if player == name {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
