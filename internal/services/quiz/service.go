package quiz

import (
	"context"
	"strings"

	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/rng"
	"github.com/hosogai/enkai/internal/services/ledger"
)

// service implements the Service interface
type service struct {
	catalog   []models.DrinkEntry
	byID      map[string]*models.DrinkEntry
	maxRounds int
	random    *rng.Rand
	ledger    ledger.Service
}

// New creates a new quiz service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	if cfg.Rand == nil {
		return nil, ErrNilRandom
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = defaultMaxRounds
	}

	byID := make(map[string]*models.DrinkEntry, len(cfg.Catalog))
	for i := range cfg.Catalog {
		byID[cfg.Catalog[i].ID] = &cfg.Catalog[i]
	}

	return &service{
		catalog:   cfg.Catalog,
		byID:      byID,
		maxRounds: maxRounds,
		random:    cfg.Rand,
		ledger:    cfg.Ledger,
	}, nil
}

// StartSession validates the player list and builds the initial
// client-held quiz session
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Players) == 0 {
		return nil, ErrNoPlayers
	}

	seen := make(map[string]struct{}, len(input.Players))
	for _, player := range input.Players {
		if strings.TrimSpace(player) == "" {
			return nil, ErrEmptyPlayerName
		}
		if _, dup := seen[player]; dup {
			return nil, ErrDuplicatePlayer
		}
		seen[player] = struct{}{}
	}

	scores := make(map[string]int, len(input.Players))
	for _, player := range input.Players {
		scores[player] = 0
	}

	return &StartSessionOutput{
		Session: &models.QuizSession{
			Players:          input.Players,
			CurrentRound:     1,
			MaxRounds:        s.maxRounds,
			Scores:           scores,
			CurrentPlayerIdx: 0,
		},
	}, nil
}

// RandomDrink draws a uniformly random catalog entry whose ID is not
// excluded. Drink is nil when the exclusion set covers the catalog.
func (s *service) RandomDrink(ctx context.Context, input *RandomDrinkInput) (*RandomDrinkOutput, error) {
	excluded := map[string]struct{}{}
	if input != nil {
		for _, id := range input.ExcludeIDs {
			excluded[id] = struct{}{}
		}
	}

	available := make([]*models.DrinkEntry, 0, len(s.catalog))
	for i := range s.catalog {
		if _, skip := excluded[s.catalog[i].ID]; skip {
			continue
		}
		available = append(available, &s.catalog[i])
	}

	if len(available) == 0 {
		return &RandomDrinkOutput{}, nil
	}

	return &RandomDrinkOutput{
		Drink: available[s.random.Intn(len(available))],
	}, nil
}

// GetDrink looks up a catalog entry by ID
func (s *service) GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	drink, ok := s.byID[input.DrinkID]
	if !ok {
		return nil, ErrDrinkNotFound
	}

	return &GetDrinkOutput{
		Drink: drink,
	}, nil
}

// CheckAnswer scores a free-text answer against the drink's canonical
// name. The scorer is deliberately forgiving: a substring match in
// either direction still earns points.
func (s *service) CheckAnswer(ctx context.Context, input *CheckAnswerInput) (*CheckAnswerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	drink, ok := s.byID[input.DrinkID]
	if !ok {
		return &CheckAnswerOutput{}, nil
	}

	correct := strings.ToLower(strings.TrimSpace(drink.Name))
	answer := strings.ToLower(strings.TrimSpace(input.Answer))

	if answer == "" {
		return &CheckAnswerOutput{}, nil
	}

	if answer == correct {
		return &CheckAnswerOutput{
			Correct: true,
			Points:  exactMatchPoints,
		}, nil
	}

	if strings.Contains(correct, answer) || strings.Contains(answer, correct) {
		return &CheckAnswerOutput{
			Correct: true,
			Points:  partialMatchPoints,
		}, nil
	}

	return &CheckAnswerOutput{}, nil
}

// Finish persists the quiz scores as one ledger record
func (s *service) Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	saveOutput, err := s.ledger.Save(ctx, &ledger.SaveInput{
		PlayerScores: input.Scores,
		GameType:     models.GameTypeDrinkQuiz,
	})
	if err != nil {
		return nil, err
	}

	return &FinishOutput{
		Record: saveOutput.Record,
	}, nil
}
