package memory

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/hosogai/enkai/internal/common/uuid"
	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/rng"
	"github.com/hosogai/enkai/internal/services/ledger"
)

// supportedExtensions are the image types the deck builder accepts
var supportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// service implements the Service interface
type service struct {
	assetsDir   string
	targetPairs int
	random      *rng.Rand
	uuidGen     uuid.UUID
	ledger      ledger.Service
}

// New creates a new memory-match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AssetsDir == "" {
		return nil, ErrEmptyAssetsDir
	}

	if cfg.Rand == nil {
		return nil, ErrNilRandom
	}

	if cfg.UUIDGen == nil {
		return nil, ErrNilUUID
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	targetPairs := cfg.TargetPairs
	if targetPairs <= 0 {
		targetPairs = defaultTargetPairs
	}

	return &service{
		assetsDir:   cfg.AssetsDir,
		targetPairs: targetPairs,
		random:      cfg.Rand,
		uuidGen:     cfg.UUIDGen,
		ledger:      cfg.Ledger,
	}, nil
}

// BuildSession scans the asset pool, deduplicates formatting variants
// of the same artwork, and deals a shuffled deck of paired cards.
func (s *service) BuildSession(ctx context.Context, input *BuildSessionInput) (*BuildSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	playerName := strings.TrimSpace(input.PlayerName)
	if playerName == "" {
		return nil, ErrEmptyPlayerName
	}

	pool, err := s.scanAssets()
	if err != nil {
		return nil, err
	}

	s.random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	selected := pool
	if len(selected) > s.targetPairs {
		selected = selected[:s.targetPairs]
	}

	// When the pool is too small, cycle through it in order to pad up
	// to the target. Duplicate-image pairs are accepted in that case.
	for idx := 0; len(selected) < s.targetPairs; idx++ {
		selected = append(selected, pool[idx%len(pool)])
	}

	cards := make([]models.MemoryCard, 0, 2*s.targetPairs)
	for pairID, image := range selected {
		for copies := 0; copies < 2; copies++ {
			cards = append(cards, models.MemoryCard{
				ID:     s.uuidGen.NewUUID(),
				Image:  image,
				PairID: pairID,
			})
		}
	}

	s.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &BuildSessionOutput{
		Session: &models.MemorySession{
			PlayerName: playerName,
			Cards:      cards,
			Matched:    []string{},
			GameType:   models.GameTypeMemoryGame,
		},
	}, nil
}

// CheckMatch reports whether two flipped cards form a pair. Image
// filenames are compared when the client supplied both; pair IDs are
// the fallback. Client-reported card data is trusted here.
func (s *service) CheckMatch(ctx context.Context, input *CheckMatchInput) (*CheckMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	var match bool
	if input.Card1Image != "" && input.Card2Image != "" {
		match = input.Card1Image == input.Card2Image
	} else {
		match = input.Card1Pair == input.Card2Pair
	}

	output := &CheckMatchOutput{
		Match: match,
	}
	if match {
		output.Points = matchPoints
	}

	return output, nil
}

// Finish computes the final score and persists it as one ledger record
func (s *service) Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	playerName := strings.TrimSpace(input.PlayerName)
	if playerName == "" {
		return nil, ErrEmptyPlayerName
	}

	finalScore := input.PairsMatched*matchPoints + input.SpecialBonus
	if finalScore < 0 {
		finalScore = 0
	}

	saveOutput, err := s.ledger.Save(ctx, &ledger.SaveInput{
		PlayerScores: map[string]int{playerName: finalScore},
		GameType:     models.GameTypeMemoryGame,
	})
	if err != nil {
		return nil, err
	}

	return &FinishOutput{
		FinalScore: finalScore,
		Record:     saveOutput.Record,
	}, nil
}

// scanAssets lists the usable images in the asset directory: supported
// extensions only, hidden files skipped, case/formatting variants of
// the same artwork folded into one entry, sorted for determinism.
func (s *service) scanAssets() ([]string, error) {
	entries, err := os.ReadDir(s.assetsDir)
	if err != nil {
		return nil, ErrNoAssets
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := supportedExtensions[ext]; !ok {
			continue
		}

		files = append(files, name)
	}

	if len(files) == 0 {
		return nil, ErrNoAssets
	}

	sort.Strings(files)

	var unique []string
	seen := map[string]struct{}{}
	for _, name := range files {
		key := canonicalImageKey(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, name)
	}

	return unique, nil
}

// canonicalImageKey folds case and formatting variants of a filename
// into one identity: the lowercased alphanumeric characters of the
// basename plus the lowercased extension.
func canonicalImageKey(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	b.WriteString(strings.ToLower(ext))

	return b.String()
}
