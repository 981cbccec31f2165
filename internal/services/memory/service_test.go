package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	commonUUID "github.com/hosogai/enkai/internal/common/uuid"
	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/rng"
	"github.com/hosogai/enkai/internal/services/ledger"
	ledgerMocks "github.com/hosogai/enkai/internal/services/ledger/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MemoryServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockLedger *ledgerMocks.MockService
	assetsDir  string
	ctx        context.Context
}

func (s *MemoryServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockLedger = ledgerMocks.NewMockService(s.mockCtrl)
	s.assetsDir = s.T().TempDir()
	s.ctx = context.Background()
}

func (s *MemoryServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMemoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryServiceTestSuite))
}

func (s *MemoryServiceTestSuite) newService(seed int64) Service {
	svc, err := New(&Config{
		AssetsDir: s.assetsDir,
		Rand:      rng.New(&rng.Config{Seed: seed}),
		UUIDGen:   commonUUID.New(),
		Ledger:    s.mockLedger,
	})
	s.Require().NoError(err)
	return svc
}

func (s *MemoryServiceTestSuite) writeAssets(names ...string) {
	for _, name := range names {
		err := os.WriteFile(filepath.Join(s.assetsDir, name), []byte("img"), 0o644)
		s.Require().NoError(err)
	}
}

func (s *MemoryServiceTestSuite) TestBuildSessionDeckInvariants() {
	for i := 0; i < 10; i++ {
		s.writeAssets(fmt.Sprintf("art%02d.jpg", i))
	}

	output, err := s.newService(42).BuildSession(s.ctx, &BuildSessionInput{
		PlayerName: "aoi",
	})
	s.Require().NoError(err)

	session := output.Session
	s.Equal("aoi", session.PlayerName)
	s.Zero(session.Score)
	s.Zero(session.Attempts)
	s.Zero(session.Mistakes)
	s.Empty(session.Matched)
	s.False(session.GameOver)
	s.Equal(models.GameTypeMemoryGame, session.GameType)

	s.Require().Len(session.Cards, 16)

	pairCounts := map[int]int{}
	ids := map[string]struct{}{}
	for _, card := range session.Cards {
		pairCounts[card.PairID]++
		ids[card.ID] = struct{}{}
	}

	s.Len(ids, 16, "card IDs must be unique")
	s.Len(pairCounts, 8)
	for pairID := 0; pairID < 8; pairID++ {
		s.Equal(2, pairCounts[pairID], "pair %d must appear exactly twice", pairID)
	}
}

func (s *MemoryServiceTestSuite) TestBuildSessionIsDeterministicGivenSeed() {
	for i := 0; i < 12; i++ {
		s.writeAssets(fmt.Sprintf("art%02d.png", i))
	}

	first, err := s.newService(7).BuildSession(s.ctx, &BuildSessionInput{PlayerName: "aoi"})
	s.Require().NoError(err)

	second, err := s.newService(7).BuildSession(s.ctx, &BuildSessionInput{PlayerName: "aoi"})
	s.Require().NoError(err)

	s.Require().Len(second.Session.Cards, len(first.Session.Cards))
	for i := range first.Session.Cards {
		s.Equal(first.Session.Cards[i].Image, second.Session.Cards[i].Image)
		s.Equal(first.Session.Cards[i].PairID, second.Session.Cards[i].PairID)
	}
}

func (s *MemoryServiceTestSuite) TestBuildSessionDeduplicatesVariants() {
	// Three formatting variants of the same artwork plus one other
	// image: the pool collapses to two unique images.
	s.writeAssets("Sunset Beach.jpg", "sunset-beach.JPG", "sunsetbeach.jpg", "moon.png")

	output, err := s.newService(3).BuildSession(s.ctx, &BuildSessionInput{PlayerName: "aoi"})
	s.Require().NoError(err)

	images := map[string]int{}
	for _, card := range output.Session.Cards {
		images[canonicalImageKey(card.Image)]++
	}

	s.Require().Len(output.Session.Cards, 16)
	s.Len(images, 2)
	s.Equal(8, images["sunsetbeach.jpg"])
	s.Equal(8, images["moon.png"])
}

func (s *MemoryServiceTestSuite) TestBuildSessionPadsSmallPools() {
	s.writeAssets("one.jpg", "two.jpg", "three.jpg")

	output, err := s.newService(5).BuildSession(s.ctx, &BuildSessionInput{PlayerName: "aoi"})
	s.Require().NoError(err)

	s.Require().Len(output.Session.Cards, 16)

	pairCounts := map[int]int{}
	for _, card := range output.Session.Cards {
		pairCounts[card.PairID]++
	}
	s.Len(pairCounts, 8)
	for pairID, count := range pairCounts {
		s.Equal(2, count, "pair %d must appear exactly twice", pairID)
	}
}

func (s *MemoryServiceTestSuite) TestBuildSessionSkipsHiddenAndUnsupportedFiles() {
	s.writeAssets(".hidden.jpg", "notes.txt", "movie.mp4")

	_, err := s.newService(1).BuildSession(s.ctx, &BuildSessionInput{PlayerName: "aoi"})
	s.ErrorIs(err, ErrNoAssets)
}

func (s *MemoryServiceTestSuite) TestBuildSessionEmptyDirectory() {
	_, err := s.newService(1).BuildSession(s.ctx, &BuildSessionInput{PlayerName: "aoi"})
	s.ErrorIs(err, ErrNoAssets)
}

func (s *MemoryServiceTestSuite) TestBuildSessionEmptyPlayerName() {
	s.writeAssets("one.jpg")

	_, err := s.newService(1).BuildSession(s.ctx, &BuildSessionInput{PlayerName: "   "})
	s.ErrorIs(err, ErrEmptyPlayerName)
}

func (s *MemoryServiceTestSuite) TestCheckMatchPrefersImages() {
	s.writeAssets("one.jpg")
	svc := s.newService(1)

	// Matching images win even when the pair IDs disagree.
	output, err := svc.CheckMatch(s.ctx, &CheckMatchInput{
		Card1Image: "one.jpg",
		Card2Image: "one.jpg",
		Card1Pair:  0,
		Card2Pair:  5,
	})
	s.Require().NoError(err)
	s.True(output.Match)
	s.Equal(10, output.Points)

	output, err = svc.CheckMatch(s.ctx, &CheckMatchInput{
		Card1Image: "one.jpg",
		Card2Image: "two.jpg",
		Card1Pair:  3,
		Card2Pair:  3,
	})
	s.Require().NoError(err)
	s.False(output.Match)
	s.Zero(output.Points)
}

func (s *MemoryServiceTestSuite) TestCheckMatchFallsBackToPairIDs() {
	s.writeAssets("one.jpg")
	svc := s.newService(1)

	output, err := svc.CheckMatch(s.ctx, &CheckMatchInput{
		Card1Pair: 4,
		Card2Pair: 4,
	})
	s.Require().NoError(err)
	s.True(output.Match)
	s.Equal(10, output.Points)

	output, err = svc.CheckMatch(s.ctx, &CheckMatchInput{
		Card1Pair: 4,
		Card2Pair: 2,
	})
	s.Require().NoError(err)
	s.False(output.Match)
}

func (s *MemoryServiceTestSuite) TestFinishComputesFinalScore() {
	s.writeAssets("one.jpg")
	svc := s.newService(1)

	record := &models.ScoreRecord{
		GameType: models.GameTypeMemoryGame,
		Players:  []string{"aoi"},
		Scores:   map[string]int{"aoi": 95},
		Winner:   "aoi",
	}

	s.mockLedger.EXPECT().
		Save(s.ctx, &ledger.SaveInput{
			PlayerScores: map[string]int{"aoi": 95},
			GameType:     models.GameTypeMemoryGame,
		}).
		Return(&ledger.SaveOutput{Record: record}, nil)

	output, err := svc.Finish(s.ctx, &FinishInput{
		PlayerName:   "aoi",
		PairsMatched: 8,
		SpecialBonus: 15,
	})
	s.Require().NoError(err)
	s.Equal(95, output.FinalScore)
	s.Equal(record, output.Record)
}

func (s *MemoryServiceTestSuite) TestFinishClampsNegativeScores() {
	s.writeAssets("one.jpg")
	svc := s.newService(1)

	s.mockLedger.EXPECT().
		Save(s.ctx, &ledger.SaveInput{
			PlayerScores: map[string]int{"aoi": 0},
			GameType:     models.GameTypeMemoryGame,
		}).
		Return(&ledger.SaveOutput{Record: &models.ScoreRecord{}}, nil)

	output, err := svc.Finish(s.ctx, &FinishInput{
		PlayerName:   "aoi",
		PairsMatched: 1,
		SpecialBonus: -100,
	})
	s.Require().NoError(err)
	s.Zero(output.FinalScore)
}
