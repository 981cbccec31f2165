package ledger

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/hosogai/enkai/internal/common/clock/mocks"
	"github.com/hosogai/enkai/internal/models"
	ledgerRepo "github.com/hosogai/enkai/internal/repositories/score_ledger"
	repoMocks "github.com/hosogai/enkai/internal/repositories/score_ledger/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *repoMocks.MockRepository
	mockClock *clockMocks.MockClock
	service   Service
	ctx       context.Context

	testTime time.Time
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 8, 28, 21, 0, 0, 0, time.UTC)

	svc, err := New(&Config{
		Repo:  s.mockRepo,
		Clock: s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) emptyLedger() {
	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: []*models.ScoreRecord{}}, nil)
}

func (s *LedgerServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{Repo: s.mockRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *LedgerServiceTestSuite) TestSaveComputesWinner() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.emptyLedger()

	var written []*models.ScoreRecord
	s.mockRepo.EXPECT().
		WriteRecords(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.WriteRecordsInput) error {
			written = input.Records
			return nil
		})

	output, err := s.service.Save(s.ctx, &SaveInput{
		PlayerScores: map[string]int{"A": 5, "B": 9},
		GameType:     models.GameTypeDrinkQuiz,
	})
	s.Require().NoError(err)

	s.Equal("B", output.Record.Winner)
	s.Equal("2025-08-28", output.Record.Date)
	s.Equal(s.testTime.Format(time.RFC3339), output.Record.Timestamp)
	s.Equal(models.GameTypeDrinkQuiz, output.Record.GameType)
	s.Equal([]string{"A", "B"}, output.Record.Players)

	s.Require().Len(written, 1)
	s.Equal(output.Record, written[0])
}

func (s *LedgerServiceTestSuite) TestSaveEmptyScoresHasNoWinner() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.emptyLedger()
	s.mockRepo.EXPECT().WriteRecords(s.ctx, gomock.Any()).Return(nil)

	output, err := s.service.Save(s.ctx, &SaveInput{
		PlayerScores: map[string]int{},
		GameType:     models.GameTypeMemoryGame,
	})
	s.Require().NoError(err)
	s.Empty(output.Record.Winner)
	s.Empty(output.Record.Players)
}

func (s *LedgerServiceTestSuite) TestSaveRejectsMissingGameType() {
	_, err := s.service.Save(s.ctx, &SaveInput{
		PlayerScores: map[string]int{"A": 1},
	})
	s.ErrorIs(err, ErrEmptyGameType)
}

func (s *LedgerServiceTestSuite) TestSavePrunesExpiredRecords() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	eightDaysAgo := s.testTime.AddDate(0, 0, -8).Format(dateLayout)
	sixDaysAgo := s.testTime.AddDate(0, 0, -6).Format(dateLayout)

	existing := []*models.ScoreRecord{
		{Date: eightDaysAgo, GameType: models.GameTypeMemoryGame, Players: []string{"old"}, Scores: map[string]int{"old": 1}, Winner: "old"},
		{Date: sixDaysAgo, GameType: models.GameTypeMemoryGame, Players: []string{"recent"}, Scores: map[string]int{"recent": 2}, Winner: "recent"},
		{Date: "not-a-date", GameType: models.GameTypeMemoryGame, Players: []string{"odd"}, Scores: map[string]int{"odd": 3}, Winner: "odd"},
	}

	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: existing}, nil)

	var writes [][]*models.ScoreRecord
	s.mockRepo.EXPECT().
		WriteRecords(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.WriteRecordsInput) error {
			writes = append(writes, input.Records)
			return nil
		}).
		Times(2)

	_, err := s.service.Save(s.ctx, &SaveInput{
		PlayerScores: map[string]int{"new": 4},
		GameType:     models.GameTypeDrinkQuiz,
	})
	s.Require().NoError(err)

	// First write is the pruned ledger: the 8-day-old record is gone,
	// the 6-day-old and unparseable-date records survive.
	s.Require().Len(writes, 2)
	s.Require().Len(writes[0], 2)
	s.Equal(sixDaysAgo, writes[0][0].Date)
	s.Equal("not-a-date", writes[0][1].Date)

	// Second write appends the new record.
	s.Require().Len(writes[1], 3)
	s.Equal("new", writes[1][2].Winner)
}

func (s *LedgerServiceTestSuite) TestSaveKeepsRecordAtRetentionBoundary() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	sevenDaysAgo := s.testTime.AddDate(0, 0, -7).Format(dateLayout)

	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: []*models.ScoreRecord{
			{Date: sevenDaysAgo, GameType: models.GameTypeMemoryGame, Players: []string{"edge"}, Scores: map[string]int{"edge": 5}, Winner: "edge"},
		}}, nil)

	var written []*models.ScoreRecord
	s.mockRepo.EXPECT().
		WriteRecords(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.WriteRecordsInput) error {
			written = input.Records
			return nil
		})

	_, err := s.service.Save(s.ctx, &SaveInput{
		PlayerScores: map[string]int{"new": 1},
		GameType:     models.GameTypeMemoryGame,
	})
	s.Require().NoError(err)

	s.Require().Len(written, 2)
	s.Equal(sevenDaysAgo, written[0].Date)
}

func (s *LedgerServiceTestSuite) TestTodayRankingTakesMaxScore() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	today := s.testTime.Format(dateLayout)
	yesterday := s.testTime.AddDate(0, 0, -1).Format(dateLayout)

	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: []*models.ScoreRecord{
			{Date: today, Players: []string{"A", "B"}, Scores: map[string]int{"A": 5, "B": 7}, Winner: "B"},
			{Date: today, Players: []string{"A"}, Scores: map[string]int{"A": 9}, Winner: "A"},
			{Date: yesterday, Players: []string{"C"}, Scores: map[string]int{"C": 100}, Winner: "C"},
		}}, nil)

	output, err := s.service.TodayRanking(s.ctx, &TodayRankingInput{})
	s.Require().NoError(err)

	s.Require().Len(output.Ranking, 2)
	s.Equal(&models.RankingEntry{Rank: 1, Name: "A", Score: 9}, output.Ranking[0])
	s.Equal(&models.RankingEntry{Rank: 2, Name: "B", Score: 7}, output.Ranking[1])
}

func (s *LedgerServiceTestSuite) TestTodayRankingTiesGetDistinctRanks() {
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	today := s.testTime.Format(dateLayout)

	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: []*models.ScoreRecord{
			{Date: today, Players: []string{"A", "B"}, Scores: map[string]int{"A": 7, "B": 7}, Winner: "A"},
		}}, nil)

	output, err := s.service.TodayRanking(s.ctx, &TodayRankingInput{})
	s.Require().NoError(err)

	s.Require().Len(output.Ranking, 2)
	s.Equal(1, output.Ranking[0].Rank)
	s.Equal(2, output.Ranking[1].Rank)
	s.Equal("A", output.Ranking[0].Name)
	s.Equal("B", output.Ranking[1].Name)
}

func (s *LedgerServiceTestSuite) TestPlayerStatsAggregates() {
	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: []*models.ScoreRecord{
			{Date: "2025-08-27", Players: []string{"A", "B"}, Scores: map[string]int{"A": 50, "B": 70}, Winner: "B"},
			{Date: "2025-08-28", Players: []string{"A"}, Scores: map[string]int{"A": 100}, Winner: "A"},
			{Date: "2025-08-28", Players: []string{"B"}, Scores: map[string]int{"B": 10}, Winner: "B"},
		}}, nil)

	output, err := s.service.PlayerStats(s.ctx, &PlayerStatsInput{PlayerName: "A"})
	s.Require().NoError(err)

	s.Equal("A", output.Stats.PlayerName)
	s.Equal(2, output.Stats.TotalGames)
	s.Equal(1, output.Stats.TotalWins)
	s.Equal(150, output.Stats.TotalPoints)
	s.InDelta(75.0, output.Stats.AveragePoints, 0.0001)
}

func (s *LedgerServiceTestSuite) TestPlayerStatsUnknownPlayerIsAllZero() {
	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: []*models.ScoreRecord{}}, nil)

	output, err := s.service.PlayerStats(s.ctx, &PlayerStatsInput{PlayerName: "nobody"})
	s.Require().NoError(err)

	s.Equal("nobody", output.Stats.PlayerName)
	s.Zero(output.Stats.TotalGames)
	s.Zero(output.Stats.TotalWins)
	s.Zero(output.Stats.TotalPoints)
	s.Zero(output.Stats.AveragePoints)
}

func (s *LedgerServiceTestSuite) TestAllRecordsReturnsLedgerUnfiltered() {
	records := []*models.ScoreRecord{
		{Date: "2020-01-01", Players: []string{"ancient"}, Scores: map[string]int{"ancient": 1}, Winner: "ancient"},
	}

	s.mockRepo.EXPECT().
		ListRecords(s.ctx, gomock.Any()).
		Return(&ledgerRepo.ListRecordsOutput{Records: records}, nil)

	output, err := s.service.AllRecords(s.ctx, &AllRecordsInput{})
	s.Require().NoError(err)
	s.Equal(records, output.Records)
}
