package models

// GameType identifies which game produced a score record
type GameType string

const (
	// GameTypeDrinkQuiz indicates a drink-naming quiz result
	GameTypeDrinkQuiz GameType = "drink_quiz"

	// GameTypeMemoryGame indicates a memory/matching card game result
	GameTypeMemoryGame GameType = "memory_game"
)

// ScoreRecord is one entry in the append-only score ledger
type ScoreRecord struct {
	// Timestamp is the full save time in RFC 3339 format
	Timestamp string `json:"timestamp"`

	// Date is the save date in YYYY-MM-DD form, used for pruning and ranking
	Date string `json:"date"`

	// GameType is the game that produced this record
	GameType GameType `json:"game_type"`

	// Players lists the participating player names in order
	Players []string `json:"players"`

	// Scores maps each player name to the points they earned
	Scores map[string]int `json:"scores"`

	// Winner is the player with the highest score, empty when no scores exist
	Winner string `json:"winner"`
}

// RankingEntry is one row of the daily ranking
type RankingEntry struct {
	// Rank is the 1-based position after sorting by score
	Rank int `json:"rank"`

	// Name is the player name
	Name string `json:"name"`

	// Score is the player's best score of the day
	Score int `json:"score"`
}

// PlayerStats aggregates a player's results across the ledger
type PlayerStats struct {
	// PlayerName is the name the stats were computed for
	PlayerName string `json:"player_name"`

	// TotalGames is the number of records the player appears in
	TotalGames int `json:"total_games"`

	// TotalWins is the number of records the player won
	TotalWins int `json:"total_wins"`

	// TotalPoints is the sum of the player's scores across all records
	TotalPoints int `json:"total_points"`

	// AveragePoints is TotalPoints divided by TotalGames, 0 when no games
	AveragePoints float64 `json:"average_points"`
}
