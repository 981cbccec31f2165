package models

// QuizSession is the initial state handed to a drink-quiz client.
// The server does not persist it; the client carries it between calls.
type QuizSession struct {
	// Players lists the participating player names in turn order
	Players []string `json:"players"`

	// CurrentRound is the 1-based round counter
	CurrentRound int `json:"current_round"`

	// MaxRounds is the number of rounds in a full quiz
	MaxRounds int `json:"max_rounds"`

	// Scores maps each player name to their running score
	Scores map[string]int `json:"scores"`

	// CurrentPlayerIdx is the index into Players of whoever answers next
	CurrentPlayerIdx int `json:"current_player_idx"`
}
