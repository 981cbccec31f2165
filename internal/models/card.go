package models

// MemoryCard is a single face-down card in a memory-match deck
type MemoryCard struct {
	// ID is the unique identifier for this card instance
	ID string `json:"id"`

	// Image is the asset filename shown when the card is flipped
	Image string `json:"image"`

	// PairID links the two cards that share an image
	PairID int `json:"pair_id"`
}

// MemorySession is the initial state handed to a memory-match client
type MemorySession struct {
	// PlayerName is the player this session belongs to
	PlayerName string `json:"player_name"`

	// Cards is the shuffled deck
	Cards []MemoryCard `json:"cards"`

	// Score is the running score, 0 at start
	Score int `json:"score"`

	// Attempts is the number of flips made, 0 at start
	Attempts int `json:"attempts"`

	// Mistakes is the number of failed matches, 0 at start
	Mistakes int `json:"mistakes"`

	// Matched lists the card IDs already paired off
	Matched []string `json:"matched"`

	// GameOver indicates whether the session has finished
	GameOver bool `json:"game_over"`

	// GameType is always the memory game type
	GameType GameType `json:"game_type"`
}
