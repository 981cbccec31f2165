package models

// Difficulty represents how hard a drink is to recognize
type Difficulty string

const (
	// DifficultyEasy indicates a well-known drink
	DifficultyEasy Difficulty = "easy"

	// DifficultyNormal indicates a moderately known drink
	DifficultyNormal Difficulty = "normal"

	// DifficultyHard indicates an obscure drink
	DifficultyHard Difficulty = "hard"
)

// DrinkEntry is one entry in the drink catalog
type DrinkEntry struct {
	// ID is the unique identifier for the drink
	ID string `json:"id"`

	// Name is the canonical drink name used for answer checking
	Name string `json:"name"`

	// Filename is the image file shown during the quiz
	Filename string `json:"filename"`

	// Difficulty is the recognition difficulty of the drink
	Difficulty Difficulty `json:"difficulty"`
}
