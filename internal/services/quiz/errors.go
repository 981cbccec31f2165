package quiz

// QuizError is a custom error type for quiz-related errors
type QuizError string

// Error implements the error interface
func (e QuizError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       QuizError = "config cannot be nil"
	ErrEmptyCatalog    QuizError = "drink catalog cannot be empty"
	ErrNilRandom       QuizError = "random source cannot be nil"
	ErrNilLedger       QuizError = "ledger service cannot be nil"
	ErrNilInput        QuizError = "input cannot be nil"
	ErrNoPlayers       QuizError = "at least one player is required"
	ErrEmptyPlayerName QuizError = "player name cannot be empty"
	ErrDuplicatePlayer QuizError = "player names must be unique"
	ErrDrinkNotFound   QuizError = "drink not found"
)
