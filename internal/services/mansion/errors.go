package mansion

// MansionError is a custom error type for mansion-game errors
type MansionError string

// Error implements the error interface
func (e MansionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        MansionError = "config cannot be nil"
	ErrNilSessions      MansionError = "session repository cannot be nil"
	ErrNilRandom        MansionError = "random source cannot be nil"
	ErrNoLines          MansionError = "narrative lines cannot be empty"
	ErrEmptyFinalLine   MansionError = "final line cannot be empty"
	ErrNilInput         MansionError = "input cannot be nil"
	ErrEmptySessionID   MansionError = "session ID cannot be empty"
	ErrInvalidDirection MansionError = "direction must be left or right"
	ErrNoActiveSession  MansionError = "no active session, start a game first"
)
