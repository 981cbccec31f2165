package ledger

// LedgerError is a custom error type for ledger-related errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     LedgerError = "config cannot be nil"
	ErrNilRepository LedgerError = "ledger repository cannot be nil"
	ErrNilClock      LedgerError = "clock cannot be nil"
	ErrNilInput      LedgerError = "input cannot be nil"
	ErrEmptyGameType LedgerError = "game type cannot be empty"
	ErrEmptyPlayer   LedgerError = "player name cannot be empty"
)
