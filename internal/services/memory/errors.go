package memory

// MemoryError is a custom error type for memory-game errors
type MemoryError string

// Error implements the error interface
func (e MemoryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       MemoryError = "config cannot be nil"
	ErrEmptyAssetsDir  MemoryError = "assets directory cannot be empty"
	ErrNilRandom       MemoryError = "random source cannot be nil"
	ErrNilUUID         MemoryError = "UUID generator cannot be nil"
	ErrNilLedger       MemoryError = "ledger service cannot be nil"
	ErrNilInput        MemoryError = "input cannot be nil"
	ErrEmptyPlayerName MemoryError = "player name cannot be empty"
	ErrNoAssets        MemoryError = "no image assets found"
)
