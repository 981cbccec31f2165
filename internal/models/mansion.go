package models

// AnomalyType names the visual overlay applied to a mansion round.
// The values are the CSS class names consumed by the frontend.
type AnomalyType string

const (
	// AnomalyNone is the neutral overlay used for anomaly-free rounds
	AnomalyNone AnomalyType = "overlay-soft-warm"

	// AnomalyShadowBleed darkens the room edges
	AnomalyShadowBleed AnomalyType = "overlay-shadow-bleed"

	// AnomalyLightDrift shifts the light source sideways
	AnomalyLightDrift AnomalyType = "overlay-light-drift"

	// AnomalyFaceDark hides the host's face in shadow
	AnomalyFaceDark AnomalyType = "overlay-face-dark"

	// AnomalyContrastShift flattens the room contrast
	AnomalyContrastShift AnomalyType = "overlay-contrast-shift"

	// AnomalyColdSide cools the color temperature of one side
	AnomalyColdSide AnomalyType = "overlay-cold-side"

	// AnomalyTimeGlitch stutters the room clock
	AnomalyTimeGlitch AnomalyType = "overlay-time-glitch"
)

// RoundEntry is one pre-generated round of a mansion session
type RoundEntry struct {
	// Anomaly indicates whether this round contains an anomaly
	Anomaly bool `json:"anomaly"`

	// Type is the overlay shown during the round
	Type AnomalyType `json:"type"`
}

// MansionSession is the server-side state of one mansion playthrough
type MansionSession struct {
	// ID is the session identity the state is keyed by
	ID string `json:"id"`

	// DrinkCount is the number of rounds already resolved
	DrinkCount int `json:"drink_count"`

	// StrikeCount is the number of wrong choices so far
	StrikeCount int `json:"strike_count"`

	// CorrectCount is the number of right choices so far
	CorrectCount int `json:"correct_count"`

	// GameOver is true once StrikeCount reaches the strike limit
	GameOver bool `json:"game_over"`

	// Cleared is true once every round is resolved without striking out
	Cleared bool `json:"cleared"`

	// Pattern is the pre-generated sequence of rounds
	Pattern []RoundEntry `json:"pattern"`
}
