package mansion

import (
	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/repositories/session"
	"github.com/hosogai/enkai/internal/rng"
)

const (
	// defaultMaxCups is the number of rounds in a playthrough
	defaultMaxCups = 8

	// defaultMaxStrikes is the number of wrong picks before game over
	defaultMaxStrikes = 3

	// defaultAnomalyRate is the chance a round carries an anomaly
	defaultAnomalyRate = 0.45

	// defaultHintRate is the chance a hinted round uses its hint type
	defaultHintRate = 0.65
)

// Direction values accepted by Choose
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// defaultHints maps 0-based round indices to their preferred anomaly
// overlay. Hinted rounds still fall back to a uniform draw with
// probability 1 - hint rate.
func defaultHints() map[int]models.AnomalyType {
	return map[int]models.AnomalyType{
		2: models.AnomalyShadowBleed,
		3: models.AnomalyLightDrift,
		4: models.AnomalyFaceDark,
		5: models.AnomalyContrastShift,
		7: models.AnomalyColdSide,
	}
}

// defaultAnomalyTypes returns the overlays an anomalous round can draw
func defaultAnomalyTypes() []models.AnomalyType {
	return []models.AnomalyType{
		models.AnomalyShadowBleed,
		models.AnomalyLightDrift,
		models.AnomalyFaceDark,
		models.AnomalyContrastShift,
		models.AnomalyColdSide,
		models.AnomalyTimeGlitch,
	}
}

// Config holds configuration for the mansion service
type Config struct {
	// MaxCups overrides the rounds per playthrough; defaults to 8
	MaxCups int

	// MaxStrikes overrides the strike limit; defaults to 3
	MaxStrikes int

	// AnomalyRate overrides the per-round anomaly chance; defaults to 0.45
	AnomalyRate float64

	// HintRate overrides the hinted-overlay chance; defaults to 0.65
	HintRate float64

	// Hints maps round indices to preferred overlays; defaults apply
	// when nil
	Hints map[int]models.AnomalyType

	// AnomalyTypes are the overlays anomalous rounds draw from;
	// defaults apply when empty
	AnomalyTypes []models.AnomalyType

	// Lines are the narrative lines, indexed by resolved round count.
	// They are content, not logic, and must be supplied by the caller.
	Lines []string

	// FinalLine is shown when the game is lost
	FinalLine string

	// Repository dependency
	Sessions session.Repository

	// Service dependencies
	Rand *rng.Rand
}

// State is the session payload returned to the client. The anomaly
// fields describe the round the player is about to judge; they are
// empty/false once no round remains.
type State struct {
	DrinkCount  int                `json:"drink_count"`
	StrikeCount int                `json:"strike_count"`
	CupsTotal   int                `json:"cups_total"`
	Line        string             `json:"line"`
	HasAnomaly  bool               `json:"has_anomaly"`
	AnomalyType models.AnomalyType `json:"anomaly_type"`
	GameOver    bool               `json:"game_over"`
	Cleared     bool               `json:"cleared"`
}

// StartInput contains parameters for starting a playthrough
type StartInput struct {
	// SessionID is the client's session identity
	SessionID string
}

// StartOutput contains the initial session payload
type StartOutput struct {
	State *State
}

// ChooseInput contains parameters for resolving a round
type ChooseInput struct {
	// SessionID is the client's session identity
	SessionID string

	// Direction is the player's pick, left or right
	Direction string
}

// ChooseOutput contains the updated session payload
type ChooseOutput struct {
	State *State
}
