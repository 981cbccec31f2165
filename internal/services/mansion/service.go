package mansion

import (
	"context"
	"errors"

	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/repositories/session"
	"github.com/hosogai/enkai/internal/rng"
)

// service implements the Service interface
type service struct {
	maxCups      int
	maxStrikes   int
	anomalyRate  float64
	hintRate     float64
	hints        map[int]models.AnomalyType
	anomalyTypes []models.AnomalyType
	lines        []string
	finalLine    string
	sessions     session.Repository
	random       *rng.Rand
}

// New creates a new mansion service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}

	if cfg.Rand == nil {
		return nil, ErrNilRandom
	}

	if len(cfg.Lines) == 0 {
		return nil, ErrNoLines
	}

	if cfg.FinalLine == "" {
		return nil, ErrEmptyFinalLine
	}

	maxCups := cfg.MaxCups
	if maxCups <= 0 {
		maxCups = defaultMaxCups
	}

	maxStrikes := cfg.MaxStrikes
	if maxStrikes <= 0 {
		maxStrikes = defaultMaxStrikes
	}

	anomalyRate := cfg.AnomalyRate
	if anomalyRate <= 0 {
		anomalyRate = defaultAnomalyRate
	}

	hintRate := cfg.HintRate
	if hintRate <= 0 {
		hintRate = defaultHintRate
	}

	hints := cfg.Hints
	if hints == nil {
		hints = defaultHints()
	}

	anomalyTypes := cfg.AnomalyTypes
	if len(anomalyTypes) == 0 {
		anomalyTypes = defaultAnomalyTypes()
	}

	return &service{
		maxCups:      maxCups,
		maxStrikes:   maxStrikes,
		anomalyRate:  anomalyRate,
		hintRate:     hintRate,
		hints:        hints,
		anomalyTypes: anomalyTypes,
		lines:        cfg.Lines,
		finalLine:    cfg.FinalLine,
		sessions:     cfg.Sessions,
		random:       cfg.Rand,
	}, nil
}

// Start resets the session and generates a fresh round pattern. Any
// previous playthrough stored under the key is overwritten.
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	sess := &models.MansionSession{
		ID:      input.SessionID,
		Pattern: s.generatePattern(),
	}

	err := s.sessions.SaveSession(ctx, &session.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &StartOutput{
		State: s.stateFor(sess),
	}, nil
}

// Choose resolves the current round against the player's pick and
// advances the state machine. Terminal sessions, and sessions whose
// pattern is exhausted, are returned unchanged.
func (s *service) Choose(ctx context.Context, input *ChooseInput) (*ChooseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	if input.Direction != DirectionLeft && input.Direction != DirectionRight {
		return nil, ErrInvalidDirection
	}

	getOutput, err := s.sessions.GetSession(ctx, &session.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	sess := getOutput.Session

	if sess.GameOver || sess.Cleared || sess.DrinkCount >= len(sess.Pattern) {
		return &ChooseOutput{
			State: s.stateFor(sess),
		}, nil
	}

	round := sess.Pattern[sess.DrinkCount]

	expected := DirectionLeft
	if round.Anomaly {
		expected = DirectionRight
	}

	if input.Direction == expected {
		sess.CorrectCount++
	} else {
		sess.StrikeCount++
	}

	sess.DrinkCount++
	if sess.DrinkCount > s.maxCups {
		sess.DrinkCount = s.maxCups
	}

	sess.GameOver = sess.StrikeCount >= s.maxStrikes
	sess.Cleared = sess.DrinkCount >= s.maxCups && !sess.GameOver

	err = s.sessions.SaveSession(ctx, &session.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &ChooseOutput{
		State: s.stateFor(sess),
	}, nil
}

// generatePattern builds the pre-rolled round sequence. Each round
// carries an anomaly with the configured probability; anomalous rounds
// at hinted indices use the hinted overlay with the hint probability,
// otherwise the overlay is drawn uniformly.
func (s *service) generatePattern() []models.RoundEntry {
	pattern := make([]models.RoundEntry, s.maxCups)

	for i := range pattern {
		entry := models.RoundEntry{
			Type: models.AnomalyNone,
		}

		if s.random.Float64() < s.anomalyRate {
			entry.Anomaly = true

			if hint, ok := s.hints[i]; ok && s.random.Float64() < s.hintRate {
				entry.Type = hint
			} else {
				entry.Type = s.anomalyTypes[s.random.Intn(len(s.anomalyTypes))]
			}
		}

		pattern[i] = entry
	}

	return pattern
}

// stateFor builds the client payload for a session. The line tracks
// the number of resolved rounds, and the anomaly fields preview the
// round the player judges next.
func (s *service) stateFor(sess *models.MansionSession) *State {
	state := &State{
		DrinkCount:  sess.DrinkCount,
		StrikeCount: sess.StrikeCount,
		CupsTotal:   s.maxCups,
		GameOver:    sess.GameOver,
		Cleared:     sess.Cleared,
	}

	if sess.GameOver {
		state.Line = s.finalLine
	} else {
		lineIdx := sess.DrinkCount
		if lineIdx > len(s.lines)-1 {
			lineIdx = len(s.lines) - 1
		}
		state.Line = s.lines[lineIdx]
	}

	if !sess.GameOver && !sess.Cleared && sess.DrinkCount < len(sess.Pattern) {
		next := sess.Pattern[sess.DrinkCount]
		state.HasAnomaly = next.Anomaly
		state.AnomalyType = next.Type
	}

	return state
}
