package web

import (
	"errors"
	"net/http"

	"github.com/hosogai/enkai/internal/common/uuid"
	"github.com/hosogai/enkai/internal/services/ledger"
	"github.com/hosogai/enkai/internal/services/mansion"
	"github.com/hosogai/enkai/internal/services/memory"
	"github.com/hosogai/enkai/internal/services/quiz"
	"github.com/julienschmidt/httprouter"
)

const (
	// sessionCookie carries the mansion session identity
	sessionCookie = "enkai_session"

	// defaultImageBaseURL prefixes quiz image filenames
	defaultImageBaseURL = "/static/images/"
)

// Handler wires the game services to the JSON API
type Handler struct {
	quiz         quiz.Service
	memory       memory.Service
	mansion      mansion.Service
	ledger       ledger.Service
	uuidGen      uuid.UUID
	imageBaseURL string
}

// Config holds the configuration for the API handler
type Config struct {
	// ImageBaseURL prefixes quiz image filenames; defaults to
	// /static/images/
	ImageBaseURL string

	// Service dependencies
	Quiz    quiz.Service
	Memory  memory.Service
	Mansion mansion.Service
	Ledger  ledger.Service

	UUIDGen uuid.UUID
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Quiz == nil {
		return nil, errors.New("quiz service cannot be nil")
	}

	if cfg.Memory == nil {
		return nil, errors.New("memory service cannot be nil")
	}

	if cfg.Mansion == nil {
		return nil, errors.New("mansion service cannot be nil")
	}

	if cfg.Ledger == nil {
		return nil, errors.New("ledger service cannot be nil")
	}

	if cfg.UUIDGen == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	imageBaseURL := cfg.ImageBaseURL
	if imageBaseURL == "" {
		imageBaseURL = defaultImageBaseURL
	}

	return &Handler{
		quiz:         cfg.Quiz,
		memory:       cfg.Memory,
		mansion:      cfg.Mansion,
		ledger:       cfg.Ledger,
		uuidGen:      cfg.UUIDGen,
		imageBaseURL: imageBaseURL,
	}, nil
}

// Register attaches every API route to the router
func (h *Handler) Register(mux *httprouter.Router) {
	mux.GET("/api/games", h.listGames)

	mux.POST("/api/game/drink-quiz/start", h.startDrinkQuiz)
	mux.GET("/api/game/drink-quiz/next", h.nextDrink)
	mux.POST("/api/game/drink-quiz/answer", h.submitAnswer)
	mux.POST("/api/game/drink-quiz/finish", h.finishDrinkQuiz)

	mux.POST("/api/game/memory-game/start", h.startMemoryGame)
	mux.POST("/api/game/memory-game/check-match", h.checkMemoryMatch)
	mux.POST("/api/game/memory-game/finish", h.finishMemoryGame)

	mux.POST("/api/mansion/start", h.startMansion)
	mux.POST("/api/mansion/choose", h.chooseMansion)

	mux.GET("/api/records", h.listRecords)
	mux.GET("/api/ranking", h.todayRanking)
	mux.GET("/api/player/:name/stats", h.playerStats)
}

// listGames serves the static game listing for the lobby page
func (h *Handler) listGames(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, []map[string]string{
		{
			"id":          "memory-game",
			"name":        "Memory Match",
			"description": "Find the pairs and rack up points",
		},
		{
			"id":          "drink-quiz",
			"name":        "Drink Quiz",
			"description": "Name the drink from its picture",
		},
		{
			"id":          "mansion",
			"name":        "Mansion",
			"description": "Spot the anomaly, or drink from the left",
		},
	})
}
