package web

import (
	"net/http"

	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/services/memory"
	"github.com/julienschmidt/httprouter"
)

type startMemoryRequest struct {
	PlayerName string `json:"player_name"`
}

type checkMatchRequest struct {
	Card1Image string `json:"card1_image"`
	Card2Image string `json:"card2_image"`
	Card1Pair  int    `json:"card1_pair"`
	Card2Pair  int    `json:"card2_pair"`
}

type checkMatchResponse struct {
	Match  bool `json:"match"`
	Points int  `json:"points"`
}

type finishMemoryRequest struct {
	PlayerName   string `json:"player_name"`
	PairsMatched int    `json:"pairs_matched"`
	SpecialBonus int    `json:"special_bonus"`
}

type finishMemoryResponse struct {
	Success    bool                `json:"success"`
	FinalScore int                 `json:"final_score"`
	Result     *models.ScoreRecord `json:"result"`
}

func (h *Handler) startMemoryGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req startMemoryRequest
	if decodeJSON(w, r, &req) != nil {
		return
	}

	output, err := h.memory.BuildSession(r.Context(), &memory.BuildSessionInput{
		PlayerName: req.PlayerName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Session)
}

func (h *Handler) checkMemoryMatch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req checkMatchRequest
	if decodeJSON(w, r, &req) != nil {
		return
	}

	output, err := h.memory.CheckMatch(r.Context(), &memory.CheckMatchInput{
		Card1Image: req.Card1Image,
		Card2Image: req.Card2Image,
		Card1Pair:  req.Card1Pair,
		Card2Pair:  req.Card2Pair,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, checkMatchResponse{
		Match:  output.Match,
		Points: output.Points,
	})
}

func (h *Handler) finishMemoryGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req finishMemoryRequest
	if decodeJSON(w, r, &req) != nil {
		return
	}

	output, err := h.memory.Finish(r.Context(), &memory.FinishInput{
		PlayerName:   req.PlayerName,
		PairsMatched: req.PairsMatched,
		SpecialBonus: req.SpecialBonus,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, finishMemoryResponse{
		Success:    true,
		FinalScore: output.FinalScore,
		Result:     output.Record,
	})
}
