package web

import (
	"net/http"

	"github.com/hosogai/enkai/internal/services/ledger"
	"github.com/julienschmidt/httprouter"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	output, err := h.ledger.AllRecords(r.Context(), &ledger.AllRecordsInput{})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Records)
}

func (h *Handler) todayRanking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	output, err := h.ledger.TodayRanking(r.Context(), &ledger.TodayRankingInput{})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Ranking)
}

func (h *Handler) playerStats(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	output, err := h.ledger.PlayerStats(r.Context(), &ledger.PlayerStatsInput{
		PlayerName: p.ByName("name"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Stats)
}
