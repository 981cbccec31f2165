package web

import (
	"net/http"

	"github.com/hosogai/enkai/internal/services/mansion"
	"github.com/julienschmidt/httprouter"
)

type chooseMansionRequest struct {
	Direction string `json:"direction"`
}

// sessionID extracts the mansion session identity from the request
// cookie, minting a fresh one when absent. The second return reports
// whether a cookie already existed.
func (h *Handler) sessionID(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return h.uuidGen.NewUUID(), false
	}
	return cookie.Value, true
}

func (h *Handler) startMansion(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, existing := h.sessionID(r)
	if !existing {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	output, err := h.mansion.Start(r.Context(), &mansion.StartInput{
		SessionID: id,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.State)
}

func (h *Handler) chooseMansion(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, existing := h.sessionID(r)
	if !existing {
		writeError(w, http.StatusBadRequest, mansion.ErrNoActiveSession.Error())
		return
	}

	var req chooseMansionRequest
	if decodeJSON(w, r, &req) != nil {
		return
	}

	output, err := h.mansion.Choose(r.Context(), &mansion.ChooseInput{
		SessionID: id,
		Direction: req.Direction,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.State)
}
