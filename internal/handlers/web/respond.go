package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/hosogai/enkai/internal/services/ledger"
	"github.com/hosogai/enkai/internal/services/mansion"
	"github.com/hosogai/enkai/internal/services/memory"
	"github.com/hosogai/enkai/internal/services/quiz"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return err
	}

	return nil
}

// writeServiceError maps service errors onto HTTP statuses: validation
// failures are the caller's fault, a missing asset pool is ours, and
// anything unexpected is a plain 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, memory.ErrNoAssets):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func isValidationError(err error) bool {
	validation := []error{
		ledger.ErrEmptyPlayer,
		quiz.ErrNoPlayers,
		quiz.ErrEmptyPlayerName,
		quiz.ErrDuplicatePlayer,
		memory.ErrEmptyPlayerName,
		mansion.ErrInvalidDirection,
		mansion.ErrNoActiveSession,
	}

	for _, v := range validation {
		if errors.Is(err, v) {
			return true
		}
	}

	return false
}
