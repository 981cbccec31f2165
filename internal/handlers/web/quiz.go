package web

import (
	"net/http"
	"strings"

	"github.com/hosogai/enkai/internal/models"
	"github.com/hosogai/enkai/internal/services/quiz"
	"github.com/julienschmidt/httprouter"
)

type startQuizRequest struct {
	Players []string `json:"players"`
}

type nextDrinkResponse struct {
	ID         string            `json:"id"`
	ImageURL   string            `json:"image_url"`
	Difficulty models.Difficulty `json:"difficulty"`
}

type submitAnswerRequest struct {
	DrinkID string `json:"drink_id"`
	Answer  string `json:"answer"`
}

type submitAnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Points        int    `json:"points"`
}

type finishQuizRequest struct {
	Scores map[string]int `json:"scores"`
}

type finishQuizResponse struct {
	Success bool                `json:"success"`
	Result  *models.ScoreRecord `json:"result"`
}

func (h *Handler) startDrinkQuiz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req startQuizRequest
	if decodeJSON(w, r, &req) != nil {
		return
	}

	output, err := h.quiz.StartSession(r.Context(), &quiz.StartSessionInput{
		Players: req.Players,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Session)
}

func (h *Handler) nextDrink(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var excludeIDs []string
	if exclude := r.URL.Query().Get("exclude"); exclude != "" {
		excludeIDs = strings.Split(exclude, ",")
	}

	output, err := h.quiz.RandomDrink(r.Context(), &quiz.RandomDrinkInput{
		ExcludeIDs: excludeIDs,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if output.Drink == nil {
		writeError(w, http.StatusNotFound, "no drinks remaining")
		return
	}

	writeJSON(w, http.StatusOK, nextDrinkResponse{
		ID:         output.Drink.ID,
		ImageURL:   h.imageBaseURL + output.Drink.Filename,
		Difficulty: output.Drink.Difficulty,
	})
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req submitAnswerRequest
	if decodeJSON(w, r, &req) != nil {
		return
	}

	// An unknown drink ID means the client skipped the next-drink
	// call; that is a hard failure, not a wrong answer.
	drinkOutput, err := h.quiz.GetDrink(r.Context(), &quiz.GetDrinkInput{
		DrinkID: req.DrinkID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	checkOutput, err := h.quiz.CheckAnswer(r.Context(), &quiz.CheckAnswerInput{
		DrinkID: req.DrinkID,
		Answer:  req.Answer,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, submitAnswerResponse{
		Correct:       checkOutput.Correct,
		CorrectAnswer: drinkOutput.Drink.Name,
		Points:        checkOutput.Points,
	})
}

func (h *Handler) finishDrinkQuiz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req finishQuizRequest
	if decodeJSON(w, r, &req) != nil {
		return
	}

	output, err := h.quiz.Finish(r.Context(), &quiz.FinishInput{
		Scores: req.Scores,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, finishQuizResponse{
		Success: true,
		Result:  output.Record,
	})
}
