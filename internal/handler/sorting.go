package handler

import (
	"net/http"

	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/sorting"
)

// StartQuizRequest identifies who is taking the sorting quiz.
type StartQuizRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
}

// HandleStartQuiz begins a sorting quiz session and returns the first
// question.
func HandleStartQuiz(svc sorting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartQuizRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Start quiz"); err != nil {
			return
		}

		question, err := svc.Start(r.Context(), req.DiscordID)
		if err != nil {
			respondServiceError(w, r, "Start quiz", err)
			return
		}

		log := logger.FromContext(r.Context())
		log.Info("Sorting quiz started", "discord_id", req.DiscordID)

		respondJSON(w, http.StatusCreated, question)
	}
}

// HandleCurrentQuestion re-sends the question a session is waiting on.
func HandleCurrentQuestion(svc sorting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		discordID, ok := GetQueryParam(r, w, "discord_id")
		if !ok {
			return
		}

		question, err := svc.CurrentQuestion(r.Context(), discordID)
		if err != nil {
			respondServiceError(w, r, "Current question", err)
			return
		}

		respondJSON(w, http.StatusOK, question)
	}
}

// AnswerQuizRequest carries one answer by displayed option index.
type AnswerQuizRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
	Option    *int   `json:"option" validate:"required"`
}

// AnswerQuizResponse carries either the next question or, after the final
// question, the sorting result.
type AnswerQuizResponse struct {
	Question *sorting.QuestionView `json:"question,omitempty"`
	Result   *sorting.Result       `json:"result,omitempty"`
}

// HandleAnswerQuiz records an answer and advances the session.
func HandleAnswerQuiz(svc sorting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerQuizRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Answer quiz"); err != nil {
			return
		}

		question, result, err := svc.Answer(r.Context(), req.DiscordID, *req.Option)
		if err != nil {
			respondServiceError(w, r, "Answer quiz", err)
			return
		}

		if result != nil {
			log := logger.FromContext(r.Context())
			log.Info("Sorting quiz completed",
				"discord_id", req.DiscordID,
				"house", result.House,
				"tie_break", result.TieBreak)
		}

		respondJSON(w, http.StatusOK, AnswerQuizResponse{
			Question: question,
			Result:   result,
		})
	}
}

// CancelQuizRequest identifies a session to abandon.
type CancelQuizRequest struct {
	DiscordID string `json:"discord_id" validate:"required"`
}

// HandleCancelQuiz abandons an in-flight quiz session.
func HandleCancelQuiz(svc sorting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CancelQuizRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cancel quiz"); err != nil {
			return
		}

		if err := svc.Cancel(r.Context(), req.DiscordID); err != nil {
			respondServiceError(w, r, "Cancel quiz", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuizCancelled})
	}
}
