// internal/handlers/progress_handler.go
package handlers

import (
	"errors"
	"net/http"

	"isl_learn/internal/model"
	"isl_learn/internal/service"
	"isl_learn/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetProgress returns the current learner record.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	webutil.RespondWithJSON(w, http.StatusOK, h.service.Get(r.Context()))
}

// RecordVideoWatched registers one finished video.
func (h *ProgressHandler) RecordVideoWatched(w http.ResponseWriter, r *http.Request) {
	record := h.service.RecordVideoWatched(r.Context())
	webutil.RespondWithJSON(w, http.StatusOK, record)
}

// RecordGamePlayed registers one game session, with an optional score.
func (h *ProgressHandler) RecordGamePlayed(w http.ResponseWriter, r *http.Request) {
	var req model.GameResultRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "Invalid request body.", "", err))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			webutil.HandleError(w, webutil.NewValidationErrorResponse(validationErrs))
			return
		}
		webutil.HandleError(w, err)
		return
	}

	gameID, err := model.ParseGameID(req.GameID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	record, err := h.service.RecordGamePlayed(r.Context(), gameID, req.Score)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, record)
}

// RecordPracticeAttempt registers one practice answer.
func (h *ProgressHandler) RecordPracticeAttempt(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAttempt(w, r)
	if !ok {
		return
	}
	record := h.service.RecordPracticeAttempt(r.Context(), *req.Correct)
	webutil.RespondWithJSON(w, http.StatusOK, record)
}

// RecordRecognitionAttempt registers one AI recognition answer.
func (h *ProgressHandler) RecordRecognitionAttempt(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAttempt(w, r)
	if !ok {
		return
	}
	record := h.service.RecordAIRecognitionAttempt(r.Context(), *req.Correct)
	webutil.RespondWithJSON(w, http.StatusOK, record)
}

// ResetProgress restores the defaults and clears the snapshot.
func (h *ProgressHandler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	h.service.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func decodeAttempt(w http.ResponseWriter, r *http.Request) (*model.AttemptResultRequest, bool) {
	var req model.AttemptResultRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "Invalid request body.", "", err))
		return nil, false
	}
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			webutil.HandleError(w, webutil.NewValidationErrorResponse(validationErrs))
			return nil, false
		}
		webutil.HandleError(w, err)
		return nil, false
	}
	return &req, true
}
