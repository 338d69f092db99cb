// internal/handlers/recognition_handler.go
package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"isl_learn/internal/middleware"
	"isl_learn/internal/model"
	"isl_learn/internal/recognition"
	"isl_learn/internal/service"
	"isl_learn/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type ClassifyRequest struct {
	// Base64-encoded capture bytes. The classifier contract only needs
	// opaque bytes; capture and preprocessing happen on the device.
	Image  string `json:"image" validate:"required"`
	Letter string `json:"letter" validate:"required,len=1,alpha"`
}

type ClassifyResponse struct {
	Predicted  string                `json:"predicted"`
	Confidence float64               `json:"confidence"`
	Correct    bool                  `json:"correct"`
	Progress   *model.ProgressRecord `json:"progress"`
}

// RecognitionHandler runs the letter classifier over a capture and records
// the attempt against the learner's progress.
type RecognitionHandler struct {
	classifier recognition.Classifier
	progress   service.ProgressService
}

func NewRecognitionHandler(classifier recognition.Classifier, progress service.ProgressService) *RecognitionHandler {
	return &RecognitionHandler{classifier: classifier, progress: progress}
}

func (h *RecognitionHandler) Classify(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req ClassifyRequest
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

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		webutil.HandleError(w, model.NewAppError("VALIDATION_ERROR", "Image is not valid base64.", "image", model.ErrInvalidInput))
		return
	}

	prediction, err := h.classifier.Classify(r.Context(), image)
	if err != nil {
		logger.Error("Classifier failed", "error", err)
		webutil.HandleError(w, err)
		return
	}

	correct := strings.EqualFold(prediction.Letter, req.Letter)
	record := h.progress.RecordAIRecognitionAttempt(r.Context(), correct)

	webutil.RespondWithJSON(w, http.StatusOK, ClassifyResponse{
		Predicted:  prediction.Letter,
		Confidence: prediction.Confidence,
		Correct:    correct,
		Progress:   record,
	})
}
