// internal/handlers/progress_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"isl_learn/internal/model"
	"isl_learn/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProgressRouter(svc *mocks.MockProgressService) *chi.Mux {
	h := NewProgressHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/v1/progress", func(r chi.Router) {
		r.Get("/", h.GetProgress)
		r.Post("/videos", h.RecordVideoWatched)
		r.Post("/games", h.RecordGamePlayed)
		r.Post("/practice", h.RecordPracticeAttempt)
		r.Post("/recognition", h.RecordRecognitionAttempt)
		r.Delete("/", h.ResetProgress)
	})
	return r
}

func decodeRecord(t *testing.T, body *httptest.ResponseRecorder) model.ProgressRecord {
	t.Helper()
	var rec model.ProgressRecord
	require.NoError(t, json.Unmarshal(body.Body.Bytes(), &rec))
	return rec
}

func Test_ProgressHandler_GetProgress(t *testing.T) {
	svc := mocks.NewMockProgressService(t)
	svc.On("Get", mock.Anything).Return(&model.ProgressRecord{XP: 130, Level: 2, TotalProgress: 11})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/progress/", nil)
	newProgressRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	rec := decodeRecord(t, rr)
	assert.Equal(t, 130, rec.XP)
	assert.Equal(t, 2, rec.Level)
}

func Test_ProgressHandler_RecordVideoWatched(t *testing.T) {
	svc := mocks.NewMockProgressService(t)
	svc.On("RecordVideoWatched", mock.Anything).Return(&model.ProgressRecord{XP: 10, Level: 1, VideosWatched: 1})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progress/videos", nil)
	newProgressRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	rec := decodeRecord(t, rr)
	assert.Equal(t, 1, rec.VideosWatched)
}

func Test_ProgressHandler_RecordGamePlayed(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *mocks.MockProgressService)
		wantStatus int
	}{
		{
			name: "valid game with score",
			body: `{"game_id":"alphabet-match","score":50}`,
			setupMock: func(svc *mocks.MockProgressService) {
				svc.On("RecordGamePlayed", mock.Anything, model.GameAlphabetMatch,
					mock.MatchedBy(func(score *int) bool { return score != nil && *score == 50 })).
					Return(&model.ProgressRecord{XP: 20, Level: 1, GamesPlayed: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "valid game without score",
			body: `{"game_id":"memory-match"}`,
			setupMock: func(svc *mocks.MockProgressService) {
				svc.On("RecordGamePlayed", mock.Anything, model.GameMemoryMatch, (*int)(nil)).
					Return(&model.ProgressRecord{XP: 20, Level: 1, GamesPlayed: 1}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing game_id",
			body:       `{"score":10}`,
			setupMock:  func(svc *mocks.MockProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown game_id rejected before the service",
			body:       `{"game_id":"chess"}`,
			setupMock:  func(svc *mocks.MockProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative score",
			body:       `{"game_id":"sign-ninja","score":-5}`,
			setupMock:  func(svc *mocks.MockProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"game_id":`,
			setupMock:  func(svc *mocks.MockProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"game_id":"sign-ninja","points":3}`,
			setupMock:  func(svc *mocks.MockProgressService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockProgressService(t)
			tt.setupMock(svc)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/progress/games", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newProgressRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
			}
		})
	}
}

func Test_ProgressHandler_RecordPracticeAttempt(t *testing.T) {
	svc := mocks.NewMockProgressService(t)
	svc.On("RecordPracticeAttempt", mock.Anything, false).
		Return(&model.ProgressRecord{XP: 2, Level: 1, PracticeAttempts: 1})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progress/practice", strings.NewReader(`{"correct":false}`))
	req.Header.Set("Content-Type", "application/json")
	newProgressRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	rec := decodeRecord(t, rr)
	assert.Equal(t, 2, rec.XP)
}

func Test_ProgressHandler_RecordPracticeAttempt_MissingCorrect(t *testing.T) {
	svc := mocks.NewMockProgressService(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progress/practice", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	newProgressRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func Test_ProgressHandler_RecordRecognitionAttempt(t *testing.T) {
	svc := mocks.NewMockProgressService(t)
	svc.On("RecordAIRecognitionAttempt", mock.Anything, true).
		Return(&model.ProgressRecord{XP: 15, Level: 1, AIRecognitionAttempts: 1})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/progress/recognition", strings.NewReader(`{"correct":true}`))
	req.Header.Set("Content-Type", "application/json")
	newProgressRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	rec := decodeRecord(t, rr)
	assert.Equal(t, 1, rec.AIRecognitionAttempts)
}

func Test_ProgressHandler_ResetProgress(t *testing.T) {
	svc := mocks.NewMockProgressService(t)
	svc.On("Reset", mock.Anything).Return()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/progress/", nil)
	newProgressRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.Bytes())
}
