// internal/handlers/community_handler_test.go
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

func newCommunityRouter(svc *mocks.MockCommunityService) *chi.Mux {
	h := NewCommunityHandler(svc)
	r := chi.NewRouter()
	r.Route("/api/v1/community/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Post("/", h.CreatePost)
		r.Delete("/", h.ResetFeed)
		r.Post("/{post_id}/like", h.LikePost)
		r.Get("/{post_id}/liked", h.GetLiked)
		r.Post("/{post_id}/comments", h.AddComment)
		r.Post("/{post_id}/share", h.SharePost)
	})
	return r
}

func Test_CommunityHandler_ListPosts(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)
	svc.On("RefreshPosts", mock.Anything).Return([]*model.Post{
		{ID: "seed-1", Author: "Priya Sharma", Likes: 124, Category: model.CategoryStory},
		{ID: "seed-2", Author: "Dr. Rajesh Kumar", Likes: 45, Category: model.CategoryQuestion},
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/community/posts/", nil)
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var posts []*model.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, "seed-1", posts[0].ID)
}

func Test_CommunityHandler_CreatePost(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *mocks.MockCommunityService)
		wantStatus int
	}{
		{
			name: "valid post",
			body: `{"content":"My first signed sentence!","category":"story"}`,
			setupMock: func(svc *mocks.MockCommunityService) {
				svc.On("AddPost", mock.Anything, "My first signed sentence!", model.CategoryStory).
					Return(&model.Post{ID: "post_1", Author: "You", Content: "My first signed sentence!", Category: model.CategoryStory}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "whitespace-only content passes validation but the service rejects it",
			body: `{"content":"   ","category":"story"}`,
			setupMock: func(svc *mocks.MockCommunityService) {
				svc.On("AddPost", mock.Anything, "   ", model.CategoryStory).
					Return(nil, model.NewAppError("VALIDATION_ERROR", "post content must not be empty", "content", model.ErrInvalidInput))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing content",
			body:       `{"category":"story"}`,
			setupMock:  func(svc *mocks.MockCommunityService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "category outside the closed set",
			body:       `{"content":"hello","category":"rant"}`,
			setupMock:  func(svc *mocks.MockCommunityService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing category",
			body:       `{"content":"hello"}`,
			setupMock:  func(svc *mocks.MockCommunityService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"content":`,
			setupMock:  func(svc *mocks.MockCommunityService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockCommunityService(t)
			tt.setupMock(svc)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/community/posts/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newCommunityRouter(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func Test_CommunityHandler_LikePost(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)
	svc.On("LikePost", mock.Anything, "seed-1").
		Return(&model.Post{ID: "seed-1", Likes: 125, LikedBy: []string{"user_abc"}}, true, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/community/posts/seed-1/like", nil)
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.LikeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.Equal(t, 125, resp.Post.Likes)
}

func Test_CommunityHandler_LikePost_NotFound(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)
	svc.On("LikePost", mock.Anything, "post_missing").Return(nil, false, model.ErrNotFound)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/community/posts/post_missing/like", nil)
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func Test_CommunityHandler_GetLiked(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)
	svc.On("IsPostLiked", mock.Anything, "seed-2").Return(false, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/community/posts/seed-2/liked", nil)
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp model.LikedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Liked)
}

func Test_CommunityHandler_AddComment(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)
	svc.On("AddComment", mock.Anything, "seed-1", "So sweet!").
		Return(&model.Post{ID: "seed-1", Comments: []model.Comment{{Author: "You", Content: "So sweet!"}}}, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/community/posts/seed-1/comments", strings.NewReader(`{"content":"So sweet!"}`))
	req.Header.Set("Content-Type", "application/json")
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var post model.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "So sweet!", post.Comments[0].Content)
}

func Test_CommunityHandler_AddComment_MissingContent(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/community/posts/seed-1/comments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func Test_CommunityHandler_SharePost(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)
	svc.On("SharePost", mock.Anything, "seed-3").Return(&model.Post{ID: "seed-3", Shares: 35}, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/community/posts/seed-3/share", nil)
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var post model.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	assert.Equal(t, 35, post.Shares)
}

func Test_CommunityHandler_ResetFeed(t *testing.T) {
	svc := mocks.NewMockCommunityService(t)
	svc.On("Reset", mock.Anything).Return()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/community/posts/", nil)
	newCommunityRouter(svc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
