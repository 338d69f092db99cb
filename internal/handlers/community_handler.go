// internal/handlers/community_handler.go
package handlers

import (
	"errors"
	"net/http"

	"isl_learn/internal/model"
	"isl_learn/internal/service"
	"isl_learn/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CommunityHandler struct {
	service service.CommunityService
}

func NewCommunityHandler(s service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: s}
}

// ListPosts returns the feed, most recent first, with relative-time labels
// recomputed from the stored timestamps.
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.service.RefreshPosts(r.Context())
	webutil.RespondWithJSON(w, http.StatusOK, posts)
}

// CreatePost validates and prepends a new post by the local identity.
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostRequest
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

	category, err := model.ParsePostCategory(req.Category)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	post, err := h.service.AddPost(r.Context(), req.Content, category)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, post)
}

// LikePost toggles the local user's like on the post.
func (h *CommunityHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	post, liked, err := h.service.LikePost(r.Context(), postID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.LikeResponse{Post: post, Liked: liked})
}

// GetLiked reports whether the local user has liked the post.
func (h *CommunityHandler) GetLiked(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	liked, err := h.service.IsPostLiked(r.Context(), postID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.LikedResponse{Liked: liked})
}

// AddComment appends a comment by the local identity.
func (h *CommunityHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	var req model.CreateCommentRequest
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

	post, err := h.service.AddComment(r.Context(), postID, req.Content)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, post)
}

// SharePost increments the share counter.
func (h *CommunityHandler) SharePost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "post_id")

	post, err := h.service.SharePost(r.Context(), postID)
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, post)
}

// ResetFeed restores the seed feed.
func (h *CommunityHandler) ResetFeed(w http.ResponseWriter, r *http.Request) {
	h.service.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
