// internal/service/community_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"sync"
	"time"

	"isl_learn/internal/config"
	"isl_learn/internal/middleware"
	"isl_learn/internal/model"
	"isl_learn/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	localAuthorName   = "You"
	localAuthorAvatar = "https://ui-avatars.com/api/?name=You&background=84a627&color=fff"
)

// CommunityService owns the feed plus the simulated-engagement process that
// makes it look socially alive without a server.
type CommunityService interface {
	Initialize(ctx context.Context)
	ListPosts(ctx context.Context) []*model.Post
	AddPost(ctx context.Context, content string, category model.PostCategory) (*model.Post, error)
	LikePost(ctx context.Context, postID string) (*model.Post, bool, error)
	AddComment(ctx context.Context, postID, content string) (*model.Post, error)
	SharePost(ctx context.Context, postID string) (*model.Post, error)
	IsPostLiked(ctx context.Context, postID string) (bool, error)
	RefreshPosts(ctx context.Context) []*model.Post
	Reset(ctx context.Context)
	Shutdown()
}

type communityService struct {
	db       *gorm.DB
	snapRepo repository.SnapshotRepository
	cfg      *config.Config

	mu     sync.Mutex
	userID string
	posts  []*model.Post
	rng    *rand.Rand

	engage *engagementScheduler

	now func() time.Time
}

func NewCommunityService(db *gorm.DB, snapRepo repository.SnapshotRepository, cfg *config.Config) CommunityService {
	s := &communityService{
		db:       db,
		snapRepo: snapRepo,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	s.engage = newEngagementScheduler(
		time.Duration(cfg.App.EngagementMinDelayMs)*time.Millisecond,
		time.Duration(cfg.App.EngagementMaxDelayMs)*time.Millisecond,
		s.simulateEngagement,
	)
	return s
}

// Initialize loads the persisted identity and feed, minting the identity and
// seeding the feed on first run. Load failures fall back to the seed set in
// memory, matching the best-effort persistence policy.
func (s *communityService) Initialize(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Identity: written once, read thereafter. Never authenticated; only
	// used as the like-toggle key.
	rawID, err := s.snapRepo.Get(ctx, s.db, config.UserIDSnapshotKey)
	switch {
	case err == nil:
		s.userID = string(rawID)
	case errors.Is(err, model.ErrNotFound):
		s.userID = "user_" + uuid.NewString()
		if putErr := s.snapRepo.Put(ctx, s.db, config.UserIDSnapshotKey, []byte(s.userID)); putErr != nil {
			logger.Error("Failed to persist user id", "error", putErr)
		}
	default:
		logger.Error("Failed to load user id, minting a transient one", "error", err)
		s.userID = "user_" + uuid.NewString()
	}

	raw, err := s.snapRepo.Get(ctx, s.db, config.PostsSnapshotKey)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load community posts, falling back to seed posts", "error", err)
			s.posts = seedPosts(s.now())
			return
		}
		// First run: seed the feed.
		s.posts = seedPosts(s.now())
		s.persistLocked(ctx)
		return
	}

	var posts []*model.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		logger.Error("Corrupt community snapshot, falling back to seed posts", "error", err)
		s.posts = seedPosts(s.now())
		return
	}
	s.posts = posts
}

func (s *communityService) ListPosts(ctx context.Context) []*model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clonePostsLocked()
}

// AddPost prepends a post authored by the local identity and schedules its
// one-shot simulated engagement.
func (s *communityService) AddPost(ctx context.Context, content string, category model.PostCategory) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "post content must not be empty", "content", model.ErrInvalidInput)
	}

	s.mu.Lock()
	nowMs := s.now().UnixMilli()
	post := &model.Post{
		ID:        "post_" + uuid.NewString(),
		Author:    localAuthorName,
		Avatar:    localAuthorAvatar,
		TimeAgo:   "Just now",
		Content:   content,
		Comments:  []model.Comment{},
		LikedBy:   []string{},
		Category:  category,
		CreatedAt: nowMs,
	}
	// Most-recent-first ordering.
	s.posts = append([]*model.Post{post}, s.posts...)
	s.persistLocked(ctx)
	cp := post.Clone()
	s.mu.Unlock()

	s.engage.Schedule(post.ID)

	return cp, nil
}

// LikePost toggles the local user's membership in the post's like set and
// moves the counter symmetrically.
func (s *communityService) LikePost(ctx context.Context, postID string) (*model.Post, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(postID)
	if post == nil {
		return nil, false, model.ErrNotFound
	}

	if post.LikedByUser(s.userID) {
		filtered := post.LikedBy[:0]
		for _, id := range post.LikedBy {
			if id != s.userID {
				filtered = append(filtered, id)
			}
		}
		post.LikedBy = filtered
		post.Likes--
	} else {
		post.LikedBy = append(post.LikedBy, s.userID)
		post.Likes++
	}

	s.persistLocked(ctx)
	return post.Clone(), post.LikedByUser(s.userID), nil
}

func (s *communityService) AddComment(ctx context.Context, postID, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "comment content must not be empty", "content", model.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(postID)
	if post == nil {
		return nil, model.ErrNotFound
	}

	post.Comments = append(post.Comments, model.Comment{
		ID:        "comment_" + uuid.NewString(),
		Author:    localAuthorName,
		Avatar:    localAuthorAvatar,
		Content:   content,
		TimeAgo:   "Just now",
		CreatedAt: s.now().UnixMilli(),
	})

	s.persistLocked(ctx)
	return post.Clone(), nil
}

func (s *communityService) SharePost(ctx context.Context, postID string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(postID)
	if post == nil {
		return nil, model.ErrNotFound
	}
	post.Shares++

	s.persistLocked(ctx)
	return post.Clone(), nil
}

func (s *communityService) IsPostLiked(ctx context.Context, postID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(postID)
	if post == nil {
		return false, model.ErrNotFound
	}
	return post.LikedByUser(s.userID), nil
}

// RefreshPosts recomputes every human-readable relative-time label from the
// stored absolute timestamps. Timestamps themselves are never touched.
func (s *communityService) RefreshPosts(ctx context.Context) []*model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	nowMs := s.now().UnixMilli()
	for _, post := range s.posts {
		post.TimeAgo = timeAgo(nowMs, post.CreatedAt)
		for i := range post.Comments {
			post.Comments[i].TimeAgo = timeAgo(nowMs, post.Comments[i].CreatedAt)
		}
	}

	s.persistLocked(ctx)
	return s.clonePostsLocked()
}

// Reset cancels any pending engagement tasks and restores the seed feed, so
// a task scheduled before the reset can never resurrect a stray comment.
func (s *communityService) Reset(ctx context.Context) {
	s.engage.CancelAll()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = seedPosts(s.now())
	s.persistLocked(ctx)
}

// Shutdown stops pending engagement timers.
func (s *communityService) Shutdown() {
	s.engage.CancelAll()
}

func (s *communityService) findLocked(postID string) *model.Post {
	for _, p := range s.posts {
		if p.ID == postID {
			return p
		}
	}
	return nil
}

func (s *communityService) clonePostsLocked() []*model.Post {
	out := make([]*model.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.Clone()
	}
	return out
}

// persistLocked writes the whole feed under its snapshot key, best-effort.
func (s *communityService) persistLocked(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	raw, err := json.Marshal(s.posts)
	if err != nil {
		logger.Error("Failed to serialize community posts", "error", err)
		return
	}
	if err := s.snapRepo.Put(ctx, s.db, config.PostsSnapshotKey, raw); err != nil {
		logger.Error("Failed to persist community posts, continuing with in-memory state", "error", err)
	}
}

// timeAgo renders a relative label from unix-millisecond timestamps.
func timeAgo(nowMs, createdMs int64) string {
	seconds := (nowMs - createdMs) / 1000

	switch {
	case seconds < 60:
		return "Just now"
	case seconds < 3600:
		return fmt.Sprintf("%d min ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d hours ago", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%d days ago", seconds/86400)
	default:
		return fmt.Sprintf("%d weeks ago", seconds/604800)
	}
}

func avatarURL(name, background string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=" + background + "&color=fff"
}

// seedPosts builds the fixed starter feed with timestamps relative to now.
func seedPosts(now time.Time) []*model.Post {
	nowMs := now.UnixMilli()
	return []*model.Post{
		{
			ID:      "seed-1",
			Author:  "Priya Sharma",
			Avatar:  avatarURL("Priya Sharma", "84a627"),
			TimeAgo: "2 hours ago",
			Content: `My 5-year-old daughter just signed "I love you" for the first time! All those practice sessions with ISL videos are finally paying off. Never give up parents!`,
			Likes:   124,
			Comments: []model.Comment{
				{
					ID:        "c1",
					Author:    "Rajesh Kumar",
					Avatar:    avatarURL("Rajesh Kumar", "2196F3"),
					Content:   "This is so heartwarming! Congratulations!",
					TimeAgo:   "1 hour ago",
					CreatedAt: nowMs - 3600000,
				},
				{
					ID:        "c2",
					Author:    "Meera Patel",
					Avatar:    avatarURL("Meera Patel", "9C27B0"),
					Content:   "Keep going! The journey is beautiful",
					TimeAgo:   "45 min ago",
					CreatedAt: nowMs - 2700000,
				},
			},
			Shares:    12,
			Category:  model.CategoryStory,
			Trending:  true,
			LikedBy:   []string{},
			CreatedAt: nowMs - 7200000,
		},
		{
			ID:      "seed-2",
			Author:  "Dr. Rajesh Kumar",
			Avatar:  avatarURL("Rajesh Kumar", "2196F3"),
			TimeAgo: "5 hours ago",
			Content: `Question: How do I explain abstract concepts like "tomorrow" or "later" in ISL to my 4-year-old? Any tips from experienced parents?`,
			Likes:   45,
			Comments: []model.Comment{
				{
					ID:        "c3",
					Author:    "Anita Desai",
					Avatar:    avatarURL("Anita Desai", "4CAF50"),
					Content:   "I use a visual calendar with pictures. It really helps!",
					TimeAgo:   "3 hours ago",
					CreatedAt: nowMs - 10800000,
				},
			},
			Shares:    5,
			Category:  model.CategoryQuestion,
			Verified:  true,
			LikedBy:   []string{},
			CreatedAt: nowMs - 18000000,
		},
		{
			ID:        "seed-3",
			Author:    "Anita Desai",
			Avatar:    avatarURL("Anita Desai", "9C27B0"),
			TimeAgo:   "1 day ago",
			Content:   "Achievement Unlocked! My son scored 100% in his ISL test at school. So proud! Remember, consistency is key. We practiced 30 minutes daily for 6 months.",
			Image:     "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=400&h=300&fit=crop",
			Likes:     256,
			Comments:  []model.Comment{},
			Shares:    34,
			Category:  model.CategoryAchievement,
			Trending:  true,
			LikedBy:   []string{},
			CreatedAt: nowMs - 86400000,
		},
	}
}
