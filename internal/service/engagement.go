// internal/service/engagement.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"isl_learn/internal/config"
	"isl_learn/internal/model"

	"github.com/google/uuid"
)

// Fixed pools for synthetic engagement.
var engagementAuthors = []string{
	"Amit Singh", "Kavya Reddy", "Rohit Sharma", "Sneha Gupta",
	"Arjun Patel", "Divya Nair", "Karan Mehta", "Pooja Iyer",
}

var engagementComments = []string{
	"This is wonderful! Keep it up!",
	"So inspiring! Thanks for sharing",
	"Great progress! You're doing amazing!",
	"This gives me hope! Thank you",
	"Absolutely brilliant! Keep going!",
}

var engagementAvatarColors = []string{"84a627", "2196F3", "9C27B0", "FF9800"}

// engagementScheduler owns the one-shot timers that fire simulated
// engagement for newly created posts. At most one task exists per post, so
// engagement fires at most once per post.
type engagementScheduler struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	minDelay time.Duration
	maxDelay time.Duration
	fire     func(postID string)
}

func newEngagementScheduler(minDelay, maxDelay time.Duration, fire func(postID string)) *engagementScheduler {
	return &engagementScheduler{
		timers:   make(map[string]*time.Timer),
		minDelay: minDelay,
		maxDelay: maxDelay,
		fire:     fire,
	}
}

// Schedule arms a one-shot task for the post after a randomized delay in the
// configured window. Scheduling the same post twice is a no-op.
func (e *engagementScheduler) Schedule(postID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.timers[postID]; exists {
		return
	}

	delay := e.minDelay
	if window := e.maxDelay - e.minDelay; window > 0 {
		delay += time.Duration(rand.Int63n(int64(window)))
	}

	e.timers[postID] = time.AfterFunc(delay, func() {
		e.mu.Lock()
		delete(e.timers, postID)
		e.mu.Unlock()
		e.fire(postID)
	})
}

// CancelAll stops every pending task. A timer that already fired has removed
// itself; stopping it again is harmless.
func (e *engagementScheduler) CancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id, t := range e.timers {
		t.Stop()
		delete(e.timers, id)
	}
}

// simulateEngagement applies synthetic engagement to one post: 1-2 likes on
// the counter only (the likers are not real, toggleable identities, so
// LikedBy is left alone) and, with even odds, exactly one supportive comment.
// It re-reads the persisted feed at fire time so user edits made between
// scheduling and firing are never clobbered, and silently no-ops when the
// post no longer exists.
func (s *communityService) simulateEngagement(postID string) {
	ctx := context.Background()
	logger := slog.Default().With("post_id", postID)

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.snapRepo.Get(ctx, s.db, config.PostsSnapshotKey)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load posts for simulated engagement", "error", err)
		}
		return
	}

	var posts []*model.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		logger.Error("Corrupt community snapshot during simulated engagement", "error", err)
		return
	}

	var post *model.Post
	for _, p := range posts {
		if p.ID == postID {
			post = p
			break
		}
	}
	if post == nil {
		// Post deleted or feed reset since scheduling.
		return
	}

	numLikes := s.rng.Intn(2) + 1
	post.Likes += numLikes

	if s.rng.Intn(2) == 0 {
		name := engagementAuthors[s.rng.Intn(len(engagementAuthors))]
		color := engagementAvatarColors[s.rng.Intn(len(engagementAvatarColors))]
		post.Comments = append(post.Comments, model.Comment{
			ID:        "comment_" + uuid.NewString(),
			Author:    name,
			Avatar:    avatarURL(name, color),
			Content:   engagementComments[s.rng.Intn(len(engagementComments))],
			TimeAgo:   "Just now",
			CreatedAt: s.now().UnixMilli(),
		})
	}

	s.posts = posts
	s.persistLocked(ctx)

	logger.Debug("Simulated engagement applied", "likes_added", numLikes)
}
