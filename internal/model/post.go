// internal/model/post.go
package model

type PostCategory string

const (
	CategoryStory       PostCategory = "story"
	CategoryQuestion    PostCategory = "question"
	CategoryAchievement PostCategory = "achievement"
	CategoryTip         PostCategory = "tip"
	CategoryEvent       PostCategory = "event"
)

// ParsePostCategory rejects anything outside the closed category set.
func ParsePostCategory(s string) (PostCategory, error) {
	switch PostCategory(s) {
	case CategoryStory, CategoryQuestion, CategoryAchievement, CategoryTip, CategoryEvent:
		return PostCategory(s), nil
	}
	return "", NewAppError("VALIDATION_ERROR", "unknown post category: "+s, "category", ErrInvalidInput)
}

// Comment is one entry in a post's comment sequence. Insertion order is
// chronological. CreatedAt is unix milliseconds, matching the stored feed.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	TimeAgo   string `json:"time"`
	CreatedAt int64  `json:"createdAt"`
}

// Post is a community feed entry. Likes from simulated engagement are counted
// in Likes but never appear in LikedBy, so Likes may exceed len(LikedBy).
type Post struct {
	ID        string       `json:"id"`
	Author    string       `json:"author"`
	Avatar    string       `json:"avatar"`
	TimeAgo   string       `json:"time"`
	Content   string       `json:"content"`
	Image     string       `json:"image,omitempty"`
	Likes     int          `json:"likes"`
	Comments  []Comment    `json:"comments"`
	Shares    int          `json:"shares"`
	Category  PostCategory `json:"category"`
	Verified  bool         `json:"verified,omitempty"`
	Trending  bool         `json:"trending,omitempty"`
	LikedBy   []string     `json:"likedBy"`
	CreatedAt int64        `json:"createdAt"`
}

// LikedByUser reports whether the given user is in the post's like set.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy safe to hand to callers while the store keeps
// mutating its own instance.
func (p *Post) Clone() *Post {
	cp := *p
	cp.Comments = make([]Comment, len(p.Comments))
	copy(cp.Comments, p.Comments)
	cp.LikedBy = make([]string, len(p.LikedBy))
	copy(cp.LikedBy, p.LikedBy)
	return &cp
}

// --- Request/response DTOs ---

type CreatePostRequest struct {
	Content  string `json:"content" validate:"required,max=2000"`
	Category string `json:"category" validate:"required,oneof=story question achievement tip event"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type LikeResponse struct {
	Post  *Post `json:"post"`
	Liked bool  `json:"liked"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}
