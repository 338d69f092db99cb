// internal/config/constants.go
package config

// Application info
const (
	AppName    = "isl_learn"
	AppVersion = "1.2.0"
)

// Default settings
const (
	DefaultServerPort           = ":8080"
	DefaultDatabasePath         = "data/isl_learn.db"
	DefaultLogLevel             = "info"
	DefaultEngagementMinDelayMs = 2000
	DefaultEngagementMaxDelayMs = 5000
)

// Storage keys. These match the key-value layout of the mobile builds so a
// snapshot exported from a device can be imported unchanged.
const (
	ProgressSnapshotKey = "userProgress"
	PostsSnapshotKey    = "@community_posts"
	UserIDSnapshotKey   = "@current_user_id"
)

// XP awarded per activity.
const (
	XPVideoWatched         = 10
	XPGamePlayed           = 20
	XPPracticeCorrect      = 5
	XPPracticeIncorrect    = 2
	XPRecognitionCorrect   = 15
	XPRecognitionIncorrect = 5

	// A level is gained every XPPerLevel experience points.
	XPPerLevel = 100
)

// Total-progress composite: each activity saturates at its own percentage cap
// once the target count is reached, so all four activity types must be
// exercised to reach 100.
const (
	VideoProgressTarget = 10
	VideoProgressCap    = 20.0

	GameProgressTarget = 20
	GameProgressCap    = 30.0

	PracticeProgressTarget = 50
	PracticeProgressCap    = 25.0

	RecognitionProgressTarget = 30
	RecognitionProgressCap    = 25.0
)
