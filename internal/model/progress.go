// internal/model/progress.go
package model

import (
	"time"
)

// DateLayout is the day-granularity format used for streak bookkeeping.
const DateLayout = "2006-01-02"

type GameID string

const (
	GameSignNinja       GameID = "sign-ninja"
	GameAlphabetMatch   GameID = "alphabet-match"
	GameNumberChallenge GameID = "number-challenge"
	GameMemoryMatch     GameID = "memory-match"
	GameWordBuilder     GameID = "word-builder"
	GameSpeedSigns      GameID = "speed-signs"
)

// ParseGameID validates a game identifier coming from the client.
func ParseGameID(s string) (GameID, error) {
	switch GameID(s) {
	case GameSignNinja, GameAlphabetMatch, GameNumberChallenge,
		GameMemoryMatch, GameWordBuilder, GameSpeedSigns:
		return GameID(s), nil
	}
	return "", NewAppError("VALIDATION_ERROR", "unknown game id: "+s, "game_id", ErrInvalidInput)
}

// ProgressRecord is the single per-installation learner record. Field names
// in JSON match the snapshot layout of the mobile builds. Level and
// TotalProgress are derived from the counters and are only ever written by
// Recalculate.
type ProgressRecord struct {
	TotalProgress int `json:"totalProgress"`
	Level         int `json:"level"`
	XP            int `json:"xp"`

	// Activity tracking
	VideosWatched         int `json:"videosWatched"`
	GamesPlayed           int `json:"gamesPlayed"`
	PracticeAttempts      int `json:"practiceAttempts"`
	AIRecognitionAttempts int `json:"aiRecognitionAttempts"`

	// Game-specific progress
	SignNinjaHighScore       int `json:"signNinjaHighScore"`
	SignNinjaPlays           int `json:"signNinjaPlays"`
	AlphabetMatchHighScore   int `json:"alphabetMatchHighScore"`
	AlphabetMatchPlays       int `json:"alphabetMatchPlays"`
	NumberChallengeHighScore int `json:"numberChallengeHighScore"`
	NumberChallengePlays     int `json:"numberChallengePlays"`
	MemoryMatchHighScore     int `json:"memoryMatchHighScore"`
	MemoryMatchPlays         int `json:"memoryMatchPlays"`
	WordBuilderHighScore     int `json:"wordBuilderHighScore"`
	WordBuilderPlays         int `json:"wordBuilderPlays"`
	SpeedSignsHighScore      int `json:"speedSignsHighScore"`
	SpeedSignsPlays          int `json:"speedSignsPlays"`

	// Learning milestones. No counter-driven write path exists for these;
	// they are carried in the snapshot and only reset writes them.
	AlphabetMastered   bool `json:"alphabetMastered"`
	NumbersMastered    bool `json:"numbersMastered"`
	BasicWordsMastered bool `json:"basicWordsMastered"`

	// Streak tracking
	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
	LastActiveDate string `json:"lastActiveDate"`
}

// DefaultProgress returns a zero-value record with LastActiveDate set to the
// given day.
func DefaultProgress(now time.Time) *ProgressRecord {
	return &ProgressRecord{
		Level:          1,
		LastActiveDate: now.Format(DateLayout),
	}
}

// ApplyGameResult bumps the play counter for the game and keeps the high
// score only when the new score is strictly greater.
func (p *ProgressRecord) ApplyGameResult(id GameID, score *int) error {
	var highScore, plays *int
	switch id {
	case GameSignNinja:
		highScore, plays = &p.SignNinjaHighScore, &p.SignNinjaPlays
	case GameAlphabetMatch:
		highScore, plays = &p.AlphabetMatchHighScore, &p.AlphabetMatchPlays
	case GameNumberChallenge:
		highScore, plays = &p.NumberChallengeHighScore, &p.NumberChallengePlays
	case GameMemoryMatch:
		highScore, plays = &p.MemoryMatchHighScore, &p.MemoryMatchPlays
	case GameWordBuilder:
		highScore, plays = &p.WordBuilderHighScore, &p.WordBuilderPlays
	case GameSpeedSigns:
		highScore, plays = &p.SpeedSignsHighScore, &p.SpeedSignsPlays
	default:
		return ErrInvalidInput
	}
	*plays++
	if score != nil && *score > *highScore {
		*highScore = *score
	}
	return nil
}

// --- Request DTOs ---

type GameResultRequest struct {
	GameID string `json:"game_id" validate:"required"`
	Score  *int   `json:"score,omitempty" validate:"omitempty,gte=0"`
}

type AttemptResultRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}
