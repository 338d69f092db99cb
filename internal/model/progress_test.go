// internal/model/progress_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseGameID(t *testing.T) {
	for _, valid := range []string{
		"sign-ninja", "alphabet-match", "number-challenge",
		"memory-match", "word-builder", "speed-signs",
	} {
		got, err := ParseGameID(valid)
		require.NoError(t, err)
		assert.Equal(t, GameID(valid), got)
	}

	for _, invalid := range []string{"", "chess", "signninja", "Sign-Ninja"} {
		_, err := ParseGameID(invalid)
		assert.ErrorIs(t, err, ErrInvalidInput, "game id %q must be rejected", invalid)
	}
}

func Test_DefaultProgress(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	rec := DefaultProgress(now)

	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, 0, rec.XP)
	assert.Equal(t, 0, rec.TotalProgress)
	assert.Equal(t, 0, rec.CurrentStreak)
	assert.Equal(t, "2024-03-01", rec.LastActiveDate)
	assert.False(t, rec.AlphabetMastered)
}

func Test_ProgressRecord_ApplyGameResult(t *testing.T) {
	score := func(i int) *int { return &i }

	t.Run("tracks per-game plays and high score", func(t *testing.T) {
		rec := &ProgressRecord{}

		require.NoError(t, rec.ApplyGameResult(GameSignNinja, score(40)))
		require.NoError(t, rec.ApplyGameResult(GameSignNinja, score(25)))
		require.NoError(t, rec.ApplyGameResult(GameSignNinja, score(41)))

		assert.Equal(t, 3, rec.SignNinjaPlays)
		assert.Equal(t, 41, rec.SignNinjaHighScore)
	})

	t.Run("an equal score does not replace the high score", func(t *testing.T) {
		rec := &ProgressRecord{WordBuilderHighScore: 30}
		require.NoError(t, rec.ApplyGameResult(GameWordBuilder, score(30)))
		assert.Equal(t, 30, rec.WordBuilderHighScore)
		assert.Equal(t, 1, rec.WordBuilderPlays)
	})

	t.Run("a nil score still counts the play", func(t *testing.T) {
		rec := &ProgressRecord{}
		require.NoError(t, rec.ApplyGameResult(GameSpeedSigns, nil))
		assert.Equal(t, 1, rec.SpeedSignsPlays)
		assert.Equal(t, 0, rec.SpeedSignsHighScore)
	})

	t.Run("games do not share counters", func(t *testing.T) {
		rec := &ProgressRecord{}
		require.NoError(t, rec.ApplyGameResult(GameAlphabetMatch, score(10)))
		require.NoError(t, rec.ApplyGameResult(GameNumberChallenge, score(20)))
		assert.Equal(t, 1, rec.AlphabetMatchPlays)
		assert.Equal(t, 1, rec.NumberChallengePlays)
		assert.Equal(t, 10, rec.AlphabetMatchHighScore)
		assert.Equal(t, 20, rec.NumberChallengeHighScore)
	})

	t.Run("unknown game", func(t *testing.T) {
		rec := &ProgressRecord{}
		assert.ErrorIs(t, rec.ApplyGameResult(GameID("chess"), nil), ErrInvalidInput)
	})
}
