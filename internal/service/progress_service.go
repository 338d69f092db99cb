// internal/service/progress_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"time"

	"isl_learn/internal/config"
	"isl_learn/internal/middleware"
	"isl_learn/internal/model"
	"isl_learn/internal/repository"

	"gorm.io/gorm"
)

// ProgressService is the single authoritative store for learner progress.
// Persistence is best-effort: a failed write is logged and the in-memory
// record still advances.
type ProgressService interface {
	Load(ctx context.Context)
	Get(ctx context.Context) *model.ProgressRecord
	RecordVideoWatched(ctx context.Context) *model.ProgressRecord
	RecordGamePlayed(ctx context.Context, gameID model.GameID, score *int) (*model.ProgressRecord, error)
	RecordPracticeAttempt(ctx context.Context, correct bool) *model.ProgressRecord
	RecordAIRecognitionAttempt(ctx context.Context, correct bool) *model.ProgressRecord
	Reset(ctx context.Context)
}

type progressService struct {
	db       *gorm.DB
	snapRepo repository.SnapshotRepository

	mu     sync.Mutex
	record *model.ProgressRecord

	now func() time.Time
}

func NewProgressService(db *gorm.DB, snapRepo repository.SnapshotRepository) ProgressService {
	s := &progressService{
		db:       db,
		snapRepo: snapRepo,
		now:      time.Now,
	}
	s.record = model.DefaultProgress(s.now())
	return s
}

// Load replaces the in-memory record with the persisted snapshot, if one
// exists, and touches the streak so a new day is counted on launch.
func (s *progressService) Load(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.snapRepo.Get(ctx, s.db, config.ProgressSnapshotKey)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to load progress snapshot, starting from defaults", "error", err)
		}
		return
	}

	var rec model.ProgressRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		logger.Error("Corrupt progress snapshot, starting from defaults", "error", err)
		return
	}

	s.record = &rec
	s.recalculate()
	if s.touchStreak() {
		s.persist(ctx)
	}
}

func (s *progressService) Get(ctx context.Context) *model.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *s.record
	return &cp
}

func (s *progressService) RecordVideoWatched(ctx context.Context) *model.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.record.XP += config.XPVideoWatched
	s.record.VideosWatched++
	s.recalculate()
	s.touchStreak()
	s.persist(ctx)

	cp := *s.record
	return &cp
}

func (s *progressService) RecordGamePlayed(ctx context.Context, gameID model.GameID, score *int) (*model.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.record.ApplyGameResult(gameID, score); err != nil {
		return nil, model.NewAppError("VALIDATION_ERROR", "unknown game id", "game_id", err)
	}
	s.record.XP += config.XPGamePlayed
	s.record.GamesPlayed++
	s.recalculate()
	s.touchStreak()
	s.persist(ctx)

	cp := *s.record
	return &cp, nil
}

func (s *progressService) RecordPracticeAttempt(ctx context.Context, correct bool) *model.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if correct {
		s.record.XP += config.XPPracticeCorrect
	} else {
		s.record.XP += config.XPPracticeIncorrect
	}
	s.record.PracticeAttempts++
	s.recalculate()
	s.touchStreak()
	s.persist(ctx)

	cp := *s.record
	return &cp
}

func (s *progressService) RecordAIRecognitionAttempt(ctx context.Context, correct bool) *model.ProgressRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if correct {
		s.record.XP += config.XPRecognitionCorrect
	} else {
		s.record.XP += config.XPRecognitionIncorrect
	}
	s.record.AIRecognitionAttempts++
	s.recalculate()
	s.touchStreak()
	s.persist(ctx)

	cp := *s.record
	return &cp
}

// Reset restores the documented defaults and clears the persisted snapshot.
func (s *progressService) Reset(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.record = model.DefaultProgress(s.now())
	if err := s.snapRepo.Delete(ctx, s.db, config.ProgressSnapshotKey); err != nil {
		logger.Error("Failed to clear progress snapshot", "error", err)
	}
}

// recalculate rewrites the derived Level and TotalProgress fields from the
// counters. It is the only write path for either field, so the stored values
// cannot drift from the formulas. Callers must hold s.mu.
func (s *progressService) recalculate() {
	rec := s.record
	rec.Level = rec.XP/config.XPPerLevel + 1

	videoTerm := math.Min(float64(rec.VideosWatched)/config.VideoProgressTarget*config.VideoProgressCap, config.VideoProgressCap)
	gameTerm := math.Min(float64(rec.GamesPlayed)/config.GameProgressTarget*config.GameProgressCap, config.GameProgressCap)
	practiceTerm := math.Min(float64(rec.PracticeAttempts)/config.PracticeProgressTarget*config.PracticeProgressCap, config.PracticeProgressCap)
	aiTerm := math.Min(float64(rec.AIRecognitionAttempts)/config.RecognitionProgressTarget*config.RecognitionProgressCap, config.RecognitionProgressCap)

	rec.TotalProgress = int(math.Round(videoTerm + gameTerm + practiceTerm + aiTerm))
}

// touchStreak advances the daily streak by calendar-day difference. Same-day
// calls are no-ops, so invoking it after every mutation is safe. A
// non-positive diff (clock moved backward) is treated as "no change" rather
// than a broken streak. Returns true when the record changed. Callers must
// hold s.mu.
func (s *progressService) touchStreak() bool {
	rec := s.record
	today := s.now().Format(model.DateLayout)

	last, err := time.Parse(model.DateLayout, rec.LastActiveDate)
	if err != nil {
		// Unreadable date in the snapshot; start a fresh streak today.
		rec.CurrentStreak = 1
		if rec.LongestStreak < 1 {
			rec.LongestStreak = 1
		}
		rec.LastActiveDate = today
		return true
	}

	todayDate, _ := time.Parse(model.DateLayout, today)
	diffDays := int(todayDate.Sub(last).Hours() / 24)

	switch {
	case diffDays <= 0:
		return false
	case diffDays == 1:
		rec.CurrentStreak++
		if rec.CurrentStreak > rec.LongestStreak {
			rec.LongestStreak = rec.CurrentStreak
		}
		rec.LastActiveDate = today
	default:
		// Streak broken; the longest streak is kept.
		rec.CurrentStreak = 1
		if rec.LongestStreak < 1 {
			rec.LongestStreak = 1
		}
		rec.LastActiveDate = today
	}
	return true
}

// persist writes the whole record under its snapshot key. Failures are
// logged and swallowed; durability here is best-effort. Callers must hold
// s.mu.
func (s *progressService) persist(ctx context.Context) {
	logger := middleware.GetLogger(ctx)

	raw, err := json.Marshal(s.record)
	if err != nil {
		logger.Error("Failed to serialize progress record", "error", err)
		return
	}
	if err := s.snapRepo.Put(ctx, s.db, config.ProgressSnapshotKey, raw); err != nil {
		logger.Error("Failed to persist progress record, continuing with in-memory state", "error", err)
	}
}
