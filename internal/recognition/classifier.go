// internal/recognition/classifier.go
package recognition

import (
	"context"
	"math/rand"
	"sync"

	"isl_learn/internal/model"
)

// NumClasses is the number of letter classes the classifier scores.
const NumClasses = 26

// Prediction is the classifier's answer for one capture.
type Prediction struct {
	Letter     string    `json:"letter"`
	Confidence float64   `json:"confidence"`
	Scores     []float64 `json:"-"`
}

// Classifier scores a captured hand sign against the 26 ISL letter classes.
// Implementations must return a probability distribution over the classes.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (*Prediction, error)
}

// mockClassifier substitutes for the trained model: it returns a random
// one-hot-ish distribution so the recognition flow degrades instead of
// failing when no model is bundled.
type mockClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockClassifier(seed int64) Classifier {
	return &mockClassifier{rng: rand.New(rand.NewSource(seed))}
}

func (c *mockClassifier) Classify(ctx context.Context, image []byte) (*Prediction, error) {
	if len(image) == 0 {
		return nil, model.ErrInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	winner := c.rng.Intn(NumClasses)
	confidence := 0.55 + c.rng.Float64()*0.4

	// Spread the remaining mass over the other classes so the scores still
	// sum to one.
	scores := make([]float64, NumClasses)
	remaining := 1.0 - confidence
	for i := range scores {
		if i == winner {
			scores[i] = confidence
		} else {
			scores[i] = remaining / float64(NumClasses-1)
		}
	}

	return &Prediction{
		Letter:     string(rune('A' + winner)),
		Confidence: confidence,
		Scores:     scores,
	}, nil
}
