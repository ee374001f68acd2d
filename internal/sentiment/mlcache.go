package sentiment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"stock-analyzer/internal/logger"
)

// MLClassifier is the optional trained tier of the ensemble.
type MLClassifier interface {
	// Score returns a sentiment score in [-1, 1] for the text.
	Score(ctx context.Context, text string) (float64, error)
}

// MLCache memoizes classifier results keyed by a hash of the headline text.
// A lookup miss schedules the computation in the background, at most once per
// distinct text, and reports a miss immediately so the synchronous keyword
// and valence tiers are never blocked on the classifier.
type MLCache struct {
	classifier MLClassifier

	mu       sync.RWMutex
	scores   map[string]float64
	inFlight map[string]bool
}

// NewMLCache wraps a classifier with an at-most-once result cache.
func NewMLCache(classifier MLClassifier) *MLCache {
	return &MLCache{
		classifier: classifier,
		scores:     make(map[string]float64),
		inFlight:   make(map[string]bool),
	}
}

// Lookup returns the cached score for the text if one exists. On a miss it
// kicks off computation in the background and returns ok=false.
func (c *MLCache) Lookup(ctx context.Context, text string) (float64, bool) {
	key := textKey(text)

	c.mu.RLock()
	score, ok := c.scores[key]
	c.mu.RUnlock()
	if ok {
		return score, true
	}

	c.mu.Lock()
	if c.inFlight[key] {
		c.mu.Unlock()
		return 0, false
	}
	c.inFlight[key] = true
	c.mu.Unlock()

	go c.compute(key, text)
	return 0, false
}

func (c *MLCache) compute(key, text string) {
	ctx := context.Background()
	score, err := c.classifier.Score(ctx, text)
	if err != nil {
		logger.Warn(ctx, "ML sentiment classification failed", "error", err)
		c.mu.Lock()
		delete(c.inFlight, key)
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.scores[key] = clampScore(score)
	delete(c.inFlight, key)
	c.mu.Unlock()
}

// Put stores a precomputed score, primarily for tests and warm starts.
func (c *MLCache) Put(text string, score float64) {
	c.mu.Lock()
	c.scores[textKey(text)] = clampScore(score)
	c.mu.Unlock()
}

func textKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
