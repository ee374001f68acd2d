package match

import (
	"math"

	"stock-analyzer/internal/sentiment"
	"stock-analyzer/internal/types"
)

// NoiseThresholdPercent is the single breakpoint between noise-level and
// meaningful price moves. At or below this magnitude either sentiment is
// considered compatible with the move; beyond it the sentiment must agree
// with the move's direction.
const NoiseThresholdPercent = 2.0

// Matcher decides whether a headline's sentiment is consistent with a
// realized price change. Stateless; safe for concurrent use.
type Matcher struct {
	analyzer *sentiment.Analyzer
}

// New creates a matcher on top of the given analyzer.
func New(analyzer *sentiment.Analyzer) *Matcher {
	return &Matcher{analyzer: analyzer}
}

// MatchesPriceDirection reports whether the headline is consistent with the
// percent price change. Neutral headlines always match: no information is
// never treated as contradiction. Directional sentiment only conflicts with
// a move beyond the noise threshold in the opposite direction.
func (m *Matcher) MatchesPriceDirection(text string, percentChange float64) bool {
	result := m.analyzer.Analyze(text)
	switch result.Label {
	case types.SentimentPositive:
		return percentChange >= -NoiseThresholdPercent
	case types.SentimentNegative:
		return percentChange <= NoiseThresholdPercent
	default:
		return true
	}
}

// Score returns a 0-100 confidence that the headline explains the price
// change. Neutral headlines score a flat 50. Directional sentiment scores
// above 50 when the signs agree and below 50 when they conflict, scaled by
// the magnitude of the sentiment score.
func (m *Matcher) Score(text string, percentChange float64) int {
	result := m.analyzer.Analyze(text)
	if result.Label == types.SentimentNeutral {
		return 50
	}

	agrees := (result.Label == types.SentimentPositive && percentChange >= 0) ||
		(result.Label == types.SentimentNegative && percentChange <= 0)

	magnitude := math.Abs(result.Score) * 50.0
	var score float64
	if agrees {
		score = 50.0 + magnitude
	} else {
		score = 50.0 - magnitude
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

// Evaluate bundles both checks into one result.
func (m *Matcher) Evaluate(text string, percentChange float64) types.MatchResult {
	return types.MatchResult{
		Matches:    m.MatchesPriceDirection(text, percentChange),
		MatchScore: m.Score(text, percentChange),
	}
}
