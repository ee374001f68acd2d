package match

import (
	"testing"

	"stock-analyzer/internal/sentiment"
)

func newMatcher() *Matcher {
	return New(sentiment.NewAnalyzer())
}

// Regression: a positive-sounding headline must not be matched to a large
// drop. This exact pairing shipped to production once.
func TestRegression_SoarsHeadlineAgainstDrop(t *testing.T) {
	m := newMatcher()
	headline := "Ford Stock Soars. There Is Still a Huge Problem."

	if m.MatchesPriceDirection(headline, -8.72) {
		t.Error("positive headline must not match a -8.72% move")
	}
	if score := m.Score(headline, -8.72); score >= 50 {
		t.Errorf("score = %d, want < 50", score)
	}
}

func TestRegression_DowngradeHeadlineAgainstDrop(t *testing.T) {
	m := newMatcher()
	headline := "Analyst Downgrades Ford to Sell, Citing Tariff Concerns"

	if !m.MatchesPriceDirection(headline, -8.72) {
		t.Error("negative headline should match a -8.72% move")
	}
	if score := m.Score(headline, -8.72); score <= 50 {
		t.Errorf("score = %d, want > 50", score)
	}
}

func TestNeutralAlwaysMatches(t *testing.T) {
	m := newMatcher()
	for _, pct := range []float64{-12.5, -2.0, 0, 1.5, 9.3} {
		if !m.MatchesPriceDirection("Company schedules annual shareholder meeting", pct) {
			t.Errorf("neutral headline should match any move, failed at %.2f%%", pct)
		}
		if score := m.Score("Company schedules annual shareholder meeting", pct); score != 50 {
			t.Errorf("neutral score = %d at %.2f%%, want flat 50", score, pct)
		}
	}
}

func TestEmptyHeadline(t *testing.T) {
	m := newMatcher()
	if !m.MatchesPriceDirection("", -8.72) {
		t.Error("empty headline must match: absence of information is not contradiction")
	}
	if score := m.Score("", -8.72); score != 50 {
		t.Errorf("empty headline score = %d, want 50", score)
	}
}

func TestNoiseLevelMovesAreLenient(t *testing.T) {
	m := newMatcher()
	// Directional sentiment against a sub-threshold move in the opposite
	// direction still matches.
	if !m.MatchesPriceDirection("Shares surge on record earnings", -1.5) {
		t.Error("positive headline should tolerate a -1.5% noise move")
	}
	if !m.MatchesPriceDirection("Stock plunges as outlook worsens", 1.5) {
		t.Error("negative headline should tolerate a +1.5% noise move")
	}
	// Beyond the breakpoint, agreement is required.
	if m.MatchesPriceDirection("Shares surge on record earnings", -4.0) {
		t.Error("positive headline must not match a -4% move")
	}
}

func TestScoreBounds(t *testing.T) {
	m := newMatcher()
	texts := []string{
		"",
		"Soars surges rallies record beats strong robust win",
		"Plunges crashes losses downgrades bankruptcy crisis",
		"Quarterly report released",
	}
	changes := []float64{-15, -8.72, -2, 0, 2, 8.72, 15}
	for _, text := range texts {
		for _, pct := range changes {
			score := m.Score(text, pct)
			if score < 0 || score > 100 {
				t.Errorf("Score(%q, %.2f) = %d out of [0,100]", text, pct, score)
			}
		}
	}
}

func TestScoreRewardsAgreement(t *testing.T) {
	m := newMatcher()
	up := m.Score("Shares surge on record earnings", 6.0)
	down := m.Score("Shares surge on record earnings", -6.0)
	if up <= 50 {
		t.Errorf("agreeing direction should score above 50, got %d", up)
	}
	if down >= 50 {
		t.Errorf("conflicting direction should score below 50, got %d", down)
	}
	if up+down != 100 {
		t.Errorf("agree/conflict scores should mirror around 50, got %d and %d", up, down)
	}
}
