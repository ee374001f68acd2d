package sentiment

import (
	"context"
	"strings"

	"stock-analyzer/internal/types"
)

// Ensemble weights and classification cutoffs. The keyword tier dominates
// because its lexicon is domain-specific; the valence tier covers general
// language, negation and intensifiers.
const (
	KeywordWeight  = 0.6
	ValenceWeight  = 0.4
	PositiveCutoff = 0.05
	NegativeCutoff = -0.05
	mlBlendWeight  = 0.5
)

// Analyzer classifies short texts into a polarity label and a score in
// [-1, 1]. It is stateless and safe for concurrent use; the optional ML tier
// is consulted only through its non-blocking cache.
type Analyzer struct {
	lexicon *keywordLexicon
	ml      *MLCache // nil when the capability is disabled
}

// NewAnalyzer returns an analyzer running the keyword and valence tiers.
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: newKeywordLexicon()}
}

// NewAnalyzerWithML returns an analyzer that additionally blends cached
// scores from a trained classifier. Tier 1/2 behavior is unchanged when the
// cache has no result for a text.
func NewAnalyzerWithML(ml *MLCache) *Analyzer {
	return &Analyzer{lexicon: newKeywordLexicon(), ml: ml}
}

// Analyze scores a headline. Empty or whitespace-only text is Neutral with
// score 0; absence of information is never treated as contradiction.
func (a *Analyzer) Analyze(text string) types.SentimentResult {
	return a.AnalyzeContext(context.Background(), text)
}

// AnalyzeContext is Analyze with a context for the optional ML tier lookup.
func (a *Analyzer) AnalyzeContext(ctx context.Context, text string) types.SentimentResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.SentimentResult{Label: types.SentimentNeutral, Score: 0}
	}

	lower := strings.ToLower(trimmed)
	keywordScore := a.lexicon.score(lower)
	valenceScore := compoundScore(lower)
	combined := keywordScore*KeywordWeight + valenceScore*ValenceWeight

	if a.ml != nil {
		if mlScore, ok := a.ml.Lookup(ctx, trimmed); ok {
			combined = combined*(1-mlBlendWeight) + mlScore*mlBlendWeight
		}
	}
	combined = clampScore(combined)

	label := types.SentimentNeutral
	switch {
	case combined > PositiveCutoff:
		label = types.SentimentPositive
	case combined < NegativeCutoff:
		label = types.SentimentNegative
	}
	return types.SentimentResult{Label: label, Score: combined}
}
