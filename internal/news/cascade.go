package news

import (
	"context"
	"sort"
	"time"

	"stock-analyzer/internal/interfaces"
	"stock-analyzer/internal/logger"
	"stock-analyzer/internal/match"
	"stock-analyzer/internal/trace"
	"stock-analyzer/internal/types"
)

// MinMatchScore is the cutoff below which a company headline is considered
// inconsistent with the observed move and excluded from the result.
const MinMatchScore = 25

// Cascade selects headlines to attach to a significant move. Company
// headlines are kept only when their sentiment is consistent with the move;
// when none qualify, general market headlines are returned unfiltered.
// Broad market context that doesn't purport to explain a specific stock is
// less misleading than a company headline contradicting the observed move.
type Cascade struct {
	matcher     *match.Matcher
	provider    interfaces.NewsProvider
	maxArticles int
}

// NewCascade builds a cascade over the matcher and news provider.
func NewCascade(matcher *match.Matcher, provider interfaces.NewsProvider, maxArticles int) *Cascade {
	if maxArticles <= 0 {
		maxArticles = 3
	}
	return &Cascade{matcher: matcher, provider: provider, maxArticles: maxArticles}
}

// Select applies the cascade policy to a candidate list: rank consistent
// company headlines by match score, or fall back to market news. An empty
// market-news source yields an empty result; there is no third fallback.
func (c *Cascade) Select(ctx context.Context, candidates []types.Headline, percentChange float64, maxArticles int) []types.Headline {
	if maxArticles <= 0 {
		maxArticles = c.maxArticles
	}

	type scored struct {
		headline types.Headline
		score    int
	}
	var qualified []scored
	for _, h := range candidates {
		s := c.matcher.Score(h.Text, percentChange)
		if s > MinMatchScore {
			qualified = append(qualified, scored{headline: h, score: s})
		}
	}

	if len(qualified) > 0 {
		sort.SliceStable(qualified, func(i, j int) bool {
			return qualified[i].score > qualified[j].score
		})
		if len(qualified) > maxArticles {
			qualified = qualified[:maxArticles]
		}
		selected := make([]types.Headline, len(qualified))
		for i, q := range qualified {
			selected[i] = q.headline
		}
		return selected
	}

	if c.provider == nil {
		return nil
	}
	market, err := c.provider.MarketNews(ctx, maxArticles)
	if err != nil {
		logger.Warn(ctx, "market news fallback failed", "error", err)
		return nil
	}
	if len(market) > maxArticles {
		market = market[:maxArticles]
	}
	return market
}

// SelectForDate fetches company headlines around the move date and applies
// the cascade. It implements the moves.NewsSelector coupling point.
func (c *Cascade) SelectForDate(ctx context.Context, symbol string, date time.Time, percentChange float64) ([]types.Headline, error) {
	ctx, span := trace.StartSpan(ctx, "select-news-for-move")
	defer span.End()

	var candidates []types.Headline
	if c.provider != nil {
		from := date
		to := date.AddDate(0, 0, 1)
		fetched, err := c.provider.CompanyNews(ctx, symbol, from, to, c.maxArticles*4)
		if err != nil {
			logger.Warn(ctx, "company news fetch failed", "symbol", symbol, "error", err)
		} else {
			candidates = fetched
		}
	}
	return c.Select(ctx, candidates, percentChange, c.maxArticles), nil
}
