package moves

import (
	"context"
	"math"
	"sort"
	"time"

	"stock-analyzer/internal/logger"
	"stock-analyzer/internal/types"
)

// DefaultThresholdPercent is the minimum absolute daily percent change that
// counts as a significant move.
const DefaultThresholdPercent = 3.0

// NewsSelector attaches headlines to a move. Implemented by the news
// selection cascade; this is the only coupling between move detection and
// sentiment matching.
type NewsSelector interface {
	SelectForDate(ctx context.Context, symbol string, date time.Time, percentChange float64) ([]types.Headline, error)
}

// Detect scans daily bars for moves whose open-to-close percent change meets
// the threshold. Bars with a non-positive open are unusable and skipped.
// Results are ordered most-recent-first.
func Detect(ticker string, bars []types.PriceBar, threshold float64) []types.SignificantMove {
	if threshold <= 0 {
		threshold = DefaultThresholdPercent
	}

	var detected []types.SignificantMove
	for _, b := range bars {
		if b.Open <= 0 {
			continue
		}
		pct := (b.Close - b.Open) / b.Open * 100.0
		if math.Abs(pct) < threshold {
			continue
		}
		detected = append(detected, types.SignificantMove{
			Date:          b.Date,
			PercentChange: pct,
			ClosePrice:    b.Close,
			Volume:        b.Volume,
			Direction:     direction(pct),
		})
	}
	sortMostRecentFirst(detected)
	return detected
}

// DetectWithNews runs Detect and asks the selector for headlines explaining
// each move. Selection failures degrade to a move without news.
func DetectWithNews(ctx context.Context, ticker string, bars []types.PriceBar, threshold float64, selector NewsSelector) []types.SignificantMove {
	detected := Detect(ticker, bars, threshold)
	if selector == nil {
		return detected
	}
	for i := range detected {
		headlines, err := selector.SelectForDate(ctx, ticker, detected[i].Date, detected[i].PercentChange)
		if err != nil {
			logger.Warn(ctx, "news selection failed for move", "ticker", ticker,
				"date", detected[i].Date.Format("2006-01-02"), "error", err)
			continue
		}
		detected[i].RelatedNews = headlines
	}
	return detected
}

// DetectPortfolio scans an aggregated cumulative percent-change series using
// day-over-day deltas. The first point has no predecessor and is skipped;
// move, threshold and direction semantics match the daily detector.
func DetectPortfolio(points []types.PortfolioPoint, threshold float64) []types.SignificantMove {
	if threshold <= 0 {
		threshold = DefaultThresholdPercent
	}

	var detected []types.SignificantMove
	for i := 1; i < len(points); i++ {
		delta := points[i].CumulativePercent - points[i-1].CumulativePercent
		if math.Abs(delta) < threshold {
			continue
		}
		detected = append(detected, types.SignificantMove{
			Date:          points[i].Date,
			PercentChange: delta,
			Direction:     direction(delta),
		})
	}
	sortMostRecentFirst(detected)
	return detected
}

// NormalizeSeries rebases a close series to 100 at the first usable bar,
// producing the cumulative percent-change points the portfolio detector and
// cross-stock comparisons consume.
func NormalizeSeries(bars []types.PriceBar) []types.PortfolioPoint {
	var base float64
	var points []types.PortfolioPoint
	for _, b := range bars {
		if base == 0 {
			if b.Close <= 0 {
				continue
			}
			base = b.Close
		}
		points = append(points, types.PortfolioPoint{
			Date:              b.Date,
			CumulativePercent: (b.Close/base - 1) * 100.0,
		})
	}
	return points
}

func direction(pct float64) types.Direction {
	if pct >= 0 {
		return types.DirectionUp
	}
	return types.DirectionDown
}

func sortMostRecentFirst(ms []types.SignificantMove) {
	sort.Slice(ms, func(i, j int) bool {
		return ms[i].Date.After(ms[j].Date)
	})
}
