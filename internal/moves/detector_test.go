package moves

import (
	"math"
	"testing"
	"time"

	"stock-analyzer/internal/types"
)

func day(n int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestDetect_ThresholdGates(t *testing.T) {
	bars := []types.PriceBar{
		{Date: day(0), Open: 100, Close: 101, Volume: 10},  // +1%
		{Date: day(1), Open: 100, Close: 106, Volume: 20},  // +6%
		{Date: day(2), Open: 100, Close: 99.5, Volume: 30}, // -0.5%
	}

	detected := Detect("ACME", bars, 5.0)
	if len(detected) != 1 {
		t.Fatalf("threshold 5: expected 1 move, got %d", len(detected))
	}
	m := detected[0]
	if math.Abs(m.PercentChange-6.0) > 1e-9 {
		t.Errorf("percent change = %f, want 6", m.PercentChange)
	}
	if m.Direction != types.DirectionUp {
		t.Errorf("direction = %s, want up", m.Direction)
	}
	if m.ClosePrice != 106 || m.Volume != 20 {
		t.Errorf("move should carry the bar's close and volume")
	}

	if detected := Detect("ACME", bars, 10.0); len(detected) != 0 {
		t.Errorf("threshold 10: expected no moves, got %d", len(detected))
	}
}

func TestDetect_MostRecentFirst(t *testing.T) {
	bars := []types.PriceBar{
		{Date: day(0), Open: 100, Close: 94},  // -6%
		{Date: day(1), Open: 100, Close: 101}, // +1%
		{Date: day(2), Open: 100, Close: 108}, // +8%
		{Date: day(3), Open: 100, Close: 95},  // -5%
	}
	detected := Detect("ACME", bars, 3.0)
	if len(detected) != 3 {
		t.Fatalf("expected 3 moves, got %d", len(detected))
	}
	for i := 1; i < len(detected); i++ {
		if !detected[i].Date.Before(detected[i-1].Date) {
			t.Errorf("moves not strictly date-descending at index %d", i)
		}
	}
	if detected[0].Direction != types.DirectionDown {
		t.Errorf("most recent move should be the -5%% day")
	}
}

func TestDetect_SkipsUnusableOpen(t *testing.T) {
	bars := []types.PriceBar{
		{Date: day(0), Open: 0, Close: 50},
		{Date: day(1), Open: -1, Close: 50},
		{Date: day(2), Open: 100, Close: 110},
	}
	detected := Detect("ACME", bars, 3.0)
	if len(detected) != 1 {
		t.Fatalf("expected only the valid bar to be considered, got %d moves", len(detected))
	}
}

func TestDetectPortfolio_DayOverDayDeltas(t *testing.T) {
	points := []types.PortfolioPoint{
		{Date: day(0), CumulativePercent: 0},
		{Date: day(1), CumulativePercent: 6},  // +6
		{Date: day(2), CumulativePercent: 2},  // -4
		{Date: day(3), CumulativePercent: 3},  // +1
	}
	detected := DetectPortfolio(points, 3.0)
	if len(detected) != 2 {
		t.Fatalf("expected 2 moves, got %d", len(detected))
	}
	if detected[0].Date != day(2) || detected[0].Direction != types.DirectionDown {
		t.Errorf("first move should be the -4 delta on day 2")
	}
	if detected[1].Date != day(1) || detected[1].Direction != types.DirectionUp {
		t.Errorf("second move should be the +6 delta on day 1")
	}
}

func TestNormalizeSeries_RebasesToHundred(t *testing.T) {
	bars := []types.PriceBar{
		{Date: day(0), Close: 200},
		{Date: day(1), Close: 220},
		{Date: day(2), Close: 190},
	}
	points := NormalizeSeries(bars)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	want := []float64{0, 10, -5}
	for i, p := range points {
		if math.Abs(p.CumulativePercent-want[i]) > 1e-9 {
			t.Errorf("point %d: cumulative %% = %f, want %f", i, p.CumulativePercent, want[i])
		}
	}
}
