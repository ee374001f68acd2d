package indicators

import (
	"math"
	"testing"
	"time"

	"stock-analyzer/internal/types"
)

func barsFromCloses(closes ...float64) []types.PriceBar {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]types.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = types.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100.0 + float64(i)
	}
	return closes
}

func TestMovingAverages_InsufficientHistoryIsNil(t *testing.T) {
	bars := barsFromCloses(risingCloses(10)...)
	points := MovingAverages(bars)
	if len(points) != len(bars) {
		t.Fatalf("expected %d points, got %d", len(bars), len(points))
	}
	for i, p := range points {
		if p.SMA20 != nil || p.SMA50 != nil || p.SMA200 != nil {
			t.Errorf("index %d: expected all nil for 10-bar series", i)
		}
	}
}

func TestMovingAverages_DefinedFromWindowEnd(t *testing.T) {
	bars := barsFromCloses(risingCloses(25)...)
	points := MovingAverages(bars)
	if points[18].SMA20 != nil {
		t.Error("SMA20 should be nil at index 18")
	}
	if points[19].SMA20 == nil {
		t.Fatal("SMA20 should be defined at index 19")
	}
	// Mean of 100..119 is 109.5.
	if got := *points[19].SMA20; math.Abs(got-109.5) > 1e-9 {
		t.Errorf("SMA20[19] = %f, want 109.5", got)
	}
}

func TestRSI_AllGainsIsHundred(t *testing.T) {
	bars := barsFromCloses(risingCloses(30)...)
	points := RSI(bars, 14)
	for i := 0; i < 14; i++ {
		if points[i].RSI != nil {
			t.Errorf("index %d: RSI should be nil before period", i)
		}
	}
	for i := 14; i < len(points); i++ {
		if points[i].RSI == nil {
			t.Fatalf("index %d: RSI should be defined", i)
		}
		if *points[i].RSI != 100.0 {
			t.Errorf("index %d: RSI = %f, want exactly 100 for all-gains series", i, *points[i].RSI)
		}
	}
}

func TestRSI_WithinBounds(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100.0 + 8.0*math.Sin(float64(i)/3.0)
	}
	points := RSI(barsFromCloses(closes...), 14)
	for i, p := range points {
		if p.RSI == nil {
			continue
		}
		if *p.RSI < 0 || *p.RSI > 100 {
			t.Errorf("index %d: RSI %f out of [0,100]", i, *p.RSI)
		}
	}
}

func TestMACD_HistogramIdentity(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 100.0 + 10.0*math.Sin(float64(i)/5.0)
	}
	points := MACD(barsFromCloses(closes...), 12, 26, 9)

	if points[24].MACDLine != nil {
		t.Error("MACD line should be nil at index 24")
	}
	if points[25].MACDLine == nil {
		t.Error("MACD line should be defined at index 25")
	}
	if points[32].SignalLine != nil {
		t.Error("signal line should be nil at index 32")
	}
	if points[33].SignalLine == nil {
		t.Error("signal line should be defined at index 33")
	}

	for i, p := range points {
		if p.MACDLine == nil || p.SignalLine == nil {
			if p.Histogram != nil {
				t.Errorf("index %d: histogram defined without both lines", i)
			}
			continue
		}
		want := *p.MACDLine - *p.SignalLine
		if math.Abs(*p.Histogram-want) > 1e-4 {
			t.Errorf("index %d: histogram %f != macd-signal %f", i, *p.Histogram, want)
		}
	}
}

func TestBollingerBands_ConstantSeriesCollapses(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = 50.0
	}
	points := BollingerBands(barsFromCloses(closes...), 20, 2)
	if points[18].MiddleBand != nil {
		t.Error("bands should be nil at index 18")
	}
	p := points[19]
	if p.MiddleBand == nil || p.UpperBand == nil || p.LowerBand == nil {
		t.Fatal("bands should be defined at index 19")
	}
	if *p.UpperBand != 50.0 || *p.MiddleBand != 50.0 || *p.LowerBand != 50.0 {
		t.Errorf("constant series should collapse bands to the price, got %f/%f/%f",
			*p.UpperBand, *p.MiddleBand, *p.LowerBand)
	}
}

func TestStochastic_ExtremesAndBounds(t *testing.T) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]types.PriceBar, 20)
	for i := range bars {
		// Close rides the highs: close == highest high over any lookback.
		c := 100.0 + float64(i)
		bars[i] = types.PriceBar{Date: start.AddDate(0, 0, i), Open: c - 1, High: c, Low: c - 2, Close: c}
	}
	points := Stochastic(bars, 14, 3)
	if points[12].PercentK != nil {
		t.Error("%K should be nil at index 12")
	}
	for i := 13; i < len(points); i++ {
		if points[i].PercentK == nil {
			t.Fatalf("index %d: %%K should be defined", i)
		}
		if *points[i].PercentK != 100.0 {
			t.Errorf("index %d: close == highest high should give %%K == 100, got %f", i, *points[i].PercentK)
		}
	}
	if points[14].PercentD != nil {
		t.Error("%D should be nil at index 14")
	}
	if points[15].PercentD == nil {
		t.Fatal("%D should be defined at index 15")
	}

	// Mirror series: close rides the lows.
	for i := range bars {
		c := 100.0 - float64(i)
		bars[i] = types.PriceBar{Date: start.AddDate(0, 0, i), Open: c + 1, High: c + 2, Low: c, Close: c}
	}
	points = Stochastic(bars, 14, 3)
	for i := 13; i < len(points); i++ {
		if *points[i].PercentK != 0.0 {
			t.Errorf("index %d: close == lowest low should give %%K == 0, got %f", i, *points[i].PercentK)
		}
	}
}

func TestStochastic_FlatRangeHoldsMidpoint(t *testing.T) {
	bars := barsFromCloses(func() []float64 {
		c := make([]float64, 18)
		for i := range c {
			c[i] = 42.0
		}
		return c
	}()...)
	points := Stochastic(bars, 14, 3)
	for i := 13; i < len(points); i++ {
		if points[i].PercentK == nil || *points[i].PercentK != 50.0 {
			t.Errorf("index %d: flat series should give %%K == 50", i)
		}
	}
}

func TestPerformance_TooFewBars(t *testing.T) {
	if _, ok := Performance(nil); ok {
		t.Error("empty series should yield no result")
	}
	if _, ok := Performance(barsFromCloses(100)); ok {
		t.Error("single-bar series should yield no result")
	}
}

func TestPerformance_Summary(t *testing.T) {
	bars := barsFromCloses(100, 105, 95, 110)
	perf, ok := Performance(bars)
	if !ok {
		t.Fatal("expected a result for 4-bar series")
	}
	if math.Abs(perf.TotalReturn-10.0) > 1e-9 {
		t.Errorf("total return = %f, want 10", perf.TotalReturn)
	}
	if perf.HighestClose != 110 || perf.LowestClose != 95 {
		t.Errorf("extremes = %f/%f, want 110/95", perf.HighestClose, perf.LowestClose)
	}
	if perf.AverageVolume != 1000 {
		t.Errorf("average volume = %f, want 1000", perf.AverageVolume)
	}
	if perf.Volatility <= 0 {
		t.Errorf("volatility should be positive for a non-flat series, got %f", perf.Volatility)
	}
}
