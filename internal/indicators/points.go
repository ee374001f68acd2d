package indicators

import "time"

// Indicator outputs are positionally aligned with the input bars: one point
// per bar, with nil values at indices where not enough history exists yet.

// MovingAveragePoint bundles the SMA-20/50/200 values for one bar.
type MovingAveragePoint struct {
	Date   time.Time `json:"date"`
	SMA20  *float64  `json:"sma20"`
	SMA50  *float64  `json:"sma50"`
	SMA200 *float64  `json:"sma200"`
}

// RSIPoint holds the Wilder-smoothed RSI for one bar, in [0, 100].
type RSIPoint struct {
	Date time.Time `json:"date"`
	RSI  *float64  `json:"rsi"`
}

// MACDPoint holds the MACD line, signal line and histogram for one bar.
type MACDPoint struct {
	Date       time.Time `json:"date"`
	MACDLine   *float64  `json:"macd_line"`
	SignalLine *float64  `json:"signal_line"`
	Histogram  *float64  `json:"histogram"`
}

// BollingerPoint holds the Bollinger Band values for one bar.
type BollingerPoint struct {
	Date       time.Time `json:"date"`
	UpperBand  *float64  `json:"upper_band"`
	MiddleBand *float64  `json:"middle_band"`
	LowerBand  *float64  `json:"lower_band"`
}

// StochasticPoint holds the %K/%D oscillator values for one bar, in [0, 100].
type StochasticPoint struct {
	Date     time.Time `json:"date"`
	PercentK *float64  `json:"percent_k"`
	PercentD *float64  `json:"percent_d"`
}

// PerformanceSummary aggregates return and risk statistics over a bar series.
// TotalReturn and Volatility are percentages; Volatility is annualized.
type PerformanceSummary struct {
	TotalReturn   float64 `json:"total_return"`
	Volatility    float64 `json:"volatility"`
	HighestClose  float64 `json:"highest_close"`
	LowestClose   float64 `json:"lowest_close"`
	AverageVolume float64 `json:"average_volume"`
}

func fptr(v float64) *float64 { return &v }
