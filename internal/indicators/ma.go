package indicators

import (
	"math"

	"stock-analyzer/internal/types"
)

func extractCloses(bars []types.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// smaSeries returns the rolling simple moving average of values over period.
// Entries before index period-1 are NaN.
func smaSeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// emaSeries returns the exponential moving average of values over period,
// seeded with the simple average of the first period values. Entries before
// index period-1 are NaN.
func emaSeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if len(values) < period || period <= 0 {
		return out
	}
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	seed /= float64(period)
	out[period-1] = seed

	k := 2.0 / float64(period+1)
	prev := seed
	for i := period; i < len(values); i++ {
		prev = (values[i]-prev)*k + prev
		out[i] = prev
	}
	return out
}

// rollingStdDev returns the population standard deviation of values over a
// trailing window of length period. Entries before index period-1 are NaN.
func rollingStdDev(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	for i := period - 1; i < len(values); i++ {
		mean := 0.0
		for j := i - period + 1; j <= i; j++ {
			mean += values[j]
		}
		mean /= float64(period)
		ss := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := values[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(period))
	}
	return out
}

// MovingAverages computes the SMA-20/50/200 bundle for every bar.
func MovingAverages(bars []types.PriceBar) []MovingAveragePoint {
	closes := extractCloses(bars)
	sma20 := smaSeries(closes, 20)
	sma50 := smaSeries(closes, 50)
	sma200 := smaSeries(closes, 200)

	points := make([]MovingAveragePoint, len(bars))
	for i, b := range bars {
		p := MovingAveragePoint{Date: b.Date}
		if !math.IsNaN(sma20[i]) {
			p.SMA20 = fptr(sma20[i])
		}
		if !math.IsNaN(sma50[i]) {
			p.SMA50 = fptr(sma50[i])
		}
		if !math.IsNaN(sma200[i]) {
			p.SMA200 = fptr(sma200[i])
		}
		points[i] = p
	}
	return points
}

// BollingerBands computes the middle (SMA), upper and lower bands for every
// bar using a population standard deviation over the trailing window.
func BollingerBands(bars []types.PriceBar, period int, multiplier float64) []BollingerPoint {
	closes := extractCloses(bars)
	middle := smaSeries(closes, period)
	sd := rollingStdDev(closes, period)

	points := make([]BollingerPoint, len(bars))
	for i, b := range bars {
		p := BollingerPoint{Date: b.Date}
		if !math.IsNaN(middle[i]) && !math.IsNaN(sd[i]) {
			p.MiddleBand = fptr(middle[i])
			p.UpperBand = fptr(middle[i] + multiplier*sd[i])
			p.LowerBand = fptr(middle[i] - multiplier*sd[i])
		}
		points[i] = p
	}
	return points
}
