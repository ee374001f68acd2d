package indicators

import (
	"math"

	"stock-analyzer/internal/types"
)

// RSI computes the Wilder-smoothed Relative Strength Index for every bar.
// The first period points are nil; values are always in [0, 100].
func RSI(bars []types.PriceBar, period int) []RSIPoint {
	points := make([]RSIPoint, len(bars))
	for i, b := range bars {
		points[i] = RSIPoint{Date: b.Date}
	}
	if period <= 0 || len(bars) <= period {
		return points
	}

	closes := extractCloses(bars)

	// Seed averages from the first `period` changes.
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	points[period].RSI = fptr(rsiValue(avgGain, avgLoss))

	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		points[i].RSI = fptr(rsiValue(avgGain, avgLoss))
	}
	return points
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain > 0 {
			return 100.0
		}
		return 50.0 // flat window reads as neutral
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// MACD computes the MACD line (fast EMA - slow EMA), its signal line (EMA of
// the defined MACD values) and the histogram for every bar. The MACD line is
// defined from index slow-1, the signal line from index slow-1+signalPeriod-1.
func MACD(bars []types.PriceBar, fast, slow, signalPeriod int) []MACDPoint {
	points := make([]MACDPoint, len(bars))
	for i, b := range bars {
		points[i] = MACDPoint{Date: b.Date}
	}
	if len(bars) < slow || fast <= 0 || slow <= fast || signalPeriod <= 0 {
		return points
	}

	closes := extractCloses(bars)
	fastEMA := emaSeries(closes, fast)
	slowEMA := emaSeries(closes, slow)

	macd := make([]float64, 0, len(bars)-slow+1)
	for i := slow - 1; i < len(bars); i++ {
		v := fastEMA[i] - slowEMA[i]
		macd = append(macd, v)
		points[i].MACDLine = fptr(v)
	}

	signal := emaSeries(macd, signalPeriod)
	for j, v := range signal {
		if math.IsNaN(v) {
			continue
		}
		i := slow - 1 + j
		points[i].SignalLine = fptr(v)
		points[i].Histogram = fptr(macd[j] - v)
	}
	return points
}

// Stochastic computes the %K/%D oscillator for every bar. %K compares the
// close to the trailing kPeriod high/low range; %D is the dPeriod SMA of %K.
// When the range is exactly zero the previous valid %K is carried forward,
// or 50 if there is none. Values are clamped to [0, 100].
func Stochastic(bars []types.PriceBar, kPeriod, dPeriod int) []StochasticPoint {
	points := make([]StochasticPoint, len(bars))
	for i, b := range bars {
		points[i] = StochasticPoint{Date: b.Date}
	}
	if kPeriod <= 0 || dPeriod <= 0 || len(bars) < kPeriod {
		return points
	}

	k := make([]float64, len(bars))
	for i := range k {
		k[i] = math.NaN()
	}
	prevK := math.NaN()
	for i := kPeriod - 1; i < len(bars); i++ {
		highest := math.Inf(-1)
		lowest := math.Inf(1)
		for j := i - kPeriod + 1; j <= i; j++ {
			if bars[j].High > highest {
				highest = bars[j].High
			}
			if bars[j].Low < lowest {
				lowest = bars[j].Low
			}
		}
		var v float64
		if highest == lowest {
			// Fully flat window: hold the previous value, midpoint otherwise.
			if math.IsNaN(prevK) {
				v = 50.0
			} else {
				v = prevK
			}
		} else {
			v = 100.0 * (bars[i].Close - lowest) / (highest - lowest)
		}
		v = clamp(v, 0, 100)
		k[i] = v
		prevK = v
		points[i].PercentK = fptr(v)
	}

	for i := kPeriod - 1 + dPeriod - 1; i < len(bars); i++ {
		sum := 0.0
		for j := i - dPeriod + 1; j <= i; j++ {
			sum += k[j]
		}
		points[i].PercentD = fptr(clamp(sum/float64(dPeriod), 0, 100))
	}
	return points
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
