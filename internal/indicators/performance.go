package indicators

import (
	"math"

	"stock-analyzer/internal/types"
)

// tradingDaysPerYear is the annualization factor for daily return volatility.
const tradingDaysPerYear = 252

// Performance summarizes total return, annualized volatility and price/volume
// extremes over a bar series. The second return value is false when fewer
// than two bars are supplied; no partial statistics are computed.
func Performance(bars []types.PriceBar) (PerformanceSummary, bool) {
	if len(bars) < 2 || bars[0].Close <= 0 {
		return PerformanceSummary{}, false
	}

	first := bars[0].Close
	last := bars[len(bars)-1].Close

	highest := bars[0].Close
	lowest := bars[0].Close
	var volumeSum float64
	for _, b := range bars {
		if b.Close > highest {
			highest = b.Close
		}
		if b.Close < lowest {
			lowest = b.Close
		}
		volumeSum += float64(b.Volume)
	}

	returns := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		if bars[i-1].Close == 0 {
			continue
		}
		returns = append(returns, (bars[i].Close-bars[i-1].Close)/bars[i-1].Close)
	}

	return PerformanceSummary{
		TotalReturn:   (last - first) / first * 100.0,
		Volatility:    populationStdDev(returns) * math.Sqrt(tradingDaysPerYear) * 100.0,
		HighestClose:  highest,
		LowestClose:   lowest,
		AverageVolume: volumeSum / float64(len(bars)),
	}, true
}

func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	ss := 0.0
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}
