package types

import "time"

// PriceBar is one OHLCV record for one trading day. Bars in a series are
// unique and strictly increasing by date.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Headline is an externally supplied news item, read-only to the engine.
type Headline struct {
	Text        string    `json:"text"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	URL         string    `json:"url,omitempty"`
}

// Direction of a significant price move.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// SignificantMove is a trading day whose percentage change exceeded the
// detector threshold, optionally with sentiment-consistent news attached.
type SignificantMove struct {
	Date          time.Time  `json:"date"`
	PercentChange float64    `json:"percent_change"`
	ClosePrice    float64    `json:"close_price"`
	Volume        int64      `json:"volume"`
	Direction     Direction  `json:"direction"`
	RelatedNews   []Headline `json:"related_news,omitempty"`
}

// PortfolioPoint is one day of an already-aggregated portfolio series,
// expressed as cumulative percent change from the start of the period.
type PortfolioPoint struct {
	Date              time.Time `json:"date"`
	CumulativePercent float64   `json:"cumulative_percent"`
}

// Sentiment is the polarity label of a classified headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// SentimentResult is the outcome of classifying one headline. Score is in [-1, 1].
type SentimentResult struct {
	Label Sentiment `json:"label"`
	Score float64   `json:"score"`
}

// MatchResult pairs the direction-consistency verdict for a headline against
// a realized price change with a 0-100 confidence score.
type MatchResult struct {
	Matches    bool `json:"matches"`
	MatchScore int  `json:"match_score"`
}
