package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stock-analyzer/internal/indicators"
	"stock-analyzer/internal/logger"
	"stock-analyzer/internal/match"
	"stock-analyzer/internal/moves"
	"stock-analyzer/internal/news"
	"stock-analyzer/internal/provider"
	"stock-analyzer/internal/sentiment"
	"stock-analyzer/internal/store"
	"stock-analyzer/internal/trace"
	"stock-analyzer/internal/types"
)

// report is the full analysis output for one symbol.
type report struct {
	Symbol         string                          `json:"symbol"`
	Period         string                          `json:"period"`
	Bars           int                             `json:"bars"`
	Performance    *indicators.PerformanceSummary  `json:"performance,omitempty"`
	MovingAverages []indicators.MovingAveragePoint `json:"moving_averages"`
	RSI            []indicators.RSIPoint           `json:"rsi"`
	MACD           []indicators.MACDPoint          `json:"macd"`
	Bollinger      []indicators.BollingerPoint     `json:"bollinger_bands"`
	Stochastic     []indicators.StochasticPoint    `json:"stochastic"`
	Moves          []types.SignificantMove         `json:"significant_moves"`
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	symbol := flag.String("symbol", "", "ticker symbol (overrides config)")
	period := flag.String("period", "", "history range, e.g. 1mo/6mo/1y (overrides config)")
	flag.Parse()

	_ = godotenv.Load()
	must(logger.Init())
	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize tracer: %v\n", err)
	}

	cfg, err := store.LoadConfig(*configPath)
	must(err)
	if *symbol != "" {
		cfg.Symbol = *symbol
	}
	if *period != "" {
		cfg.Period = *period
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	defer func() { _ = trace.Shutdown(context.Background()) }()

	rep, err := analyze(ctx, cfg)
	if err != nil {
		logger.ErrorWithErr(ctx, "analysis failed", err, "symbol", cfg.Symbol)
		os.Exit(1)
	}

	b, err := json.MarshalIndent(rep, "", "  ")
	must(err)
	fmt.Println(string(b))
}

func analyze(ctx context.Context, cfg *store.Config) (*report, error) {
	prices := provider.NewYahooProvider()

	bars, err := prices.History(ctx, cfg.Symbol, cfg.Period)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	logger.Info(ctx, "price history loaded", "symbol", cfg.Symbol, "bars", len(bars))

	analyzer := buildAnalyzer(cfg)
	matcher := match.New(analyzer)

	var selector moves.NewsSelector
	if cfg.Moves.IncludeNews {
		scraper := news.NewScraper(time.Duration(cfg.News.ScraperTimeout) * time.Second)
		selector = news.NewCascade(matcher, scraper, cfg.News.MaxArticles)
	}

	rep := &report{
		Symbol:         cfg.Symbol,
		Period:         cfg.Period,
		Bars:           len(bars),
		MovingAverages: indicators.MovingAverages(bars),
		RSI:            indicators.RSI(bars, cfg.Indicators.RSIPeriod),
		MACD:           indicators.MACD(bars, cfg.Indicators.MACDFast, cfg.Indicators.MACDSlow, cfg.Indicators.MACDSignal),
		Bollinger:      indicators.BollingerBands(bars, cfg.Indicators.BBWindow, cfg.Indicators.BBStdDev),
		Stochastic:     indicators.Stochastic(bars, cfg.Indicators.StochKPeriod, cfg.Indicators.StochDPeriod),
		Moves:          moves.DetectWithNews(ctx, cfg.Symbol, bars, cfg.Moves.ThresholdPct, selector),
	}
	if perf, ok := indicators.Performance(bars); ok {
		rep.Performance = &perf
	}
	return rep, nil
}

func buildAnalyzer(cfg *store.Config) *sentiment.Analyzer {
	if !cfg.Sentiment.ML.Enabled {
		return sentiment.NewAnalyzer()
	}
	classifier := sentiment.NewLLMClassifier(cfg.Sentiment.ML.Provider, cfg.Sentiment.ML.Model)
	return sentiment.NewAnalyzerWithML(sentiment.NewMLCache(classifier))
}
