package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stock-analyzer/internal/logger"
	"stock-analyzer/internal/types"
)

const scraperUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Scraper implements interfaces.NewsProvider by scraping public finance news
// pages. It is a collaborator of the analysis engine, not part of it: the
// cascade only ever sees already-fetched headlines.
type Scraper struct {
	sources []Source
	timeout time.Duration
}

// Source describes one scrapeable news site.
type Source struct {
	Name       string
	BaseURL    string
	SearchPath string // company search, "{symbol}" placeholder
	MarketPath string // general market news section
	Selectors  Selectors
	RateLimit  time.Duration
}

// Selectors are the CSS selectors for extracting headline data.
type Selectors struct {
	Container   string
	Title       string
	URL         string
	PublishedAt string
}

// NewScraper creates a scraper over the default sources.
func NewScraper(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scraper{sources: defaultSources(), timeout: timeout}
}

func defaultSources() []Source {
	return []Source{
		{
			Name:       "YahooFinance",
			BaseURL:    "https://finance.yahoo.com",
			SearchPath: "/quote/{symbol}/news",
			MarketPath: "/news",
			Selectors: Selectors{
				Container:   "li.js-stream-content, div.content",
				Title:       "h3",
				URL:         "a",
				PublishedAt: "time",
			},
			RateLimit: 2 * time.Second,
		},
		{
			Name:       "MarketWatch",
			BaseURL:    "https://www.marketwatch.com",
			SearchPath: "/investing/stock/{symbol}",
			MarketPath: "/markets",
			Selectors: Selectors{
				Container:   "div.article__content",
				Title:       "h3.article__headline a",
				URL:         "h3.article__headline a",
				PublishedAt: "span.article__timestamp",
			},
			RateLimit: 2 * time.Second,
		},
	}
}

// CompanyNews scrapes headlines for a symbol, keeping only those published
// inside [from, to) when the source exposes a parseable timestamp.
func (s *Scraper) CompanyNews(ctx context.Context, symbol string, from, to time.Time, limit int) ([]types.Headline, error) {
	var all []types.Headline
	for _, src := range s.sources {
		page := src.BaseURL + strings.ReplaceAll(src.SearchPath, "{symbol}", strings.ToUpper(symbol))
		headlines, err := s.scrapePage(ctx, src, page, limit)
		if err != nil {
			logger.Warn(ctx, "company news scrape failed", "source", src.Name, "symbol", symbol, "error", err)
			continue
		}
		for _, h := range headlines {
			if !h.PublishedAt.IsZero() && (h.PublishedAt.Before(from) || !h.PublishedAt.Before(to)) {
				continue
			}
			all = append(all, h)
			if len(all) >= limit {
				return all, nil
			}
		}
		time.Sleep(src.RateLimit)
	}
	return all, nil
}

// MarketNews scrapes general market headlines for the cascade fallback.
func (s *Scraper) MarketNews(ctx context.Context, limit int) ([]types.Headline, error) {
	var all []types.Headline
	for _, src := range s.sources {
		headlines, err := s.scrapePage(ctx, src, src.BaseURL+src.MarketPath, limit-len(all))
		if err != nil {
			logger.Warn(ctx, "market news scrape failed", "source", src.Name, "error", err)
			continue
		}
		all = append(all, headlines...)
		if len(all) >= limit {
			return all[:limit], nil
		}
		time.Sleep(src.RateLimit)
	}
	return all, nil
}

func (s *Scraper) scrapePage(ctx context.Context, src Source, page string, limit int) ([]types.Headline, error) {
	if limit <= 0 {
		return nil, nil
	}

	var headlines []types.Headline

	c := colly.NewCollector(
		colly.AllowedDomains(hostOf(src.BaseURL)),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(s.timeout)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", scraperUserAgent)
	})

	c.OnHTML(src.Selectors.Container, func(e *colly.HTMLElement) {
		if len(headlines) >= limit {
			return
		}
		title := strings.TrimSpace(e.ChildText(src.Selectors.Title))
		if title == "" {
			return
		}
		link := e.ChildAttr(src.Selectors.URL, "href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = src.BaseURL + link
		}
		headlines = append(headlines, types.Headline{
			Text:        title,
			Source:      src.Name,
			URL:         link,
			PublishedAt: publishedAt(e.DOM, src.Selectors.PublishedAt),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.Warn(ctx, "scrape request error", "source", src.Name, "url", r.Request.URL.String(), "error", err)
	})

	if err := c.Visit(page); err != nil {
		return nil, fmt.Errorf("visit %s: %w", page, err)
	}
	c.Wait()
	return headlines, nil
}

// publishedAt pulls a timestamp out of the article node, preferring machine-
// readable datetime attributes over display text.
func publishedAt(sel *goquery.Selection, selector string) time.Time {
	node := sel.Find(selector).First()
	raw, ok := node.Attr("datetime")
	if !ok {
		raw = strings.TrimSpace(node.Text())
	}
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.000Z", "Jan. 2, 2006", "Jan 2, 2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func hostOf(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
