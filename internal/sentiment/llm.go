package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// LLMClassifier scores headlines with a hosted language model. It implements
// MLClassifier and is only ever reached through the MLCache, so request
// latency never touches the synchronous analysis path.
type LLMClassifier struct {
	provider string // "OPENAI" or "CLAUDE"
	model    string
	client   *http.Client
}

// NewLLMClassifier creates a classifier for the given provider and model.
func NewLLMClassifier(provider, model string) *LLMClassifier {
	return &LLMClassifier{
		provider: strings.ToUpper(provider),
		model:    model,
		client:   http.DefaultClient,
	}
}

const classifierPrompt = `Rate the financial sentiment of this stock market headline on a scale from -1.0 (very negative for the company) to 1.0 (very positive).

Headline: %s

Respond ONLY with valid JSON: {"score": <float>}`

// Score returns the model's sentiment score for the headline.
func (c *LLMClassifier) Score(ctx context.Context, text string) (float64, error) {
	prompt := fmt.Sprintf(classifierPrompt, text)

	var raw string
	var err error
	switch c.provider {
	case "OPENAI":
		raw, err = c.completeOpenAI(ctx, prompt)
	case "CLAUDE":
		raw, err = c.completeClaude(ctx, prompt)
	default:
		return 0, fmt.Errorf("unsupported LLM provider: %s", c.provider)
	}
	if err != nil {
		return 0, err
	}

	var result struct {
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &result); err != nil {
		return 0, fmt.Errorf("invalid JSON response: %w", err)
	}
	return result.Score, nil
}

func (c *LLMClassifier) completeOpenAI(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY missing")
	}

	body := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are a financial news sentiment rater. Respond ONLY with valid JSON."},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.0,
		"max_tokens":  50,
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(bb))
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("openai http %d", resp.StatusCode)
	}

	var r struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if len(r.Choices) == 0 {
		return "", errors.New("no choices")
	}
	return r.Choices[0].Message.Content, nil
}

func (c *LLMClassifier) completeClaude(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return "", errors.New("ANTHROPIC_API_KEY missing")
	}

	body := map[string]any{
		"model":      c.model,
		"max_tokens": 50,
		"system":     "You are a financial news sentiment rater. Respond ONLY with valid JSON.",
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	bb, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewReader(bb))
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("claude http %d", resp.StatusCode)
	}

	var r struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	if len(r.Content) == 0 {
		return "", errors.New("no content")
	}
	return r.Content[0].Text, nil
}
