// Package llm talks to an OpenAI-compatible chat completions endpoint to read
// transactions out of free text.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/MrJamesThe3rd/texttx/internal/metrics"
	"github.com/MrJamesThe3rd/texttx/internal/textnorm"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 20 * time.Second

	temperature        = 0.3
	extractionMaxToken = 1000
	spellingMaxTokens  = 50
	rateBurst          = 2
)

var (
	ErrMissingAPIKey = errors.New("provider API key is required")
	ErrEmptyResponse = errors.New("provider returned no content")
)

type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	RateLimit float64
}

// Client calls the provider once per request. It never retries; callers treat
// any error as a miss.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
	limiter    *rate.Limiter
	schema     *jsonschema.Schema
	tracer     trace.Tracer
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		limiter:    rate.NewLimiter(limit, rateBurst),
		schema:     schema,
		tracer:     otel.Tracer("github.com/MrJamesThe3rd/texttx/internal/llm"),
	}, nil
}

// Extract asks the provider for a structured reading of req.OriginalText.
func (c *Client) Extract(ctx context.Context, req ExtractionRequest) (*Extraction, error) {
	ctx, span := c.tracer.Start(ctx, "llm.Extract", trace.WithAttributes(
		attribute.Int("history.size", len(req.History)),
		attribute.Int("categories.size", len(req.Categories)),
	))
	defer span.End()

	content, err := c.complete(ctx, "extract", extractionMaxToken, extractionSystemPrompt, buildExtractionPrompt(req))
	if err != nil {
		return nil, traceErr(span, err)
	}

	payload := []byte(cleanMarkdownWrapper(content))

	if err := validate(c.schema, payload); err != nil {
		return nil, traceErr(span, err)
	}

	var ext Extraction
	if err := json.Unmarshal(payload, &ext); err != nil {
		return nil, traceErr(span, fmt.Errorf("decoding extraction: %w", err))
	}

	span.SetAttributes(attribute.Float64("extraction.confidence", ext.Confidence))

	return &ext, nil
}

// CorrectSpelling asks the provider to fix typos in a short item label and
// returns it title-cased.
func (c *Client) CorrectSpelling(ctx context.Context, text string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "llm.CorrectSpelling")
	defer span.End()

	content, err := c.complete(ctx, "spelling", spellingMaxTokens, spellingSystemPrompt, buildSpellingPrompt(text))
	if err != nil {
		return "", traceErr(span, err)
	}

	corrected := strings.TrimSpace(strings.NewReplacer(`"`, "", "\n", "").Replace(content))
	if corrected == "" || strings.EqualFold(corrected, "null") {
		return "", traceErr(span, ErrEmptyResponse)
	}

	return textnorm.TitleCase(corrected), nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, operation string, maxTokens int, system, prompt string) (content string, err error) {
	start := time.Now()

	defer func() {
		status := "ok"
		if err != nil {
			status = "error"
		}

		metrics.ProviderRequests.WithLabelValues(operation, status).Inc()
		metrics.ProviderLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for rate limiter: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider error (status %d): %s", resp.StatusCode, string(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	return parsed.Choices[0].Message.Content, nil
}

// cleanMarkdownWrapper strips a ```json fenced block around the payload.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	return strings.TrimSpace(content)
}

func traceErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}
