package suggest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"urlshortener/internal/config"
)

var ErrMissingAPIKey = errors.New("missing generation api key")

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggested_names": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"suggested_names"},
}

// Gemini produces alias candidates with the Gemini API. Outbound calls are
// paced by a token bucket so bursts of suggest requests stay inside quota.
type Gemini struct {
	models  *genai.Models
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

type Option func(*genai.ClientConfig)

// WithEndpoint points the client at a different API host.
func WithEndpoint(baseURL string) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPOptions.BaseURL = baseURL
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(cc *genai.ClientConfig) {
		cc.HTTPClient = client
	}
}

func NewGemini(ctx context.Context, cfg *config.SuggestConfig, opts ...Option) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cc)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Gemini{
		models:  client.Models,
		model:   cfg.Model,
		limiter: rate.NewLimiter(limit, burst),
		timeout: cfg.Timeout,
	}, nil
}

// Generate asks the model for n names for longURL given the page text.
func (g *Gemini) Generate(ctx context.Context, longURL, pageText string, n int) ([]string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for generation slot: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(Prompt(longURL, pageText, n)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return ParseNames(resp.Text())
}
