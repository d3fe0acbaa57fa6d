package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"urlshortener/internal/config"
	"urlshortener/internal/domain"
	"urlshortener/internal/validation"
)

var errNoGenerator = errors.New("generator not configured")

type SuggestionService struct {
	fetcher      PageFetcher
	generator    Generator
	store        Store
	aliases      AliasValidator
	recorder     BusinessRecorder
	logger       *slog.Logger
	maxAttempts  int
	maxPageChars int
	now          func() time.Time
}

// NewSuggestionService wires the suggestion loop. generator may be nil, in
// which case every request fails with ErrGeneration.
func NewSuggestionService(
	fetcher PageFetcher,
	generator Generator,
	store Store,
	aliases AliasValidator,
	recorder BusinessRecorder,
	logger *slog.Logger,
	cfg *config.SuggestConfig,
) *SuggestionService {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &SuggestionService{
		fetcher:      fetcher,
		generator:    generator,
		store:        store,
		aliases:      aliases,
		recorder:     recorder,
		logger:       logger,
		maxAttempts:  maxAttempts,
		maxPageChars: cfg.MaxPageChars,
		now:          time.Now,
	}
}

// Suggest collects count unused aliases for longURL. Each round asks the
// generator for twice the number still needed and drops candidates that are
// invalid, repeated or already taken.
func (s *SuggestionService) Suggest(ctx context.Context, longURL string, count int) (*domain.SuggestResponse, error) {
	if err := validation.ValidateCount(count); err != nil {
		return nil, err
	}
	if s.generator == nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, errNoGenerator)
	}

	start := s.now()

	text, err := s.fetcher.FetchText(ctx, longURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}
	text = truncateRunes(text, s.maxPageChars)

	collected := make([]string, 0, count)
	seen := make(map[string]bool)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		needed := count - len(collected)

		names, err := s.generator.Generate(ctx, longURL, text, 2*needed)
		s.recorder.RecordBusiness("suggestion_rounds", 1, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: no candidates", ErrGeneration)
		}

		batch := s.fresh(names, seen)
		if len(batch) > 0 {
			taken, err := s.store.ExistingIDs(ctx, batch)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
			}
			collected = appendUntaken(collected, batch, taken)
		}

		s.logger.Debug("suggestion round",
			slog.Int("attempt", attempt),
			slog.Int("candidates", len(names)),
			slog.Int("collected", len(collected)))

		if len(collected) >= count {
			return &domain.SuggestResponse{
				SuggestedAliases: collected[:count],
				TimeTaken:        s.now().Sub(start).Seconds(),
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: exhausted %d attempts", ErrGeneration, s.maxAttempts)
}

// fresh returns the valid candidates not seen in earlier rounds and marks
// them as seen.
func (s *SuggestionService) fresh(names []string, seen map[string]bool) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		if s.aliases.ValidateAlias(n) != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func appendUntaken(dst, batch, taken []string) []string {
	skip := make(map[string]bool, len(taken))
	for _, t := range taken {
		skip[t] = true
	}
	for _, n := range batch {
		if !skip[n] {
			dst = append(dst, n)
		}
	}
	return dst
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
