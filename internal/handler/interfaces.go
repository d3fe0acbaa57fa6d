package handler

//go:generate go tool mockery

import (
	"context"

	"urlshortener/internal/domain"
)

type LinkService interface {
	Create(ctx context.Context, longURL string, customName *string) (*domain.LinkResponse, error)
	Resolve(ctx context.Context, id string, visit domain.Visit) (string, error)
	Metadata(ctx context.Context, id string) (*domain.LinkResponse, error)
	CheckAlias(ctx context.Context, alias string) (*domain.AliasAvailabilityResponse, error)
	Clicks(ctx context.Context, id string, limit int) (*domain.ClickLogResponse, error)
}

type SuggestionService interface {
	Suggest(ctx context.Context, longURL string, count int) (*domain.SuggestResponse, error)
}

type URLValidator interface {
	ValidateURL(url string) error
}

type AliasValidator interface {
	ValidateAlias(alias string) error
}

type Prober interface {
	Probe(ctx context.Context, url string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
