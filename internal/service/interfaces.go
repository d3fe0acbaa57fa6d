package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"urlshortener/internal/domain"
)

type Store interface {
	Get(ctx context.Context, id string) (*domain.Link, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
	Insert(ctx context.Context, link *domain.Link, meta *domain.LinkMetadata) error
	RecordClick(ctx context.Context, id string, visit domain.Visit, at time.Time) error
	GetMetadata(ctx context.Context, id string) (*domain.LinkMetadata, error)
	ListClicks(ctx context.Context, id string, limit int) ([]domain.ClickLogEntry, error)
}

type Cache interface {
	Get(ctx context.Context, id string) (string, bool)
	Set(ctx context.Context, id, longURL string)
}

type IDGenerator interface {
	Fingerprint(longURL string) string
	Candidate(digest string) string
	Extended(digest string) string
}

type RefEncoder interface {
	Encode(id int64) (string, error)
}

type PageFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

type Generator interface {
	Generate(ctx context.Context, longURL, pageText string, n int) ([]string, error)
}

type URLValidator interface {
	ValidateURL(url string) error
}

type AliasValidator interface {
	ValidateAlias(alias string) error
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
