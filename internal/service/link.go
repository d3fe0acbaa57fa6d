package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"urlshortener/internal/config"
	"urlshortener/internal/domain"
	"urlshortener/internal/repository"
)

const (
	msgAliasTaken     = "Alias is already taken"
	msgAliasAvailable = "Alias is available"
)

type LinkService struct {
	store             Store
	cache             Cache
	ids               IDGenerator
	refs              RefEncoder
	urls              URLValidator
	aliases           AliasValidator
	recorder          BusinessRecorder
	logger            *slog.Logger
	baseURL           string
	accountingTimeout time.Duration
	now               func() time.Time
}

func NewLinkService(
	store Store,
	cache Cache,
	ids IDGenerator,
	refs RefEncoder,
	urls URLValidator,
	aliases AliasValidator,
	recorder BusinessRecorder,
	logger *slog.Logger,
	cfg *config.AppConfig,
) *LinkService {
	return &LinkService{
		store:             store,
		cache:             cache,
		ids:               ids,
		refs:              refs,
		urls:              urls,
		aliases:           aliases,
		recorder:          recorder,
		logger:            logger,
		baseURL:           cfg.BaseURL,
		accountingTimeout: cfg.AccountingTimeout,
		now:               time.Now,
	}
}

// Create stores a new link. A non-empty customName is used verbatim as the
// identifier, otherwise one is derived from the URL fingerprint. Both inputs
// are validated before anything is hashed or stored.
func (s *LinkService) Create(ctx context.Context, longURL string, customName *string) (*domain.LinkResponse, error) {
	if err := s.urls.ValidateURL(longURL); err != nil {
		return nil, err
	}

	kind := "generated"
	var id, displayName string

	if customName != nil && *customName != "" {
		if err := s.aliases.ValidateAlias(*customName); err != nil {
			return nil, err
		}

		kind = "custom"
		id, displayName = *customName, *customName

		exists, err := s.store.Exists(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		if exists {
			s.recordConflict(kind)
			return nil, ErrAliasConflict
		}
	} else {
		var err error
		id, err = s.allocate(ctx, longURL)
		if err != nil {
			if errors.Is(err, ErrAliasConflict) {
				s.recordConflict(kind)
			}
			return nil, err
		}
	}

	now := s.now().UTC()
	link := &domain.Link{
		ID:        id,
		LongURL:   longURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	meta := &domain.LinkMetadata{
		LinkID:      id,
		DisplayName: displayName,
		LongURL:     longURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, link, meta); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			s.recordConflict(kind)
			return nil, ErrAliasConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	s.cache.Set(ctx, id, longURL)
	s.recorder.RecordBusiness("links_created", 1, map[string]string{"kind": kind})

	return s.linkResponse(meta), nil
}

// allocate returns the 8-character candidate, or one longer prefix of the
// same digest when the candidate is taken. A second collision is reported
// rather than retried.
func (s *LinkService) allocate(ctx context.Context, longURL string) (string, error) {
	digest := s.ids.Fingerprint(longURL)

	id := s.ids.Candidate(digest)
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !exists {
		return id, nil
	}

	id = s.ids.Extended(digest)
	exists, err = s.store.Exists(ctx, id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if exists {
		return "", fmt.Errorf("%w: identifier space collision", ErrAliasConflict)
	}
	return id, nil
}

// Resolve returns the long URL for id and records the visit. Once the link
// is known the URL is returned even if the click could not be recorded.
func (s *LinkService) Resolve(ctx context.Context, id string, visit domain.Visit) (string, error) {
	longURL, ok := s.cache.Get(ctx, id)
	if !ok {
		link, err := s.store.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.recorder.RecordBusiness("redirect_not_found", 1, nil)
				return "", ErrNotFound
			}
			return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		longURL = link.LongURL
		s.cache.Set(ctx, id, longURL)
	}

	s.account(ctx, id, visit)
	s.recorder.RecordBusiness("redirects", 1, nil)

	return longURL, nil
}

func (s *LinkService) account(ctx context.Context, id string, visit domain.Visit) {
	// The click transaction must not be cut short by the client hanging up.
	ctx = context.WithoutCancel(ctx)
	if s.accountingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.accountingTimeout)
		defer cancel()
	}

	err := s.store.RecordClick(ctx, id, visit, s.now().UTC())
	if err == nil {
		return
	}
	if errors.Is(err, repository.ErrMetadataMissing) {
		err = fmt.Errorf("%w: %w", ErrInconsistent, err)
	}

	s.logger.Error("accounting failed",
		slog.String("id", id),
		slog.String("error", err.Error()))
	s.recorder.RecordBusiness("accounting_failures", 1, nil)
}

func (s *LinkService) Metadata(ctx context.Context, id string) (*domain.LinkResponse, error) {
	meta, err := s.store.GetMetadata(ctx, id)
	if err == nil {
		return s.linkResponse(meta), nil
	}
	if !errors.Is(err, repository.ErrMetadataMissing) {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	exists, existsErr := s.store.Exists(ctx, id)
	if existsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, existsErr)
	}
	if !exists {
		return nil, ErrNotFound
	}

	s.logger.Error("link without metadata", slog.String("id", id))
	return nil, fmt.Errorf("%w: %w", ErrInconsistent, err)
}

// CheckAlias reports whether alias is free. The alias is expected to be
// validated by the caller.
func (s *LinkService) CheckAlias(ctx context.Context, alias string) (*domain.AliasAvailabilityResponse, error) {
	exists, err := s.store.Exists(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	resp := &domain.AliasAvailabilityResponse{Alias: alias, IsAvailable: !exists, Message: msgAliasAvailable}
	if exists {
		resp.Message = msgAliasTaken
	}
	return resp, nil
}

// Clicks lists the most recent click log entries for id, newest first.
func (s *LinkService) Clicks(ctx context.Context, id string, limit int) (*domain.ClickLogResponse, error) {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	entries, err := s.store.ListClicks(ctx, id, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	clicks := make([]domain.ClickResponse, len(entries))
	for i, e := range entries {
		ref, err := s.refs.Encode(e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to encode click ref: %w", err)
		}
		clicks[i] = domain.ClickResponse{
			Ref:       ref,
			ClientIP:  e.ClientIP,
			UserAgent: e.UserAgent,
			Timestamp: e.ClickedAt.UTC().Format(time.RFC3339Nano),
		}
	}

	return &domain.ClickLogResponse{LinkID: id, Clicks: clicks}, nil
}

func (s *LinkService) linkResponse(meta *domain.LinkMetadata) *domain.LinkResponse {
	var customName *string
	if meta.DisplayName != "" {
		name := meta.DisplayName
		customName = &name
	}

	return &domain.LinkResponse{
		ShortenedURL: meta.LinkID,
		ShortURL:     fmt.Sprintf("%s/%s", s.baseURL, meta.LinkID),
		LongURL:      meta.LongURL,
		Metadata: domain.LinkMetadataResponse{
			CustomName: customName,
			Clicks:     meta.Clicks,
			LastIP:     meta.LastIP,
		},
	}
}

func (s *LinkService) recordConflict(kind string) {
	s.recorder.RecordBusiness("alias_conflicts", 1, map[string]string{"kind": kind})
}
