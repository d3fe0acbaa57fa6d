package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"urlshortener/internal/config"
	"urlshortener/internal/domain"
	"urlshortener/internal/repository"
	"urlshortener/internal/service"
	"urlshortener/internal/service/mocks"
	"urlshortener/internal/validation"
)

const digest = "3f9a1c0b7d2e4f6a8b1c3d5e7f9a0b2c"

type linkDeps struct {
	store    *mocks.MockStore
	cache    *mocks.MockCache
	ids      *mocks.MockIDGenerator
	refs     *mocks.MockRefEncoder
	recorder *mocks.MockBusinessRecorder
}

func newLinkService(t *testing.T) (*service.LinkService, linkDeps) {
	d := linkDeps{
		store:    mocks.NewMockStore(t),
		cache:    mocks.NewMockCache(t),
		ids:      mocks.NewMockIDGenerator(t),
		refs:     mocks.NewMockRefEncoder(t),
		recorder: mocks.NewMockBusinessRecorder(t),
	}
	d.recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewLinkService(d.store, d.cache, d.ids, d.refs,
		validation.NewURLValidator(2048, false), validation.NewAliasValidator(), d.recorder, logger, &config.AppConfig{
		BaseURL:           "http://sho.rt",
		AccountingTimeout: time.Second,
	})
	return svc, d
}

func strPtr(s string) *string { return &s }

func TestLinkService_Create_Generated(t *testing.T) {
	svc, d := newLinkService(t)
	ctx := context.Background()

	d.ids.EXPECT().Fingerprint("https://go.dev/blog").Return(digest)
	d.ids.EXPECT().Candidate(digest).Return(digest[:8])
	d.store.EXPECT().Exists(mock.Anything, digest[:8]).Return(false, nil)
	d.store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, link *domain.Link, meta *domain.LinkMetadata) {
			assert.Equal(t, digest[:8], link.ID)
			assert.Equal(t, "https://go.dev/blog", link.LongURL)
			assert.Equal(t, link.ID, meta.LinkID)
			assert.Empty(t, meta.DisplayName)
			assert.Equal(t, link.LongURL, meta.LongURL)
			assert.Zero(t, meta.Clicks)
			assert.Nil(t, meta.LastIP)
		}).
		Return(nil)
	d.cache.EXPECT().Set(mock.Anything, digest[:8], "https://go.dev/blog").Return()

	resp, err := svc.Create(ctx, "https://go.dev/blog", nil)
	require.NoError(t, err)
	assert.Equal(t, digest[:8], resp.ShortenedURL)
	assert.Equal(t, "http://sho.rt/"+digest[:8], resp.ShortURL)
	assert.Equal(t, "https://go.dev/blog", resp.LongURL)
	assert.Nil(t, resp.Metadata.CustomName)
	assert.Zero(t, resp.Metadata.Clicks)
}

func TestLinkService_Create_EmptyCustomNameIsGenerated(t *testing.T) {
	svc, d := newLinkService(t)

	d.ids.EXPECT().Fingerprint(mock.Anything).Return(digest)
	d.ids.EXPECT().Candidate(digest).Return(digest[:8])
	d.store.EXPECT().Exists(mock.Anything, digest[:8]).Return(false, nil)
	d.store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Set(mock.Anything, digest[:8], mock.Anything).Return()

	resp, err := svc.Create(context.Background(), "https://go.dev", strPtr(""))
	require.NoError(t, err)
	assert.Equal(t, digest[:8], resp.ShortenedURL)
}

func TestLinkService_Create_CollisionExtends(t *testing.T) {
	svc, d := newLinkService(t)

	d.ids.EXPECT().Fingerprint(mock.Anything).Return(digest)
	d.ids.EXPECT().Candidate(digest).Return(digest[:8])
	d.ids.EXPECT().Extended(digest).Return(digest[:11]).Once()
	d.store.EXPECT().Exists(mock.Anything, digest[:8]).Return(true, nil)
	d.store.EXPECT().Exists(mock.Anything, digest[:11]).Return(false, nil)
	d.store.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(l *domain.Link) bool {
		return l.ID == digest[:11]
	}), mock.Anything).Return(nil)
	d.cache.EXPECT().Set(mock.Anything, digest[:11], mock.Anything).Return()

	resp, err := svc.Create(context.Background(), "https://go.dev", nil)
	require.NoError(t, err)
	assert.Equal(t, digest[:11], resp.ShortenedURL)
	assert.Equal(t, digest[:8], resp.ShortenedURL[:8])
}

func TestLinkService_Create_ExtendedCollision(t *testing.T) {
	svc, d := newLinkService(t)

	d.ids.EXPECT().Fingerprint(mock.Anything).Return(digest)
	d.ids.EXPECT().Candidate(digest).Return(digest[:8])
	d.ids.EXPECT().Extended(digest).Return(digest[:9]).Once()
	d.store.EXPECT().Exists(mock.Anything, digest[:8]).Return(true, nil)
	d.store.EXPECT().Exists(mock.Anything, digest[:9]).Return(true, nil)

	_, err := svc.Create(context.Background(), "https://go.dev", nil)
	require.ErrorIs(t, err, service.ErrAliasConflict)
	assert.Contains(t, err.Error(), "identifier space collision")
}

func TestLinkService_Create_Custom(t *testing.T) {
	svc, d := newLinkService(t)

	d.store.EXPECT().Exists(mock.Anything, "go-blog").Return(false, nil)
	d.store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, link *domain.Link, meta *domain.LinkMetadata) {
			assert.Equal(t, "go-blog", link.ID)
			assert.Equal(t, "go-blog", meta.DisplayName)
		}).
		Return(nil)
	d.cache.EXPECT().Set(mock.Anything, "go-blog", "https://go.dev/blog").Return()

	resp, err := svc.Create(context.Background(), "https://go.dev/blog", strPtr("go-blog"))
	require.NoError(t, err)
	assert.Equal(t, "go-blog", resp.ShortenedURL)
	require.NotNil(t, resp.Metadata.CustomName)
	assert.Equal(t, "go-blog", *resp.Metadata.CustomName)
}

func TestLinkService_Create_CustomTaken(t *testing.T) {
	svc, d := newLinkService(t)

	d.store.EXPECT().Exists(mock.Anything, "go-blog").Return(true, nil)

	_, err := svc.Create(context.Background(), "https://go.dev/blog", strPtr("go-blog"))
	require.ErrorIs(t, err, service.ErrAliasConflict)
	d.store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestLinkService_Create_LostInsertRace(t *testing.T) {
	svc, d := newLinkService(t)

	d.store.EXPECT().Exists(mock.Anything, "go-blog").Return(false, nil)
	d.store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateID)

	_, err := svc.Create(context.Background(), "https://go.dev/blog", strPtr("go-blog"))
	require.ErrorIs(t, err, service.ErrAliasConflict)
}

func TestLinkService_Create_StoreDown(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("exists", func(t *testing.T) {
		svc, d := newLinkService(t)
		d.ids.EXPECT().Fingerprint(mock.Anything).Return(digest)
		d.ids.EXPECT().Candidate(digest).Return(digest[:8])
		d.store.EXPECT().Exists(mock.Anything, digest[:8]).Return(false, boom)

		_, err := svc.Create(context.Background(), "https://go.dev", nil)
		require.ErrorIs(t, err, service.ErrStoreUnavailable)
		require.ErrorIs(t, err, boom)
	})

	t.Run("insert", func(t *testing.T) {
		svc, d := newLinkService(t)
		d.store.EXPECT().Exists(mock.Anything, "go-blog").Return(false, nil)
		d.store.EXPECT().Insert(mock.Anything, mock.Anything, mock.Anything).Return(boom)

		_, err := svc.Create(context.Background(), "https://go.dev", strPtr("go-blog"))
		require.ErrorIs(t, err, service.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, service.ErrAliasConflict)
	})
}

func TestLinkService_Resolve_CacheHit(t *testing.T) {
	svc, d := newLinkService(t)
	visit := domain.Visit{ClientIP: "203.0.113.7", UserAgent: "curl/8.0"}

	d.cache.EXPECT().Get(mock.Anything, "go-blog").Return("https://go.dev/blog", true)
	d.store.EXPECT().RecordClick(mock.Anything, "go-blog", visit, mock.Anything).Return(nil)

	longURL, err := svc.Resolve(context.Background(), "go-blog", visit)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev/blog", longURL)
	d.store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestLinkService_Resolve_CacheMiss(t *testing.T) {
	svc, d := newLinkService(t)

	d.cache.EXPECT().Get(mock.Anything, "go-blog").Return("", false)
	d.store.EXPECT().Get(mock.Anything, "go-blog").Return(&domain.Link{ID: "go-blog", LongURL: "https://go.dev/blog"}, nil)
	d.cache.EXPECT().Set(mock.Anything, "go-blog", "https://go.dev/blog").Return()
	d.store.EXPECT().RecordClick(mock.Anything, "go-blog", mock.Anything, mock.Anything).Return(nil)

	longURL, err := svc.Resolve(context.Background(), "go-blog", domain.Visit{})
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev/blog", longURL)
}

func TestLinkService_Resolve_NotFoundWritesNothing(t *testing.T) {
	svc, d := newLinkService(t)

	d.cache.EXPECT().Get(mock.Anything, "missing").Return("", false)
	d.store.EXPECT().Get(mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.Resolve(context.Background(), "missing", domain.Visit{ClientIP: "203.0.113.7"})
	require.ErrorIs(t, err, service.ErrNotFound)
	d.store.AssertNotCalled(t, "RecordClick", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	d.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestLinkService_Resolve_StoreDown(t *testing.T) {
	svc, d := newLinkService(t)

	d.cache.EXPECT().Get(mock.Anything, "go-blog").Return("", false)
	d.store.EXPECT().Get(mock.Anything, "go-blog").Return(nil, errors.New("timeout"))

	_, err := svc.Resolve(context.Background(), "go-blog", domain.Visit{})
	require.ErrorIs(t, err, service.ErrStoreUnavailable)
}

func TestLinkService_Resolve_AccountingFailureStillRedirects(t *testing.T) {
	for name, accErr := range map[string]error{
		"missing metadata": repository.ErrMetadataMissing,
		"store error":      errors.New("deadlock detected"),
	} {
		t.Run(name, func(t *testing.T) {
			svc, d := newLinkService(t)

			d.cache.EXPECT().Get(mock.Anything, "go-blog").Return("https://go.dev/blog", true)
			d.store.EXPECT().RecordClick(mock.Anything, "go-blog", mock.Anything, mock.Anything).Return(accErr)

			longURL, err := svc.Resolve(context.Background(), "go-blog", domain.Visit{})
			require.NoError(t, err)
			assert.Equal(t, "https://go.dev/blog", longURL)
			d.recorder.AssertCalled(t, "RecordBusiness", "accounting_failures", float64(1), map[string]string(nil))
			d.recorder.AssertCalled(t, "RecordBusiness", "redirects", float64(1), mock.Anything)
		})
	}
}

func TestLinkService_Resolve_AccountingSurvivesCancel(t *testing.T) {
	svc, d := newLinkService(t)
	ctx, cancel := context.WithCancel(context.Background())

	d.cache.EXPECT().Get(mock.Anything, "go-blog").
		Run(func(context.Context, string) { cancel() }).
		Return("https://go.dev/blog", true)
	d.store.EXPECT().RecordClick(mock.Anything, "go-blog", mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ string, _ domain.Visit, at time.Time) {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.Equal(t, time.UTC, at.Location())
		}).
		Return(nil)

	_, err := svc.Resolve(ctx, "go-blog", domain.Visit{})
	require.NoError(t, err)
}

func TestLinkService_Metadata(t *testing.T) {
	svc, d := newLinkService(t)
	ip := "203.0.113.7"

	d.store.EXPECT().GetMetadata(mock.Anything, "go-blog").Return(&domain.LinkMetadata{
		LinkID:      "go-blog",
		DisplayName: "go-blog",
		LongURL:     "https://go.dev/blog",
		Clicks:      12,
		LastIP:      &ip,
	}, nil)

	resp, err := svc.Metadata(context.Background(), "go-blog")
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.Metadata.Clicks)
	assert.Equal(t, &ip, resp.Metadata.LastIP)
	assert.Equal(t, "http://sho.rt/go-blog", resp.ShortURL)
}

func TestLinkService_Metadata_Missing(t *testing.T) {
	t.Run("unknown link", func(t *testing.T) {
		svc, d := newLinkService(t)
		d.store.EXPECT().GetMetadata(mock.Anything, "missing").Return(nil, repository.ErrMetadataMissing)
		d.store.EXPECT().Exists(mock.Anything, "missing").Return(false, nil)

		_, err := svc.Metadata(context.Background(), "missing")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("link without metadata", func(t *testing.T) {
		svc, d := newLinkService(t)
		d.store.EXPECT().GetMetadata(mock.Anything, "orphan").Return(nil, repository.ErrMetadataMissing)
		d.store.EXPECT().Exists(mock.Anything, "orphan").Return(true, nil)

		_, err := svc.Metadata(context.Background(), "orphan")
		require.ErrorIs(t, err, service.ErrInconsistent)
		require.ErrorIs(t, err, repository.ErrMetadataMissing)
	})
}

func TestLinkService_CheckAlias(t *testing.T) {
	svc, d := newLinkService(t)

	d.store.EXPECT().Exists(mock.Anything, "go-blog").Return(true, nil)
	d.store.EXPECT().Exists(mock.Anything, "gopher").Return(false, nil)

	taken, err := svc.CheckAlias(context.Background(), "go-blog")
	require.NoError(t, err)
	assert.False(t, taken.IsAvailable)
	assert.Equal(t, "Alias is already taken", taken.Message)

	free, err := svc.CheckAlias(context.Background(), "gopher")
	require.NoError(t, err)
	assert.True(t, free.IsAvailable)
	assert.Equal(t, "gopher", free.Alias)
}

func TestLinkService_Clicks(t *testing.T) {
	svc, d := newLinkService(t)
	ip := "203.0.113.7"
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	d.store.EXPECT().Exists(mock.Anything, "go-blog").Return(true, nil)
	d.store.EXPECT().ListClicks(mock.Anything, "go-blog", 10).Return([]domain.ClickLogEntry{
		{ID: 2, LinkID: "go-blog", ClientIP: &ip, UserAgent: "curl/8.0", ClickedAt: at},
		{ID: 1, LinkID: "go-blog", UserAgent: "", ClickedAt: at.Add(-time.Minute)},
	}, nil)
	d.refs.EXPECT().Encode(int64(2)).Return("ref-2", nil)
	d.refs.EXPECT().Encode(int64(1)).Return("ref-1", nil)

	resp, err := svc.Clicks(context.Background(), "go-blog", 10)
	require.NoError(t, err)
	require.Len(t, resp.Clicks, 2)
	assert.Equal(t, "go-blog", resp.LinkID)
	assert.Equal(t, "ref-2", resp.Clicks[0].Ref)
	assert.Equal(t, &ip, resp.Clicks[0].ClientIP)
	assert.Equal(t, "2025-03-01T12:00:00Z", resp.Clicks[0].Timestamp)
	assert.Nil(t, resp.Clicks[1].ClientIP)
}

func TestLinkService_Clicks_NotFound(t *testing.T) {
	svc, d := newLinkService(t)
	d.store.EXPECT().Exists(mock.Anything, "missing").Return(false, nil)

	_, err := svc.Clicks(context.Background(), "missing", 10)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestLinkService_Create_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		longURL    string
		customName *string
		wantErr    error
	}{
		{name: "empty url", longURL: "", wantErr: validation.ErrEmptyURL},
		{name: "unsafe scheme", longURL: "javascript:alert(1)", wantErr: validation.ErrUnsafeProtocol},
		{name: "private host", longURL: "http://169.254.169.254/latest", wantErr: validation.ErrPrivateIPNotAllowed},
		{name: "name outside alphabet", longURL: "https://go.dev", customName: strPtr("go blog/../x"), wantErr: validation.ErrAliasCharset},
		{name: "name too short", longURL: "https://go.dev", customName: strPtr("go"), wantErr: validation.ErrAliasLength},
		{name: "reserved name", longURL: "https://go.dev", customName: strPtr("health"), wantErr: validation.ErrAliasReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no store, cache or id generator calls are expected
			svc, _ := newLinkService(t)

			_, err := svc.Create(context.Background(), tt.longURL, tt.customName)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
