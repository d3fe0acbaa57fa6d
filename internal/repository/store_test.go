package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urlshortener/internal/domain"
	"urlshortener/internal/repository"
)

type store interface {
	Get(ctx context.Context, id string) (*domain.Link, error)
	Exists(ctx context.Context, id string) (bool, error)
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
	Insert(ctx context.Context, link *domain.Link, meta *domain.LinkMetadata) error
	RecordClick(ctx context.Context, id string, visit domain.Visit, at time.Time) error
	GetMetadata(ctx context.Context, id string) (*domain.LinkMetadata, error)
	ListClicks(ctx context.Context, id string, limit int) ([]domain.ClickLogEntry, error)
}

// insertLinkOnly writes a links row without metadata.
type insertLinkOnly func(t *testing.T, id, longURL string)

func newLink(id, longURL, displayName string) (*domain.Link, *domain.LinkMetadata) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Link{ID: id, LongURL: longURL, CreatedAt: now, UpdatedAt: now},
		&domain.LinkMetadata{LinkID: id, DisplayName: displayName, LongURL: longURL, CreatedAt: now, UpdatedAt: now}
}

func runStoreTests(t *testing.T, newStore func(t *testing.T) (store, insertLinkOnly)) {
	ctx := context.Background()

	t.Run("insert then get", func(t *testing.T) {
		s, _ := newStore(t)
		link, meta := newLink("abcd1234", "https://example.com", "")
		require.NoError(t, s.Insert(ctx, link, meta))

		got, err := s.Get(ctx, "abcd1234")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got.LongURL)
		assert.WithinDuration(t, link.CreatedAt, got.CreatedAt, time.Second)

		gotMeta, err := s.GetMetadata(ctx, "abcd1234")
		require.NoError(t, err)
		assert.Equal(t, int64(0), gotMeta.Clicks)
		assert.Nil(t, gotMeta.LastIP)
		assert.Empty(t, gotMeta.DisplayName)
		assert.Equal(t, "https://example.com", gotMeta.LongURL)
	})

	t.Run("get missing", func(t *testing.T) {
		s, _ := newStore(t)
		_, err := s.Get(ctx, "missing1")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("duplicate id", func(t *testing.T) {
		s, _ := newStore(t)
		link, meta := newLink("my-alias", "https://example.com/1", "my-alias")
		require.NoError(t, s.Insert(ctx, link, meta))

		link2, meta2 := newLink("my-alias", "https://example.com/2", "my-alias")
		err := s.Insert(ctx, link2, meta2)
		assert.ErrorIs(t, err, repository.ErrDuplicateID)

		got, err := s.Get(ctx, "my-alias")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/1", got.LongURL)
	})

	t.Run("concurrent inserts with same id", func(t *testing.T) {
		s, _ := newStore(t)

		const n = 8
		errs := make(chan error, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				link, meta := newLink("race-alias", fmt.Sprintf("https://example.com/%d", i), "race-alias")
				errs <- s.Insert(ctx, link, meta)
			}()
		}
		wg.Wait()
		close(errs)

		var ok, dup int
		for err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, repository.ErrDuplicateID):
				dup++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, n-1, dup)
	})

	t.Run("exists and existing ids", func(t *testing.T) {
		s, _ := newStore(t)
		for _, id := range []string{"alpha", "bravo"} {
			link, meta := newLink(id, "https://example.com/"+id, id)
			require.NoError(t, s.Insert(ctx, link, meta))
		}

		exists, err := s.Exists(ctx, "alpha")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.Exists(ctx, "charlie")
		require.NoError(t, err)
		assert.False(t, exists)

		existing, err := s.ExistingIDs(ctx, []string{"alpha", "charlie", "bravo", "delta"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"alpha", "bravo"}, existing)

		existing, err = s.ExistingIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, existing)
	})

	t.Run("record click", func(t *testing.T) {
		s, _ := newStore(t)
		link, meta := newLink("clicked1", "https://example.com", "")
		require.NoError(t, s.Insert(ctx, link, meta))

		at := time.Now().UTC()
		require.NoError(t, s.RecordClick(ctx, "clicked1", domain.Visit{ClientIP: "203.0.113.7", UserAgent: "curl/8"}, at))
		require.NoError(t, s.RecordClick(ctx, "clicked1", domain.Visit{ClientIP: "198.51.100.2", UserAgent: "firefox"}, at.Add(time.Second)))

		gotMeta, err := s.GetMetadata(ctx, "clicked1")
		require.NoError(t, err)
		assert.Equal(t, int64(2), gotMeta.Clicks)
		require.NotNil(t, gotMeta.LastIP)
		assert.Equal(t, "198.51.100.2", *gotMeta.LastIP)

		clicks, err := s.ListClicks(ctx, "clicked1", 10)
		require.NoError(t, err)
		require.Len(t, clicks, 2)
		assert.Equal(t, "firefox", clicks[0].UserAgent)
		assert.Equal(t, "curl/8", clicks[1].UserAgent)
		assert.Greater(t, clicks[0].ID, clicks[1].ID)
		require.NotNil(t, clicks[1].ClientIP)
		assert.Equal(t, "203.0.113.7", *clicks[1].ClientIP)
		assert.WithinDuration(t, at, clicks[1].ClickedAt, time.Second)
	})

	t.Run("record click without ip", func(t *testing.T) {
		s, _ := newStore(t)
		link, meta := newLink("noip1234", "https://example.com", "")
		require.NoError(t, s.Insert(ctx, link, meta))

		require.NoError(t, s.RecordClick(ctx, "noip1234", domain.Visit{UserAgent: "unknown"}, time.Now()))

		clicks, err := s.ListClicks(ctx, "noip1234", 0)
		require.NoError(t, err)
		require.Len(t, clicks, 1)
		assert.Nil(t, clicks[0].ClientIP)
	})

	t.Run("concurrent clicks are not lost", func(t *testing.T) {
		s, _ := newStore(t)
		link, meta := newLink("hot-link", "https://example.com", "hot-link")
		require.NoError(t, s.Insert(ctx, link, meta))

		const n = 40
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				visit := domain.Visit{ClientIP: fmt.Sprintf("10.0.0.%d", i), UserAgent: "bench"}
				assert.NoError(t, s.RecordClick(ctx, "hot-link", visit, time.Now()))
			}()
		}
		wg.Wait()

		gotMeta, err := s.GetMetadata(ctx, "hot-link")
		require.NoError(t, err)
		assert.Equal(t, int64(n), gotMeta.Clicks)

		clicks, err := s.ListClicks(ctx, "hot-link", n*2)
		require.NoError(t, err)
		assert.Len(t, clicks, n)
	})

	t.Run("record click with missing metadata rolls back", func(t *testing.T) {
		s, insertOnly := newStore(t)
		insertOnly(t, "orphan01", "https://example.com")

		err := s.RecordClick(ctx, "orphan01", domain.Visit{ClientIP: "203.0.113.1", UserAgent: "ua"}, time.Now())
		assert.ErrorIs(t, err, repository.ErrMetadataMissing)

		clicks, err := s.ListClicks(ctx, "orphan01", 10)
		require.NoError(t, err)
		assert.Empty(t, clicks)

		_, err = s.GetMetadata(ctx, "orphan01")
		assert.ErrorIs(t, err, repository.ErrMetadataMissing)
	})

	t.Run("list clicks limit", func(t *testing.T) {
		s, _ := newStore(t)
		link, meta := newLink("limited1", "https://example.com", "")
		require.NoError(t, s.Insert(ctx, link, meta))
		for range 5 {
			require.NoError(t, s.RecordClick(ctx, "limited1", domain.Visit{UserAgent: "ua"}, time.Now()))
		}

		clicks, err := s.ListClicks(ctx, "limited1", 3)
		require.NoError(t, err)
		assert.Len(t, clicks, 3)
	})
}
