package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"urlshortener/internal/config"
	"urlshortener/internal/service"
	"urlshortener/internal/service/mocks"
	"urlshortener/internal/validation"
)

const pageURL = "https://go.dev/blog"

type suggestDeps struct {
	fetcher   *mocks.MockPageFetcher
	generator *mocks.MockGenerator
	store     *mocks.MockStore
}

func newSuggestionService(t *testing.T, maxAttempts int) (*service.SuggestionService, suggestDeps) {
	d := suggestDeps{
		fetcher:   mocks.NewMockPageFetcher(t),
		generator: mocks.NewMockGenerator(t),
		store:     mocks.NewMockStore(t),
	}
	recorder := mocks.NewMockBusinessRecorder(t)
	recorder.EXPECT().RecordBusiness(mock.Anything, mock.Anything, mock.Anything).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewSuggestionService(d.fetcher, d.generator, d.store, validation.NewAliasValidator(), recorder, logger,
		&config.SuggestConfig{MaxAttempts: maxAttempts, MaxPageChars: 5000})
	return svc, d
}

func TestSuggest_FiltersExisting(t *testing.T) {
	svc, d := newSuggestionService(t, 5)
	candidates := []string{"go-blog", "gopher-news", "go-posts", "golang-blog", "go-weekly", "go-notes"}

	d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("The Go Blog", nil)
	d.generator.EXPECT().Generate(mock.Anything, pageURL, "The Go Blog", 6).Return(candidates, nil).Once()
	d.store.EXPECT().ExistingIDs(mock.Anything, candidates).Return([]string{"go-blog", "go-posts"}, nil)

	resp, err := svc.Suggest(context.Background(), pageURL, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"gopher-news", "golang-blog", "go-weekly"}, resp.SuggestedAliases)
	assert.GreaterOrEqual(t, resp.TimeTaken, 0.0)
}

func TestSuggest_RequeriesUntilEnough(t *testing.T) {
	svc, d := newSuggestionService(t, 5)
	first := []string{"go-blog", "gopher-news", "go-posts", "golang-blog", "go-weekly", "go-notes"}
	second := []string{"gopher-news", "go-digest"}

	d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("The Go Blog", nil)
	d.generator.EXPECT().Generate(mock.Anything, pageURL, mock.Anything, 6).Return(first, nil).Once()
	d.store.EXPECT().ExistingIDs(mock.Anything, first).
		Return([]string{"go-blog", "go-posts", "golang-blog", "go-weekly"}, nil).Once()
	// two collected, one still needed
	d.generator.EXPECT().Generate(mock.Anything, pageURL, mock.Anything, 2).Return(second, nil).Once()
	d.store.EXPECT().ExistingIDs(mock.Anything, []string{"go-digest"}).Return(nil, nil).Once()

	resp, err := svc.Suggest(context.Background(), pageURL, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"gopher-news", "go-notes", "go-digest"}, resp.SuggestedAliases)
}

func TestSuggest_DropsInvalidAndRepeated(t *testing.T) {
	svc, d := newSuggestionService(t, 5)

	d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("", nil)
	d.generator.EXPECT().Generate(mock.Anything, pageURL, "", 4).
		Return([]string{" go-blog ", "go blog", "go", "go-blog", "", "gopher"}, nil)
	d.store.EXPECT().ExistingIDs(mock.Anything, []string{"go-blog", "gopher"}).Return([]string{}, nil)

	resp, err := svc.Suggest(context.Background(), pageURL, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"go-blog", "gopher"}, resp.SuggestedAliases)
}

func TestSuggest_TruncatesPageText(t *testing.T) {
	svc, d := newSuggestionService(t, 1)
	page := strings.Repeat("é", 6000)

	d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return(page, nil)
	d.generator.EXPECT().Generate(mock.Anything, pageURL, mock.Anything, 2).
		Run(func(_ context.Context, _ string, text string, _ int) {
			assert.Equal(t, 5000, utf8.RuneCountInString(text))
			assert.True(t, utf8.ValidString(text))
		}).
		Return([]string{"gopher"}, nil)
	d.store.EXPECT().ExistingIDs(mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Suggest(context.Background(), pageURL, 1)
	require.NoError(t, err)
}

func TestSuggest_EmptyGeneration(t *testing.T) {
	svc, d := newSuggestionService(t, 5)

	d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("text", nil)
	d.generator.EXPECT().Generate(mock.Anything, pageURL, "text", 6).Return([]string{}, nil).Once()

	_, err := svc.Suggest(context.Background(), pageURL, 3)
	require.ErrorIs(t, err, service.ErrGeneration)
}

func TestSuggest_ExhaustsAttempts(t *testing.T) {
	svc, d := newSuggestionService(t, 3)

	d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("text", nil)
	d.generator.EXPECT().Generate(mock.Anything, pageURL, "text", 2).Return([]string{"go-blog"}, nil).Times(3)
	d.store.EXPECT().ExistingIDs(mock.Anything, []string{"go-blog"}).Return([]string{"go-blog"}, nil).Once()

	_, err := svc.Suggest(context.Background(), pageURL, 1)
	require.ErrorIs(t, err, service.ErrGeneration)
	assert.Contains(t, err.Error(), "exhausted 3 attempts")
}

func TestSuggest_Failures(t *testing.T) {
	boom := errors.New("boom")

	t.Run("fetch", func(t *testing.T) {
		svc, d := newSuggestionService(t, 5)
		d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("", boom)

		_, err := svc.Suggest(context.Background(), pageURL, 3)
		require.ErrorIs(t, err, service.ErrUpstreamFetch)
		require.ErrorIs(t, err, boom)
	})

	t.Run("generate", func(t *testing.T) {
		svc, d := newSuggestionService(t, 5)
		d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("text", nil)
		d.generator.EXPECT().Generate(mock.Anything, pageURL, "text", 6).Return(nil, boom).Once()

		_, err := svc.Suggest(context.Background(), pageURL, 3)
		require.ErrorIs(t, err, service.ErrGeneration)
	})

	t.Run("store", func(t *testing.T) {
		svc, d := newSuggestionService(t, 5)
		d.fetcher.EXPECT().FetchText(mock.Anything, pageURL).Return("text", nil)
		d.generator.EXPECT().Generate(mock.Anything, pageURL, "text", 6).Return([]string{"gopher"}, nil).Once()
		d.store.EXPECT().ExistingIDs(mock.Anything, mock.Anything).Return(nil, boom)

		_, err := svc.Suggest(context.Background(), pageURL, 3)
		require.ErrorIs(t, err, service.ErrStoreUnavailable)
	})
}

func TestSuggest_InvalidCount(t *testing.T) {
	svc, _ := newSuggestionService(t, 5)

	for _, count := range []int{0, 11} {
		_, err := svc.Suggest(context.Background(), pageURL, count)
		require.ErrorIs(t, err, validation.ErrInvalidCount)
	}
}

func TestSuggest_NoGenerator(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewSuggestionService(mocks.NewMockPageFetcher(t), nil, mocks.NewMockStore(t),
		validation.NewAliasValidator(), mocks.NewMockBusinessRecorder(t), logger, &config.SuggestConfig{MaxAttempts: 5})

	_, err := svc.Suggest(context.Background(), pageURL, 3)
	require.ErrorIs(t, err, service.ErrGeneration)
}
