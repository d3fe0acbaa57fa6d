package cache

import (
	"context"
	"log/slog"
)

// Tiered reads through the local cache to an optional Redis cache.
// Redis failures degrade to a miss.
type Tiered struct {
	local  *Local
	remote *Redis
	logger *slog.Logger
}

func NewTiered(local *Local, remote *Redis, logger *slog.Logger) *Tiered {
	return &Tiered{local: local, remote: remote, logger: logger}
}

func (t *Tiered) Get(ctx context.Context, id string) (string, bool) {
	if val, ok := t.local.Get(id); ok {
		return val, true
	}
	if t.remote == nil {
		return "", false
	}

	val, ok, err := t.remote.Get(ctx, id)
	if err != nil {
		t.logger.Warn("redis cache get failed", slog.String("id", id), slog.String("error", err.Error()))
		return "", false
	}
	if ok {
		t.local.Set(id, val)
	}
	return val, ok
}

func (t *Tiered) Set(ctx context.Context, id, longURL string) {
	t.local.Set(id, longURL)
	if t.remote == nil {
		return
	}
	if err := t.remote.Set(ctx, id, longURL); err != nil {
		t.logger.Warn("redis cache set failed", slog.String("id", id), slog.String("error", err.Error()))
	}
}

func (t *Tiered) Stats() (hits, misses uint64, ratio float64) {
	return t.local.Stats()
}
