package metrics

import (
	"context"
	"encoding/json"
)

// Sink persists metric batches. Implementations must be safe for use by the
// three flush goroutines at once.
type Sink interface {
	WriteHTTP(ctx context.Context, batch []HTTPMetric) error
	WriteBusiness(ctx context.Context, batch []BusinessMetric) error
	WriteInfra(ctx context.Context, batch []InfraMetric) error
}

var (
	httpColumns     = []string{"time", "request_id", "method", "path", "status_code", "duration_ms", "bytes_out", "client_ip", "error"}
	businessColumns = []string{"time", "metric_name", "value", "labels"}
	infraColumns    = []string{
		"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
		"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
	}
)

func httpRow(m HTTPMetric) []any {
	return []any{m.Time, m.RequestID, m.Method, m.Path, m.StatusCode, m.DurationMs, m.BytesOut, m.ClientIP, m.Error}
}

func businessRow(m BusinessMetric) []any {
	var labels []byte
	if len(m.Labels) > 0 {
		labels, _ = json.Marshal(m.Labels)
	}
	return []any{m.Time, m.MetricName, m.Value, labels}
}

func infraRow(m InfraMetric) []any {
	return []any{
		m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
		m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
	}
}

func rows[T any](batch []T, row func(T) []any) [][]any {
	out := make([][]any, len(batch))
	for i, m := range batch {
		out[i] = row(m)
	}
	return out
}
