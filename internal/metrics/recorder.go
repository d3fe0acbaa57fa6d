package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"urlshortener/internal/config"
)

const drainTimeout = 5 * time.Second

// Recorder buffers metrics in memory and hands them to a Sink in batches.
// Record* never blocks; a full buffer drops the sample.
type Recorder struct {
	sink         Sink
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	httpCh       chan HTTPMetric
	businessCh   chan BusinessMetric
	infraCh      chan InfraMetric
	now          func() time.Time
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(sink Sink, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		sink:       sink,
		logger:     logger,
		cfg:        cfg,
		httpCh:     make(chan HTTPMetric, cfg.BufferSize),
		businessCh: make(chan BusinessMetric, cfg.BufferSize),
		infraCh:    make(chan InfraMetric, cfg.BufferSize),
		now:        time.Now,
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	enqueue(r, r.httpCh, m, "http")
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	enqueue(r, r.businessCh, BusinessMetric{
		Time:       r.now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	}, "business")
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	enqueue(r, r.infraCh, m, "infra")
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go runBatcher(ctx, r, r.httpCh, r.sink.WriteHTTP, "http", interval)
	go runBatcher(ctx, r, r.businessCh, r.sink.WriteBusiness, "business", interval)
	go runBatcher(ctx, r, r.infraCh, r.sink.WriteInfra, "infra", interval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flush loops after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func enqueue[T any](r *Recorder, ch chan<- T, m T, kind string) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case ch <- m:
	default:
		r.logger.Warn(kind + " metrics buffer full, dropping metric")
	}
}

func runBatcher[T any](
	ctx context.Context,
	r *Recorder,
	ch <-chan T,
	write func(context.Context, []T) error,
	kind string,
	interval time.Duration,
) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)
	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := write(ctx, batch); err != nil {
			r.logger.Error("failed to write "+kind+" metrics batch",
				slog.Int("size", len(batch)),
				slog.String("error", err.Error()))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			drain(ch, &batch, flush)
			return
		case <-r.shutdownCh:
			drain(ch, &batch, flush)
			return
		case m := <-ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}

func drain[T any](ch <-chan T, batch *[]T, flush func(context.Context)) {
	for {
		select {
		case m := <-ch:
			*batch = append(*batch, m)
		default:
			ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
			flush(ctx)
			cancel()
			return
		}
	}
}
