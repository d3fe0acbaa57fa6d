package metrics

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSink bulk-loads batches with COPY.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(pool *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{pool: pool}
}

func (s *PostgresSink) WriteHTTP(ctx context.Context, batch []HTTPMetric) error {
	return s.copy(ctx, "http_metrics", httpColumns, rows(batch, httpRow))
}

func (s *PostgresSink) WriteBusiness(ctx context.Context, batch []BusinessMetric) error {
	return s.copy(ctx, "business_metrics", businessColumns, rows(batch, businessRow))
}

func (s *PostgresSink) WriteInfra(ctx context.Context, batch []InfraMetric) error {
	return s.copy(ctx, "infra_metrics", infraColumns, rows(batch, infraRow))
}

func (s *PostgresSink) copy(ctx context.Context, table string, columns []string, data [][]any) error {
	_, err := s.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(data))
	return err
}
