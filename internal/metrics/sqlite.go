package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const sqliteTimeLayout = "2006-01-02 15:04:05.999999999-07:00"

// SQLSink writes batches through database/sql with one prepared insert per
// batch inside a transaction. It backs the SQLite and libSQL drivers, which
// have no COPY equivalent.
type SQLSink struct {
	db *sql.DB
}

func NewSQLSink(db *sql.DB) *SQLSink {
	return &SQLSink{db: db}
}

func (s *SQLSink) WriteHTTP(ctx context.Context, batch []HTTPMetric) error {
	return s.insert(ctx, "http_metrics", httpColumns, rows(batch, httpRow))
}

func (s *SQLSink) WriteBusiness(ctx context.Context, batch []BusinessMetric) error {
	return s.insert(ctx, "business_metrics", businessColumns, rows(batch, func(m BusinessMetric) []any {
		r := businessRow(m)
		// TEXT column; a []byte would be stored as a BLOB
		if b, ok := r[3].([]byte); ok && b != nil {
			r[3] = string(b)
		} else {
			r[3] = nil
		}
		return r
	}))
}

func (s *SQLSink) WriteInfra(ctx context.Context, batch []InfraMetric) error {
	return s.insert(ctx, "infra_metrics", infraColumns, rows(batch, infraRow))
}

func (s *SQLSink) insert(ctx context.Context, table string, columns []string, data [][]any) error {
	if len(data) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range data {
		if t, ok := row[0].(time.Time); ok {
			row[0] = t.UTC().Format(sqliteTimeLayout)
		}
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	return tx.Commit()
}
