package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"urlshortener/internal/config"
	"urlshortener/internal/domain"
)

const pgUniqueViolation = "23505"

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg *config.DatabaseConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// NewPostgresStoreFromPool wraps an existing pool, mostly for tests.
func NewPostgresStoreFromPool(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *PostgresStore) PoolStats() PoolStats {
	st := s.pool.Stat()
	return PoolStats{
		Acquired: int(st.AcquiredConns()),
		Idle:     int(st.IdleConns()),
		Total:    int(st.TotalConns()),
		Max:      int(st.MaxConns()),
	}
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*domain.Link, error) {
	var l domain.Link
	err := s.pool.QueryRow(ctx,
		`SELECT id, long_url, created_at, updated_at FROM links WHERE id = $1`, id,
	).Scan(&l.ID, &l.LongURL, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return &l, nil
}

func (s *PostgresStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM links WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check link: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.pool.Query(ctx, `SELECT id FROM links WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	existing, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect links: %w", err)
	}
	return existing, nil
}

// Insert writes the link and its metadata in one transaction.
func (s *PostgresStore) Insert(ctx context.Context, link *domain.Link, meta *domain.LinkMetadata) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO links (id, long_url, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
			link.ID, link.LongURL, link.CreatedAt, link.UpdatedAt,
		); err != nil {
			return err
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO link_metadata (link_id, display_name, long_url, clicks, last_ip, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			meta.LinkID, meta.DisplayName, meta.LongURL, meta.Clicks, meta.LastIP, meta.CreatedAt, meta.UpdatedAt,
		)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

// RecordClick bumps the click counter and appends a click log row atomically.
func (s *PostgresStore) RecordClick(ctx context.Context, id string, visit domain.Visit, at time.Time) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE link_metadata SET clicks = clicks + 1, last_ip = $2, updated_at = $3 WHERE link_id = $1`,
			id, nullableString(visit.ClientIP), at,
		)
		if err != nil {
			return fmt.Errorf("failed to update metadata: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrMetadataMissing
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO click_log (link_id, client_ip, user_agent, clicked_at) VALUES ($1, $2, $3, $4)`,
			id, nullableString(visit.ClientIP), visit.UserAgent, at,
		); err != nil {
			return fmt.Errorf("failed to insert click log: %w", err)
		}
		return nil
	})
}

func (s *PostgresStore) GetMetadata(ctx context.Context, id string) (*domain.LinkMetadata, error) {
	var m domain.LinkMetadata
	err := s.pool.QueryRow(ctx,
		`SELECT link_id, display_name, long_url, clicks, last_ip, created_at, updated_at
		 FROM link_metadata WHERE link_id = $1`, id,
	).Scan(&m.LinkID, &m.DisplayName, &m.LongURL, &m.Clicks, &m.LastIP, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMetadataMissing
		}
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}
	return &m, nil
}

// ListClicks returns the newest click log entries first.
func (s *PostgresStore) ListClicks(ctx context.Context, id string, limit int) ([]domain.ClickLogEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, link_id, client_ip, user_agent, clicked_at
		 FROM click_log WHERE link_id = $1 ORDER BY id DESC LIMIT $2`,
		id, clickLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}
	defer rows.Close()

	var entries []domain.ClickLogEntry
	for rows.Next() {
		var e domain.ClickLogEntry
		if err := rows.Scan(&e.ID, &e.LinkID, &e.ClientIP, &e.UserAgent, &e.ClickedAt); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		e.ClickedAt = utc(e.ClickedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clicks: %w", err)
	}
	return entries, nil
}
