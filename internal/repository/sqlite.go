package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"urlshortener/internal/config"
	"urlshortener/internal/domain"
)

const sqliteTimeLayout = "2006-01-02 15:04:05.999999999-07:00"

// SQLiteStore serves local SQLite files and remote libSQL databases.
// A single connection serializes writers.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, cfg *config.DatabaseConfig) (*SQLiteStore, error) {
	driverName, dsn := sqliteDriver(cfg.URL)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func sqliteDriver(url string) (driverName, dsn string) {
	if strings.HasPrefix(url, "libsql://") || strings.HasPrefix(url, "wss://") || strings.HasPrefix(url, "https://") {
		return "libsql", url
	}
	if strings.Contains(url, "_pragma=") {
		return "sqlite", url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return "sqlite", url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) PoolStats() PoolStats {
	st := s.db.Stats()
	return PoolStats{
		Acquired: st.InUse,
		Idle:     st.Idle,
		Total:    st.OpenConnections,
		Max:      st.MaxOpenConnections,
	}
}

func (s *SQLiteStore) Close() {
	_ = s.db.Close()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.Link, error) {
	var (
		l                    domain.Link
		createdAt, updatedAt sqliteTime
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, long_url, created_at, updated_at FROM links WHERE id = ?`, id,
	).Scan(&l.ID, &l.LongURL, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	l.CreatedAt, l.UpdatedAt = createdAt.Time, updatedAt.Time
	return &l, nil
}

func (s *SQLiteStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM links WHERE id = ?)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check link: %w", err)
	}
	return exists, nil
}

func (s *SQLiteStore) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM links WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var existing []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		existing = append(existing, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}
	return existing, nil
}

func (s *SQLiteStore) Insert(ctx context.Context, link *domain.Link, meta *domain.LinkMetadata) error {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO links (id, long_url, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			link.ID, link.LongURL, formatTime(link.CreatedAt), formatTime(link.UpdatedAt),
		); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO link_metadata (link_id, display_name, long_url, clicks, last_ip, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			meta.LinkID, meta.DisplayName, meta.LongURL, meta.Clicks, meta.LastIP,
			formatTime(meta.CreatedAt), formatTime(meta.UpdatedAt),
		)
		return err
	})
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

func (s *SQLiteStore) RecordClick(ctx context.Context, id string, visit domain.Visit, at time.Time) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE link_metadata SET clicks = clicks + 1, last_ip = ?, updated_at = ? WHERE link_id = ?`,
			nullableString(visit.ClientIP), formatTime(at), id,
		)
		if err != nil {
			return fmt.Errorf("failed to update metadata: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return ErrMetadataMissing
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO click_log (link_id, client_ip, user_agent, clicked_at) VALUES (?, ?, ?, ?)`,
			id, nullableString(visit.ClientIP), visit.UserAgent, formatTime(at),
		); err != nil {
			return fmt.Errorf("failed to insert click log: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) GetMetadata(ctx context.Context, id string) (*domain.LinkMetadata, error) {
	var (
		m                    domain.LinkMetadata
		createdAt, updatedAt sqliteTime
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT link_id, display_name, long_url, clicks, last_ip, created_at, updated_at
		 FROM link_metadata WHERE link_id = ?`, id,
	).Scan(&m.LinkID, &m.DisplayName, &m.LongURL, &m.Clicks, &m.LastIP, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMetadataMissing
		}
		return nil, fmt.Errorf("failed to get metadata: %w", err)
	}
	m.CreatedAt, m.UpdatedAt = createdAt.Time, updatedAt.Time
	return &m, nil
}

func (s *SQLiteStore) ListClicks(ctx context.Context, id string, limit int) ([]domain.ClickLogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, link_id, client_ip, user_agent, clicked_at
		 FROM click_log WHERE link_id = ? ORDER BY id DESC LIMIT ?`,
		id, clickLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query clicks: %w", err)
	}
	defer rows.Close()

	var entries []domain.ClickLogEntry
	for rows.Next() {
		var (
			e         domain.ClickLogEntry
			clickedAt sqliteTime
		)
		if err := rows.Scan(&e.ID, &e.LinkID, &e.ClientIP, &e.UserAgent, &clickedAt); err != nil {
			return nil, fmt.Errorf("failed to scan click: %w", err)
		}
		e.ClickedAt = clickedAt.Time
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clicks: %w", err)
	}
	return entries, nil
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	// libSQL reports constraint failures as plain text
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

// sqliteTime scans DATETIME columns from either driver. modernc parses
// them into time.Time while libSQL hands back text.
type sqliteTime struct {
	Time time.Time
}

func (t *sqliteTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case int64:
		t.Time = time.Unix(v, 0).UTC()
		return nil
	default:
		return fmt.Errorf("unsupported time value %T", src)
	}
}

func (t *sqliteTime) parse(s string) error {
	for _, layout := range []string{sqliteTimeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("failed to parse time %q", s)
}
