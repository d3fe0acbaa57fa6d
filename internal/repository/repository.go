package repository

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("link not found")
	ErrDuplicateID     = errors.New("link id already exists")
	ErrMetadataMissing = errors.New("link metadata missing")
)

const DefaultClickLimit = 50

// PoolStats is a driver-neutral snapshot of connection pool usage.
type PoolStats struct {
	Acquired int
	Idle     int
	Total    int
	Max      int
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func clickLimit(limit int) int {
	if limit <= 0 {
		return DefaultClickLimit
	}
	return limit
}

func utc(t time.Time) time.Time {
	return t.UTC()
}
