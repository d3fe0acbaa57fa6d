package domain

import "time"

type Link struct {
	ID        string
	LongURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LinkMetadata is created together with its Link and shares its ID.
type LinkMetadata struct {
	LinkID      string
	DisplayName string
	LongURL     string
	Clicks      int64
	LastIP      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ClickLogEntry struct {
	ID        int64
	LinkID    string
	ClientIP  *string
	UserAgent string
	ClickedAt time.Time
}

// Visit describes the client that followed a short link.
type Visit struct {
	ClientIP  string
	UserAgent string
}
