package service

import "errors"

var (
	ErrAliasConflict    = errors.New("alias already taken")
	ErrNotFound         = errors.New("link not found")
	ErrUpstreamFetch    = errors.New("failed to fetch page")
	ErrGeneration       = errors.New("failed to generate suggestions")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInconsistent     = errors.New("link state inconsistent")
)
