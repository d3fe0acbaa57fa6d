package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Prober checks that a URL answers a HEAD request.
type Prober struct {
	client    *http.Client
	userAgent string
}

func NewProber(timeout time.Duration, userAgent string, guard HostChecker) *Prober {
	return &Prober{
		client:    newClient(timeout, guard),
		userAgent: userAgent,
	}
}

// Probe returns nil when the URL responds with a status below 400.
func (p *Prober) Probe(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach url: %w", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}
