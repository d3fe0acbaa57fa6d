package fetch

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const maxRedirects = 10

var (
	ErrRedirectBlocked  = errors.New("redirect target not allowed")
	ErrTooManyRedirects = errors.New("too many redirects")
)

// HostChecker vets every host a fetch ends up at, not only the one the
// caller validated. A nil HostChecker allows all hosts.
type HostChecker interface {
	Check(host string) error
}

func newClient(timeout time.Duration, guard HostChecker) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return ErrTooManyRedirects
			}
			return checkHost(guard, req.URL)
		},
	}
}

func checkHost(guard HostChecker, u *url.URL) error {
	if guard == nil {
		return nil
	}
	if err := guard.Check(u.Host); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRedirectBlocked, u.Host, err)
	}
	return nil
}
