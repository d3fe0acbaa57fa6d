package fetch

import (
	"context"
	"fmt"
	"log/slog"
	neturl "net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RenderFetcher loads pages in headless Chromium so client-side rendered
// content is visible. The browser is started on first use.
type RenderFetcher struct {
	binPath   string
	timeout   time.Duration
	userAgent string
	guard     HostChecker
	logger    *slog.Logger

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func NewRenderFetcher(binPath string, timeout time.Duration, userAgent string, guard HostChecker, logger *slog.Logger) *RenderFetcher {
	return &RenderFetcher{
		binPath:   binPath,
		timeout:   timeout,
		userAgent: userAgent,
		guard:     guard,
		logger:    logger,
	}
}

func (f *RenderFetcher) FetchText(ctx context.Context, url string) (string, error) {
	browser, err := f.connect()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("failed to open page: %w", err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			f.logger.Warn("failed to close page", slog.String("error", err.Error()))
		}
	}()

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return "", fmt.Errorf("failed to set user agent: %w", err)
	}
	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to wait for page load: %w", err)
	}

	// the browser follows redirects on its own, so check where it landed
	info, err := page.Info()
	if err != nil {
		return "", fmt.Errorf("failed to read page info: %w", err)
	}
	landed, err := neturl.Parse(info.URL)
	if err != nil {
		return "", fmt.Errorf("failed to parse final url: %w", err)
	}
	if err := checkHost(f.guard, landed); err != nil {
		return "", err
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read rendered html: %w", err)
	}
	return ExtractText(strings.NewReader(html))
}

func (f *RenderFetcher) connect() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser != nil {
		return f.browser, nil
	}

	l := launcher.New().Headless(true)
	if f.binPath != "" {
		l = l.Bin(f.binPath)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	f.logger.Info("headless browser started", slog.String("control_url", u))
	f.browser, f.launcher = browser, l
	return browser, nil
}

func (f *RenderFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.browser == nil {
		return nil
	}
	err := f.browser.Close()
	f.launcher.Cleanup()
	f.browser, f.launcher = nil, nil
	return err
}
