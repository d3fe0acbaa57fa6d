package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"urlshortener/internal/cache"
	"urlshortener/internal/config"
	"urlshortener/internal/fetch"
	"urlshortener/internal/handler"
	"urlshortener/internal/metrics"
	"urlshortener/internal/middleware"
	"urlshortener/internal/repository"
	"urlshortener/internal/service"
	"urlshortener/internal/shortener"
	"urlshortener/internal/suggest"
	"urlshortener/internal/validation"
)

const infraSampleInterval = 10 * time.Second

// store is what main needs from either repository backend.
type store interface {
	service.Store
	PoolStats() repository.PoolStats
	Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	links, sink, err := openStore(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer links.Close()

	recorder := metrics.NewRecorder(sink, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	local, err := cache.NewLocal(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer local.Close()

	var remote *cache.Redis
	if cfg.Cache.RedisURL != "" {
		remote, err = cache.NewRedis(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer remote.Close() //nolint:errcheck
		logger.Info("redis cache enabled")
	}
	linkCache := cache.NewTiered(local, remote, logger)

	go collectInfraMetrics(ctx, recorder, links, linkCache)

	refs, err := shortener.NewRefEncoder()
	if err != nil {
		return fmt.Errorf("failed to create ref encoder: %w", err)
	}

	// redirects are held to the same host rule as submitted URLs
	var guard fetch.HostChecker
	if !cfg.Validation.AllowPrivateIPs {
		guard = validation.NewHostGuard()
	}

	fetcher, err := newFetcher(&cfg.Fetch, guard, logger)
	if err != nil {
		return err
	}
	if c, ok := fetcher.(io.Closer); ok {
		defer c.Close() //nolint:errcheck
	}

	// a typed nil *Gemini would not compare equal to nil inside the service
	var generator service.Generator
	if cfg.Suggest.APIKey != "" {
		gemini, err := suggest.NewGemini(ctx, &cfg.Suggest)
		if err != nil {
			return fmt.Errorf("failed to create suggestion client: %w", err)
		}
		generator = gemini
	} else {
		logger.Warn("GOOGLE_API_KEY not set, alias suggestions disabled")
	}

	urlValidator := validation.NewURLValidator(cfg.Validation.MaxURLLength, cfg.Validation.AllowPrivateIPs)
	aliasValidator := validation.NewAliasValidator()

	linkService := service.NewLinkService(links, linkCache, shortener.New(), refs, urlValidator, aliasValidator, recorder, logger, &cfg.App)
	suggestionService := service.NewSuggestionService(fetcher, generator, links, aliasValidator, recorder, logger, &cfg.Suggest)

	h := handler.New(
		linkService,
		suggestionService,
		urlValidator,
		aliasValidator,
		fetch.NewProber(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, guard),
		recorder,
		logger,
		cfg.App.NotFoundPath,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	e.Use(echomw.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.Metrics(recorder))

	h.Register(e)

	if cfg.Pprof.Enabled {
		middleware.RegisterPprof(e, cfg.Pprof.Secret)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	return serve(ctx, e, cfg, logger)
}

func openStore(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (store, metrics.Sink, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := repository.NewSQLiteStore(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		if cfg.AutoMigrate {
			if err := s.Migrate(logger); err != nil {
				s.Close()
				return nil, nil, err
			}
		}
		return s, metrics.NewSQLSink(s.DB()), nil
	default:
		if cfg.AutoMigrate {
			if err := repository.MigratePostgres(cfg.URL, logger); err != nil {
				return nil, nil, err
			}
		}
		s, err := repository.NewPostgresStore(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return s, metrics.NewPostgresSink(s.Pool()), nil
	}
}

func newFetcher(cfg *config.FetchConfig, guard fetch.HostChecker, logger *slog.Logger) (service.PageFetcher, error) {
	switch cfg.Mode {
	case config.FetchModeHTTP:
		return fetch.NewHTTPFetcher(cfg.Timeout, cfg.UserAgent, guard), nil
	case config.FetchModeRender:
		logger.Info("page fetching via headless browser")
		return fetch.NewRenderFetcher(cfg.BrowserBin, cfg.Timeout, cfg.UserAgent, guard, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFetchMode, cfg.Mode)
	}
}

func newHTTPServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   45 * time.Second, // suggestion requests wait on the model
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func listen(addr string, maxConns int) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return ln, nil
}

func serve(ctx context.Context, e *echo.Echo, cfg *config.Config, logger *slog.Logger) error {
	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("driver", cfg.Database.Driver),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	httpServer := newHTTPServer(e)
	go func() {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server", slog.String("addr", httpsAddr))

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})

		httpsServer = newHTTPServer(e)
		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, links store, linkCache *cache.Tiered) {
	ticker := time.NewTicker(infraSampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pool := links.PoolStats()
			cacheHits, cacheMisses, cacheRatio := linkCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				PoolAcquired:  pool.Acquired,
				PoolIdle:      pool.Idle,
				PoolTotal:     pool.Total,
				PoolMax:       pool.Max,
				CacheHits:     int64(cacheHits),
				CacheMisses:   int64(cacheMisses),
				CacheHitRatio: cacheRatio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
