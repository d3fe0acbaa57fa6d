package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"urlshortener/internal/service"
	"urlshortener/internal/validation"
)

var (
	errInvalidBody    = map[string]string{"error": "BAD_REQUEST", "reason": "invalid request body"}
	errURLRequired    = map[string]string{"error": "BAD_REQUEST", "reason": "url is required"}
	errInvalidURL     = map[string]string{"error": "BAD_REQUEST", "reason": "invalid url format"}
	errUnsafeURL      = map[string]string{"error": "BAD_REQUEST", "reason": "url protocol not allowed"}
	errURLTooLong     = map[string]string{"error": "BAD_REQUEST", "reason": "url exceeds maximum length"}
	errPrivateIP      = map[string]string{"error": "BAD_REQUEST", "reason": "private ip addresses not allowed"}
	errInvalidCount   = map[string]string{"error": "BAD_REQUEST", "reason": "Count must be between 1 and 10"}
	errInvalidLimit   = map[string]string{"error": "BAD_REQUEST", "reason": "limit must be a positive integer"}
	errAliasConflict  = map[string]string{"error": "ALIAS_CONFLICT", "reason": "Name already occupied, try a different name"}
	errNotFound       = map[string]string{"error": "NOT_FOUND", "message": "The requested URL was not found"}
	errURLUnreachable = map[string]string{"error": "NOT_FOUND", "message": "The provided URL does not exist or is unreachable"}
	errUpstreamFetch  = map[string]string{"error": "UPSTREAM_FETCH_ERROR", "message": "The provided URL does not exist or is unreachable"}
	errGeneration     = map[string]string{"error": "AI_ERROR", "message": "Failed to generate alias suggestions from AI"}
	errStoreDown      = map[string]string{"error": "STORE_UNAVAILABLE", "message": "storage is temporarily unavailable"}
	errInternal       = map[string]string{"error": "INTERNAL_ERROR", "message": "internal server error"}
	respHealthOK      = map[string]string{"status": "ok", "message": "The server is running fine"}
)

const (
	msgRedirecting     = "Redirecting..."
	msgURLReachable    = "The provided URL exists and is reachable"
	defaultSuggestions = 3
)

type Handler struct {
	links        LinkService
	suggestions  SuggestionService
	urls         URLValidator
	aliases      AliasValidator
	prober       Prober
	recorder     BusinessRecorder
	logger       *slog.Logger
	notFoundPath string
}

func New(
	links LinkService,
	suggestions SuggestionService,
	urls URLValidator,
	aliases AliasValidator,
	prober Prober,
	recorder BusinessRecorder,
	logger *slog.Logger,
	notFoundPath string,
) *Handler {
	return &Handler{
		links:        links,
		suggestions:  suggestions,
		urls:         urls,
		aliases:      aliases,
		prober:       prober,
		recorder:     recorder,
		logger:       logger,
		notFoundPath: notFoundPath,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/404", h.NotFound)

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/url/create", h.CreateLink)
	api.GET("/url/check", h.CheckURL)
	api.GET("/url/:id/metadata", h.Metadata)
	api.GET("/url/:id/redirect", h.ResolveLink)
	api.GET("/url/:id/clicks", h.Clicks)
	api.POST("/alias/suggest", h.SuggestAliases)
	api.GET("/alias/check", h.CheckAlias)

	e.GET("/:id", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errNotFound)
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}

// handleError maps every error kind to its response.
func (h *Handler) handleError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, validation.ErrInvalidURLFormat):
		return c.JSON(http.StatusBadRequest, errInvalidURL)
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return c.JSON(http.StatusBadRequest, errUnsafeURL)
	case errors.Is(err, validation.ErrURLTooLong):
		return c.JSON(http.StatusBadRequest, errURLTooLong)
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return c.JSON(http.StatusBadRequest, errPrivateIP)
	case errors.Is(err, validation.ErrAliasLength),
		errors.Is(err, validation.ErrAliasCharset),
		errors.Is(err, validation.ErrAliasReserved):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "BAD_REQUEST", "reason": err.Error()})
	case errors.Is(err, validation.ErrInvalidCount):
		return c.JSON(http.StatusBadRequest, errInvalidCount)
	case errors.Is(err, service.ErrAliasConflict):
		return c.JSON(http.StatusConflict, errAliasConflict)
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errNotFound)
	case errors.Is(err, service.ErrUpstreamFetch):
		h.logger.Warn(op+" failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadGateway, errUpstreamFetch)
	case errors.Is(err, service.ErrGeneration):
		h.logger.Error(op+" failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadGateway, errGeneration)
	case errors.Is(err, service.ErrStoreUnavailable):
		h.logger.Error(op+" failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, errStoreDown)
	default:
		h.logger.Error(op+" failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}
}
