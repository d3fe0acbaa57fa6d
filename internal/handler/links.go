package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"urlshortener/internal/domain"
	"urlshortener/internal/service"
)

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.urls.ValidateURL(req.LongURL); err != nil {
		return h.handleError(c, "create link", err)
	}

	var name *string
	if req.Name != nil {
		if n := strings.TrimSpace(*req.Name); n != "" {
			if err := h.aliases.ValidateAlias(n); err != nil {
				return h.handleError(c, "create link", err)
			}
			name = &n
		}
	}

	resp, err := h.links.Create(c.Request().Context(), req.LongURL, name)
	if err != nil {
		return h.handleError(c, "create link", err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Metadata(c echo.Context) error {
	resp, err := h.links.Metadata(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, "get metadata", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ResolveLink is the JSON flavour of Redirect for clients that navigate
// themselves.
func (h *Handler) ResolveLink(c echo.Context) error {
	longURL, err := h.links.Resolve(c.Request().Context(), c.Param("id"), visitFrom(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error":       "NOT_FOUND",
				"message":     errNotFound["message"],
				"redirect_to": h.notFoundPath,
			})
		}
		return h.handleError(c, "resolve link", err)
	}

	return c.JSON(http.StatusOK, domain.RedirectResponse{Message: msgRedirecting, LongURL: longURL})
}

func (h *Handler) Redirect(c echo.Context) error {
	id := c.Param("id")

	longURL, err := h.links.Resolve(c.Request().Context(), id, visitFrom(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Redirect(http.StatusFound, h.notFoundPath)
		}
		return h.handleError(c, "redirect", err)
	}

	h.recorder.RecordBusiness("referrer_redirects", 1, map[string]string{
		"referrer": extractDomain(c.Request().Referer()),
	})

	return c.Redirect(http.StatusFound, longURL)
}

func (h *Handler) Clicks(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil || limit < 0 {
		return c.JSON(http.StatusBadRequest, errInvalidLimit)
	}

	resp, err := h.links.Clicks(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return h.handleError(c, "list clicks", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func visitFrom(c echo.Context) domain.Visit {
	ua := c.Request().UserAgent()
	if ua == "" {
		ua = "unknown"
	}
	return domain.Visit{ClientIP: c.RealIP(), UserAgent: ua}
}
