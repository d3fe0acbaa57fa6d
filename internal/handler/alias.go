package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"urlshortener/internal/domain"
	"urlshortener/internal/validation"
)

// SuggestAliases accepts long_url and count either as query parameters or
// in a JSON body; the body wins when both are present.
func (h *Handler) SuggestAliases(c echo.Context) error {
	req := domain.SuggestRequest{Count: defaultSuggestions}

	binder := &echo.DefaultBinder{}
	if err := binder.BindQueryParams(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if err := binder.BindBody(c, &req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	if err := h.urls.ValidateURL(req.LongURL); err != nil {
		return h.handleError(c, "suggest aliases", err)
	}
	if err := validation.ValidateCount(req.Count); err != nil {
		return h.handleError(c, "suggest aliases", err)
	}

	resp, err := h.suggestions.Suggest(c.Request().Context(), req.LongURL, req.Count)
	if err != nil {
		return h.handleError(c, "suggest aliases", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) CheckAlias(c echo.Context) error {
	alias := c.QueryParam("alias")
	if err := h.aliases.ValidateAlias(alias); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":        "BAD_REQUEST",
			"reason":       err.Error(),
			"alias":        alias,
			"is_available": false,
		})
	}

	resp, err := h.links.CheckAlias(c.Request().Context(), alias)
	if err != nil {
		return h.handleError(c, "check alias", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) CheckURL(c echo.Context) error {
	target := c.QueryParam("url")
	if err := h.urls.ValidateURL(target); err != nil {
		return h.handleError(c, "check url", err)
	}

	if err := h.prober.Probe(c.Request().Context(), target); err != nil {
		h.logger.Debug("url probe failed", slog.String("url", target), slog.String("error", err.Error()))
		return c.JSON(http.StatusNotFound, errURLUnreachable)
	}

	return c.JSON(http.StatusOK, domain.URLExistenceResponse{
		Exists:  true,
		LongURL: target,
		Message: msgURLReachable,
	})
}
