package http

import (
	"net/http"
	"strconv"

	"momentum-studio/internal/studio/backend"
	"momentum-studio/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FeedsHandler proxies the supplemental feed endpoints the export draws
// from: deep dives, job tracking and upcoming events.
type FeedsHandler struct {
	client     backend.Client
	logger     *logger.Logger
	moversDays int
}

// NewFeedsHandler creates a new FeedsHandler.
func NewFeedsHandler(client backend.Client, logger *logger.Logger, moversDays int) *FeedsHandler {
	return &FeedsHandler{client: client, logger: logger, moversDays: moversDays}
}

// RegisterRoutes registers the feed routes.
func (h *FeedsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/deep-dives/:topicId/with-urls", h.DeepDives)
	g.GET("/job-tracking", h.JobTracking)
	g.GET("/events/upcoming", h.UpcomingEvents)
}

// DeepDives returns the deep dive set for a topic with source URLs resolved.
func (h *FeedsHandler) DeepDives(c echo.Context) error {
	topicID, ok := parseID(c, "topicId")
	if !ok {
		return badRequest(c, "Valid topic ID is required")
	}

	dives, err := h.client.DeepDivesWithURLs(c.Request().Context(), topicID)
	if err != nil {
		return writeUpstreamError(c, h.logger, "deep dive fetch", err)
	}
	return c.JSON(http.StatusOK, dives)
}

// JobTracking returns recent appointment entries. The days_old query
// parameter narrows the window; it defaults to the movers window.
func (h *FeedsHandler) JobTracking(c echo.Context) error {
	daysOld := h.moversDays
	if raw := c.QueryParam("days_old"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "days_old must be a positive integer")
		}
		daysOld = parsed
	}

	entries, err := h.client.JobTracking(c.Request().Context(), daysOld)
	if err != nil {
		return writeUpstreamError(c, h.logger, "job tracking fetch", err)
	}
	return c.JSON(http.StatusOK, entries)
}

// UpcomingEvents returns the upcoming events feed.
func (h *FeedsHandler) UpcomingEvents(c echo.Context) error {
	events, err := h.client.UpcomingEvents(c.Request().Context())
	if err != nil {
		return writeUpstreamError(c, h.logger, "events fetch", err)
	}
	return c.JSON(http.StatusOK, events)
}
