package http

import (
	"net/http"
	"strconv"

	"momentum-studio/internal/studio/backend"
	"momentum-studio/internal/studio/dto"
	"momentum-studio/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TopicHandler proxies topic actions to the content backend.
type TopicHandler struct {
	client backend.Client
	logger *logger.Logger
	limit  int
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(client backend.Client, logger *logger.Logger, defaultLimit int) *TopicHandler {
	return &TopicHandler{client: client, logger: logger, limit: defaultLimit}
}

// RegisterRoutes registers the topic routes to the Echo group.
func (h *TopicHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListTopics)
	g.POST("/generate", h.GenerateTopics)
	g.PUT("/:id/choose", h.ChooseTopic)
}

// ListTopics returns the current topic suggestions, newest first.
func (h *TopicHandler) ListTopics(c echo.Context) error {
	limit := h.limit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "Invalid limit")
		}
		limit = parsed
	}

	topics, err := h.client.ListTopics(c.Request().Context(), limit)
	if err != nil {
		return writeUpstreamError(c, h.logger, "topic list", err)
	}
	return c.JSON(http.StatusOK, topics)
}

// GenerateTopics triggers topic generation upstream. The optional body
// carries custom context that widens the generation data window.
func (h *TopicHandler) GenerateTopics(c echo.Context) error {
	var req dto.GenerateTopicsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if err := h.client.GenerateTopics(c.Request().Context(), req.CustomContext); err != nil {
		return writeUpstreamError(c, h.logger, "topic generation", err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "triggered"})
}

// ChooseTopic marks one suggestion as chosen and returns the updated record
// so the caller can patch its local copy with the authoritative chosen_at.
func (h *TopicHandler) ChooseTopic(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Valid topic ID is required")
	}

	topic, err := h.client.ChooseTopic(c.Request().Context(), id)
	if err != nil {
		return writeUpstreamError(c, h.logger, "topic choose", err)
	}
	return c.JSON(http.StatusOK, topic)
}
