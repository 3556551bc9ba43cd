package http

import (
	"net/http"

	"momentum-studio/internal/studio/backend"
	"momentum-studio/internal/studio/dto"
	"momentum-studio/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ContentHandler proxies outline and newsletter actions to the backend.
type ContentHandler struct {
	client backend.Client
	logger *logger.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(client backend.Client, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{client: client, logger: logger}
}

// RegisterRoutes registers the outline and newsletter routes.
func (h *ContentHandler) RegisterRoutes(outlines, newsletters *echo.Group) {
	outlines.POST("/generate/:topicId", h.GenerateOutline)
	outlines.GET("/:id", h.GetOutline)

	newsletters.POST("/generate/:outlineId", h.GenerateNewsletter)
	newsletters.PUT("/:id/editor-notes", h.SaveEditorNotes)
	newsletters.POST("/:id/regenerate", h.RegenerateNewsletter)
}

// GenerateOutline triggers outline generation for a topic and returns the
// new outline's id; fetching the full record is a separate call.
func (h *ContentHandler) GenerateOutline(c echo.Context) error {
	topicID, ok := parseID(c, "topicId")
	if !ok {
		return badRequest(c, "Valid topic ID is required")
	}

	outlineID, err := h.client.GenerateOutline(c.Request().Context(), topicID)
	if err != nil {
		return writeUpstreamError(c, h.logger, "outline generation", err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"id": outlineID})
}

// GetOutline returns one full outline record.
func (h *ContentHandler) GetOutline(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Valid outline ID is required")
	}

	outline, err := h.client.GetOutline(c.Request().Context(), id)
	if err != nil {
		return writeUpstreamError(c, h.logger, "outline fetch", err)
	}
	return c.JSON(http.StatusOK, outline)
}

// GenerateNewsletter drafts a newsletter from an outline and returns the
// full generated record.
func (h *ContentHandler) GenerateNewsletter(c echo.Context) error {
	outlineID, ok := parseID(c, "outlineId")
	if !ok {
		return badRequest(c, "Valid outline ID is required")
	}

	newsletter, err := h.client.GenerateNewsletter(c.Request().Context(), outlineID)
	if err != nil {
		return writeUpstreamError(c, h.logger, "newsletter generation", err)
	}
	return c.JSON(http.StatusOK, newsletter)
}

// SaveEditorNotes persists editor notes and returns the updated newsletter.
func (h *ContentHandler) SaveEditorNotes(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Valid newsletter ID is required")
	}

	var req dto.EditorNotesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	newsletter, err := h.client.SaveEditorNotes(c.Request().Context(), id, req.EditorNotes)
	if err != nil {
		return writeUpstreamError(c, h.logger, "editor notes save", err)
	}
	return c.JSON(http.StatusOK, newsletter)
}

// RegenerateNewsletter re-drafts a newsletter from its persisted notes.
func (h *ContentHandler) RegenerateNewsletter(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Valid newsletter ID is required")
	}

	newsletter, err := h.client.RegenerateNewsletter(c.Request().Context(), id)
	if err != nil {
		return writeUpstreamError(c, h.logger, "newsletter regeneration", err)
	}
	return c.JSON(http.StatusOK, newsletter)
}
