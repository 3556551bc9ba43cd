package http

import (
	"fmt"
	"net/http"

	"momentum-studio/internal/studio/config"
	"momentum-studio/internal/studio/dto"
	"momentum-studio/internal/studio/render"
	"momentum-studio/internal/studio/workflow"
	"momentum-studio/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the server-side workflow session: the step machine,
// its store snapshots and the newsletter export download.
type SessionHandler struct {
	controller *workflow.Controller
	renderer   *render.Renderer
	stylesheet *render.StylesheetLoader
	cfg        *config.Config
	logger     *logger.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(controller *workflow.Controller, renderer *render.Renderer,
	stylesheet *render.StylesheetLoader, cfg *config.Config, logger *logger.Logger) *SessionHandler {
	return &SessionHandler{
		controller: controller,
		renderer:   renderer,
		stylesheet: stylesheet,
		cfg:        cfg,
		logger:     logger,
	}
}

// RegisterRoutes registers the session routes.
func (h *SessionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSession)
	g.POST("/bootstrap", h.Bootstrap)
	g.POST("/topics/refresh", h.RefreshTopics)
	g.POST("/topics/generate", h.GenerateTopics)
	g.PUT("/topics/:id/select", h.SelectTopic)
	g.POST("/outline/generate", h.GenerateOutline)
	g.POST("/newsletter/submit", h.SubmitNewsletter)
	g.PUT("/newsletter/editor-notes", h.SaveEditorNotes)
	g.POST("/newsletter/regenerate", h.RegenerateNewsletter)
	g.POST("/back", h.BackToSelection)
	g.POST("/reset", h.Reset)
	g.GET("/export", h.Export)
}

// GetSession returns the full workflow snapshot.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, h.snapshot())
}

// Bootstrap performs the initial topic and feed pull and returns the
// resulting snapshot. Feed failures land on their stores, not here.
func (h *SessionHandler) Bootstrap(c echo.Context) error {
	h.controller.Bootstrap(c.Request().Context())
	return c.JSON(http.StatusOK, h.snapshot())
}

// RefreshTopics refetches the topic list.
func (h *SessionHandler) RefreshTopics(c echo.Context) error {
	h.controller.RefreshTopics(c.Request().Context())
	return c.JSON(http.StatusOK, h.snapshot())
}

// GenerateTopics triggers topic generation with optional custom context.
func (h *SessionHandler) GenerateTopics(c echo.Context) error {
	var req dto.GenerateTopicsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	h.controller.GenerateTopics(c.Request().Context(), req.CustomContext)
	return c.JSON(http.StatusOK, h.snapshot())
}

// SelectTopic toggles the topic selection. Selecting the already selected
// topic deselects it and tears down downstream state.
func (h *SessionHandler) SelectTopic(c echo.Context) error {
	topicID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Valid topic ID is required")
	}
	h.controller.SelectTopic(c.Request().Context(), topicID)
	return c.JSON(http.StatusOK, h.snapshot())
}

// GenerateOutline runs outline generation for the selected topic.
func (h *SessionHandler) GenerateOutline(c echo.Context) error {
	if _, err := h.controller.GenerateOutline(c.Request().Context()); err != nil {
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

// SubmitNewsletter drafts the newsletter from the current outline and, on
// success, advances the workflow to the writing step.
func (h *SessionHandler) SubmitNewsletter(c echo.Context) error {
	if err := h.controller.SubmitNewsletter(c.Request().Context()); err != nil {
		if err == workflow.ErrNoOutline {
			return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
		}
		// Generation itself failed; the workflow stays at the outline step
		// with the error recorded, so the snapshot carries the details.
		return c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

// SaveEditorNotes updates the notes input and persists it when it differs
// from the already saved notes.
func (h *SessionHandler) SaveEditorNotes(c echo.Context) error {
	var req dto.EditorNotesRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	h.controller.Newsletter.SetNotesInput(req.EditorNotes)
	if err := h.controller.SaveNotes(c.Request().Context()); err != nil {
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

// RegenerateNewsletter re-drafts the newsletter from its saved editor notes.
func (h *SessionHandler) RegenerateNewsletter(c echo.Context) error {
	if err := h.controller.Regenerate(c.Request().Context()); err != nil {
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, h.snapshot())
}

// BackToSelection returns the workflow to topic selection. The topic list
// and selection survive; outline and newsletter state do not.
func (h *SessionHandler) BackToSelection(c echo.Context) error {
	h.controller.BackToSelection()
	return c.JSON(http.StatusOK, h.snapshot())
}

// Reset clears the entire session back to its zero state.
func (h *SessionHandler) Reset(c echo.Context) error {
	h.controller.Reset()
	return c.JSON(http.StatusOK, h.snapshot())
}

// Export renders the current newsletter as a self-contained HTML file and
// returns it as a download. It refuses while any feed fetch is still in
// flight rather than exporting partial data.
func (h *SessionHandler) Export(c echo.Context) error {
	if h.controller.FeedsLoading() {
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Feeds are still loading, try again shortly"})
	}

	newsletter := h.controller.Newsletter.Newsletter()
	if newsletter == nil {
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "No newsletter has been generated yet"})
	}

	in := render.Input{
		Newsletter: newsletter,
		DeepDives:  h.controller.DeepDives.State().Set,
		Movers:     h.controller.Jobs.State().Entries,
		Events:     h.controller.Events.State().Events,
	}
	stylesheet := h.stylesheet.Load(c.Request().Context())
	document := h.renderer.Document(in, stylesheet)

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", h.cfg.Studio.ExportFilename))
	return c.Blob(http.StatusOK, echo.MIMETextHTMLCharsetUTF8, []byte(document))
}

func (h *SessionHandler) snapshot() dto.SessionResponse {
	topics := h.controller.Topics.State()
	outline := h.controller.Outline.State()
	newsletter := h.controller.Newsletter.State()
	deepDives := h.controller.DeepDives.State()
	jobs := h.controller.Jobs.State()
	events := h.controller.Events.State()

	return dto.SessionResponse{
		Step: string(h.controller.Step()),
		Topics: dto.TopicsView{
			Topics:          topics.Topics,
			SelectedTopicID: topics.SelectedTopicID,
			IsLoading:       topics.IsLoading,
			IsGenerating:    topics.IsGenerating,
			Error:           topics.Err,
			IsChoosing:      topics.IsChoosing,
			ChooseError:     topics.ChooseErr,
		},
		Outline: dto.OutlineView{
			Outline:   outline.Outline,
			IsLoading: outline.IsLoading,
			Error:     outline.Err,
		},
		Newsletter: dto.NewsletterView{
			Newsletter:     newsletter.Newsletter,
			NotesInput:     newsletter.NotesInput,
			IsLoading:      newsletter.IsLoading || newsletter.IsTriggering,
			TriggerError:   newsletter.TriggerErr,
			Error:          newsletter.Err,
			IsSavingNotes:  newsletter.IsSavingNotes,
			SaveNotesError: newsletter.SaveNotesErr,
			IsRegenerating: newsletter.IsRegenerating,
			RegenerateErr:  newsletter.RegenerateErr,
		},
		Feeds: dto.FeedsView{
			DeepDives:      deepDives.Set,
			JobEntries:     jobs.Entries,
			UpcomingEvents: events.Events,
			IsLoading:      deepDives.IsLoading || jobs.IsLoading || events.IsLoading,
		},
	}
}
