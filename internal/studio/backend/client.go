package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"momentum-studio/internal/entity"
	"momentum-studio/internal/studio/config"
	"momentum-studio/pkg/logger"

	"golang.org/x/time/rate"
)

// Client is the HTTP client for the external content-generation API. Each
// method maps to exactly one backend action; responses pass through without
// schema transformation.
type Client interface {
	ListTopics(ctx context.Context, limit int) ([]entity.MetaSuggestion, error)
	GenerateTopics(ctx context.Context, customContext string) error
	ChooseTopic(ctx context.Context, id int64) (*entity.MetaSuggestion, error)
	GenerateOutline(ctx context.Context, topicID int64) (int64, error)
	GetOutline(ctx context.Context, id int64) (*entity.Outline, error)
	GenerateNewsletter(ctx context.Context, outlineID int64) (*entity.GeneratedNewsletter, error)
	SaveEditorNotes(ctx context.Context, id int64, notes string) (*entity.GeneratedNewsletter, error)
	RegenerateNewsletter(ctx context.Context, id int64) (*entity.GeneratedNewsletter, error)
	DeepDivesWithURLs(ctx context.Context, topicID int64) (*entity.DeepDiveSet, error)
	JobTracking(ctx context.Context, daysOld int) ([]entity.JobTrackingEntry, error)
	UpcomingEvents(ctx context.Context) ([]entity.UpcomingEvent, error)
}

type httpClient struct {
	baseURL           string
	skipTunnelWarning bool
	log               *logger.Logger
	client            *http.Client
	generateLimiter   *rate.Limiter
}

// NewClient creates a backend client from the service configuration.
// Generation triggers share one limiter so rapid re-triggers never stack up
// expensive LLM runs upstream.
func NewClient(cfg *config.Config, log *logger.Logger) (Client, error) {
	timeout, err := time.ParseDuration(cfg.Backend.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid backend timeout: %w", err)
	}
	interval := time.Duration(float64(time.Minute) / cfg.Backend.GenerateRatePerMin)
	return &httpClient{
		baseURL:           cfg.Backend.BaseURL,
		skipTunnelWarning: cfg.Backend.SkipTunnelWarning,
		log:               log,
		client:            &http.Client{Timeout: timeout},
		generateLimiter:   rate.NewLimiter(rate.Every(interval), cfg.Backend.GenerateBurst),
	}, nil
}

func (c *httpClient) ListTopics(ctx context.Context, limit int) ([]entity.MetaSuggestion, error) {
	body, err := c.send(ctx, http.MethodGet, fmt.Sprintf("/meta_suggestions?limit=%d", limit), nil)
	if err != nil {
		return nil, err
	}
	var topics []entity.MetaSuggestion
	if err := json.Unmarshal(body, &topics); err != nil {
		return nil, fmt.Errorf("failed to decode topics: %w", err)
	}
	return topics, nil
}

func (c *httpClient) GenerateTopics(ctx context.Context, customContext string) error {
	if err := c.generateLimiter.Wait(ctx); err != nil {
		return err
	}
	var payload interface{}
	if customContext != "" {
		payload = map[string]string{"custom_context": customContext}
	}
	_, err := c.send(ctx, http.MethodPost, "/pipelines/generate-meta-suggestions", payload)
	return err
}

func (c *httpClient) ChooseTopic(ctx context.Context, id int64) (*entity.MetaSuggestion, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/meta_suggestions/%d/choose", id), nil)
	if err != nil {
		return nil, err
	}
	var topic entity.MetaSuggestion
	if err := json.Unmarshal(body, &topic); err != nil {
		return nil, fmt.Errorf("failed to decode chosen topic: %w", err)
	}
	return &topic, nil
}

func (c *httpClient) GenerateOutline(ctx context.Context, topicID int64) (int64, error) {
	if err := validateID(topicID); err != nil {
		return 0, err
	}
	if err := c.generateLimiter.Wait(ctx); err != nil {
		return 0, err
	}
	body, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/pipelines/generate-article-outline/%d", topicID), nil)
	if err != nil {
		return 0, err
	}
	var ack struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return 0, fmt.Errorf("failed to decode outline trigger response: %w", err)
	}
	if ack.ID <= 0 {
		return 0, fmt.Errorf("outline generation did not return a new outline ID")
	}
	return ack.ID, nil
}

func (c *httpClient) GetOutline(ctx context.Context, id int64) (*entity.Outline, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodGet, fmt.Sprintf("/outlines/%d", id), nil)
	if err != nil {
		return nil, err
	}
	var outline entity.Outline
	if err := json.Unmarshal(body, &outline); err != nil {
		return nil, fmt.Errorf("failed to decode outline: %w", err)
	}
	return &outline, nil
}

func (c *httpClient) GenerateNewsletter(ctx context.Context, outlineID int64) (*entity.GeneratedNewsletter, error) {
	if err := validateID(outlineID); err != nil {
		return nil, err
	}
	if err := c.generateLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/newsletters/generate/%d", outlineID), nil)
	if err != nil {
		return nil, err
	}
	return decodeNewsletter(body)
}

func (c *httpClient) SaveEditorNotes(ctx context.Context, id int64, notes string) (*entity.GeneratedNewsletter, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	payload := map[string]string{"editor_notes": notes}
	body, err := c.send(ctx, http.MethodPut, fmt.Sprintf("/generated_newsletters/%d/editor_notes", id), payload)
	if err != nil {
		return nil, err
	}
	return decodeNewsletter(body)
}

func (c *httpClient) RegenerateNewsletter(ctx context.Context, id int64) (*entity.GeneratedNewsletter, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := c.generateLimiter.Wait(ctx); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodPost, fmt.Sprintf("/generated_newsletters/%d/regenerate", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeNewsletter(body)
}

func (c *httpClient) DeepDivesWithURLs(ctx context.Context, topicID int64) (*entity.DeepDiveSet, error) {
	if err := validateID(topicID); err != nil {
		return nil, err
	}
	body, err := c.send(ctx, http.MethodGet, fmt.Sprintf("/deep-dives/%d/with-urls", topicID), nil)
	if err != nil {
		return nil, err
	}
	var set entity.DeepDiveSet
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("failed to decode deep dives: %w", err)
	}
	return &set, nil
}

func (c *httpClient) JobTracking(ctx context.Context, daysOld int) ([]entity.JobTrackingEntry, error) {
	body, err := c.send(ctx, http.MethodGet, fmt.Sprintf("/job_tracking?days_old=%d", daysOld), nil)
	if err != nil {
		return nil, err
	}
	var entries []entity.JobTrackingEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode job tracking entries: %w", err)
	}
	return entries, nil
}

func (c *httpClient) UpcomingEvents(ctx context.Context) ([]entity.UpcomingEvent, error) {
	body, err := c.send(ctx, http.MethodGet, "/events/upcoming", nil)
	if err != nil {
		return nil, err
	}
	var events []entity.UpcomingEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// send issues one request against the backend and returns the raw 2xx body.
func (c *httpClient) send(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.skipTunnelWarning {
		req.Header.Set("ngrok-skip-browser-warning", "true")
	}
	if method == http.MethodGet {
		// Always observe current backend state; never serve a cached list.
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Backend request failed", logger.ErrorField(err), logger.Field("path", path))
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := newStatusError(resp.StatusCode, bodyBytes)
		c.log.Error("Backend returned error status",
			logger.Field("path", path),
			logger.Field("status_code", resp.StatusCode),
			logger.Field("message", statusErr.Message))
		return nil, statusErr
	}

	return bodyBytes, nil
}

func decodeNewsletter(body []byte) (*entity.GeneratedNewsletter, error) {
	var newsletter entity.GeneratedNewsletter
	if err := json.Unmarshal(body, &newsletter); err != nil {
		return nil, fmt.Errorf("failed to decode newsletter: %w", err)
	}
	return &newsletter, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid ID %d: must be a positive integer", id)
	}
	return nil
}
