package render

import (
	"context"
	"io"
	"net/http"
	"time"

	"momentum-studio/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
)

// baseStylesheet is the embedded fallback for the exported document's
// <style> block. The table layout itself never depends on it; every element
// carries inline styles for clients that strip the head entirely.
const baseStylesheet = `body { margin: 0; padding: 0; background: #ffffff; }
table { border-collapse: collapse; }
img { border: 0; outline: none; text-decoration: none; }
a { color: #3366FF; }
.newsletter-takeaway { font-weight: bold; }`

const stylesheetCacheKey = "stylesheet"

// StylesheetLoader resolves the CSS embedded into exports. When an override
// URL is configured the fetched sheet is cached so repeated exports do not
// refetch it; any failure falls back to the embedded stylesheet.
type StylesheetLoader struct {
	url    string
	log    *logger.Logger
	client *http.Client
	cache  *gocache.Cache
}

// NewStylesheetLoader creates a stylesheet loader for the given override URL
// (empty for embedded-only).
func NewStylesheetLoader(url string, log *logger.Logger) *StylesheetLoader {
	return &StylesheetLoader{
		url:    url,
		log:    log,
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  gocache.New(15*time.Minute, 30*time.Minute),
	}
}

// Load returns the stylesheet to embed in the next export.
func (l *StylesheetLoader) Load(ctx context.Context) string {
	if l.url == "" {
		return baseStylesheet
	}
	if cached, found := l.cache.Get(stylesheetCacheKey); found {
		return cached.(string)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return baseStylesheet
	}
	resp, err := l.client.Do(req)
	if err != nil {
		l.log.Warn("Stylesheet fetch failed, using embedded stylesheet", logger.ErrorField(err))
		return baseStylesheet
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		l.log.Warn("Stylesheet fetch returned non-OK status, using embedded stylesheet",
			logger.Field("status_code", resp.StatusCode))
		return baseStylesheet
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return baseStylesheet
	}

	sheet := string(body)
	l.cache.Set(stylesheetCacheKey, sheet, gocache.DefaultExpiration)
	return sheet
}
