package render

import (
	"strings"
	"testing"
	"time"

	"momentum-studio/internal/entity"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() *Renderer {
	r := NewRenderer(14, 10)
	r.now = func() time.Time {
		return time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	}
	return r
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func fullInput() Input {
	return Input{
		Newsletter: &entity.GeneratedNewsletter{
			ID:          9,
			OutlineID:   4,
			Section1:    entity.ContentSection{Title: "The Big Picture", Content: "<p>Banks are consolidating.</p>"},
			Section2:    entity.ContentSection{Title: "Why It Matters For Banking", Content: "<p>Margins compress.</p>"},
			Section3:    entity.ContentSection{Title: "Second Order Effects", Content: "<p>Vendors reprice.</p>"},
			Section4:    entity.ContentSection{Title: "What To Watch", Content: "<p>Earnings season.</p>"},
			KeyTakeaway: "Scale wins.",
			EditorNotes: strPtr("Lead with the data. Keep it tight."),
		},
		DeepDives: &entity.DeepDiveSet{
			ArticleDeepDive: &entity.DeepDive{
				Title:     "The Agentic Shift",
				Content:   "Banks rebuild around agents.",
				SourceURL: strPtr("https://example.com/report"),
			},
		},
		Movers: []entity.JobTrackingEntry{
			{FullName: "Jordan Lee", BankName: "First National", RoleTitle: "CDO", AppointmentDate: strPtr("2025-08-28")},
		},
		Events: []entity.UpcomingEvent{
			{ID: 1, EventName: strPtr("Money20/20"), EventDate: strPtr("2025-10-26"), Territory: strPtr("USA")},
		},
	}
}

func TestDocument_IsSelfContainedHTML(t *testing.T) {
	r := newTestRenderer()
	out := r.Document(fullInput(), "body { margin: 0; }")

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `<meta charset="UTF-8">`)
	assert.Contains(t, out, "<title>Imported Newsletter</title>")
	assert.Contains(t, out, "body { margin: 0; }")

	doc := parseDoc(t, out)
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestBody_MastheadAndFurniture(t *testing.T) {
	r := newTestRenderer()
	doc := parseDoc(t, r.Body(fullInput()))

	assert.Equal(t, "MOMENTUM", doc.Find("h1").Text())
	assert.Contains(t, doc.Text(), "Tim Rutten")
	assert.Contains(t, doc.Text(), "Want to dive deeper?")
	assert.Contains(t, doc.Text(), "© Backbase")
}

func TestBody_SectionTitlesAreSentenceCased(t *testing.T) {
	r := newTestRenderer()
	doc := parseDoc(t, r.Body(fullInput()))

	titles := doc.Find("h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Contains(t, titles, "The big picture")
	assert.Contains(t, titles, "Why it matters for banking")
	assert.NotContains(t, titles, "The Big Picture")
}

func TestBody_EmptySectionIsOmitted(t *testing.T) {
	in := fullInput()
	in.Newsletter.Section3 = entity.ContentSection{Title: "Second Order Effects", Content: ""}
	in.Newsletter.Section4 = entity.ContentSection{Title: "", Content: "<p>orphan body</p>"}

	r := newTestRenderer()
	body := r.Body(in)

	assert.NotContains(t, body, "Second order effects")
	assert.NotContains(t, body, "orphan body")
}

func TestBody_EditorNotesEmphasized(t *testing.T) {
	r := newTestRenderer()
	doc := parseDoc(t, r.Body(fullInput()))

	assert.Contains(t, doc.Text(), "Editor's notes")
	strong := doc.Find("strong").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Contains(t, strong, "Lead with the data.")
}

func TestBody_EditorNotesOmittedWhenAbsent(t *testing.T) {
	in := fullInput()
	in.Newsletter.EditorNotes = nil

	r := newTestRenderer()
	assert.NotContains(t, r.Body(in), "Editor&#39;s notes")
}

func TestBody_DeepDivesOmittedWhenEmpty(t *testing.T) {
	in := fullInput()
	in.DeepDives = nil

	r := newTestRenderer()
	assert.NotContains(t, r.Body(in), "This made us think")

	in.DeepDives = &entity.DeepDiveSet{MetaSuggestionID: 5}
	assert.NotContains(t, r.Body(in), "This made us think")
}

func TestBody_MoversFilteredByWindow(t *testing.T) {
	in := fullInput()
	in.Movers = []entity.JobTrackingEntry{
		{FullName: "Old Hire", BankName: "Legacy Bank", RoleTitle: "CRO", AppointmentDate: strPtr("2025-06-01")},
	}

	r := newTestRenderer()
	body := r.Body(in)

	assert.NotContains(t, body, "Movers &amp; Shakers")
	assert.NotContains(t, body, "Old Hire")
}

func TestBody_EventsWithProtectedDates(t *testing.T) {
	r := newTestRenderer()
	body := r.Body(fullInput())

	assert.Contains(t, body, "Upcoming events")
	assert.Contains(t, body, ">Money20/20</a>")
	assert.Contains(t, body, "October ​26, ​2025")
	assert.Contains(t, body, ", USA")
}

func TestBody_EventsWithoutNameSkipped(t *testing.T) {
	in := fullInput()
	in.Events = []entity.UpcomingEvent{{ID: 1, EventDate: strPtr("2025-10-26")}}

	r := newTestRenderer()
	assert.NotContains(t, r.Body(in), "Upcoming events")
}

func TestBody_NilNewsletterStillRendersFurniture(t *testing.T) {
	r := newTestRenderer()
	doc := parseDoc(t, r.Body(Input{}))

	assert.Equal(t, "MOMENTUM", doc.Find("h1").Text())
	assert.NotContains(t, doc.Text(), "Editor's notes")
	assert.Contains(t, doc.Text(), "Banking")
}
