package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"momentum-studio/internal/entity"
	"momentum-studio/pkg/utils"
)

// Input carries everything one newsletter render needs. Feeds that errored
// upstream arrive nil or empty and their sections are simply omitted; the
// exported artifact never shows an error.
type Input struct {
	Newsletter *entity.GeneratedNewsletter
	DeepDives  *entity.DeepDiveSet
	Movers     []entity.JobTrackingEntry
	Events     []entity.UpcomingEvent
}

// Renderer builds the newsletter markup. All layout is table-based with
// literal inline styles on each element; many email clients ignore modern
// CSS layout and some strip the document head.
type Renderer struct {
	moversDays int
	moversMax  int
	now        func() time.Time
}

// NewRenderer creates a renderer with the given movers recency window and
// display cap.
func NewRenderer(moversDays, moversMax int) *Renderer {
	return &Renderer{moversDays: moversDays, moversMax: moversMax, now: utils.TimeNowUTC}
}

// Document wraps the rendered newsletter body in a minimal self-contained
// HTML shell with the stylesheet inlined. The result is a complete UTF-8
// file with no external script dependencies.
func (r *Renderer) Document(in Input, stylesheet string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n<head>\n")
	b.WriteString(`    <meta charset="UTF-8">` + "\n")
	b.WriteString(`    <meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	b.WriteString("    <title>Imported Newsletter</title>\n")
	b.WriteString("    <style>\n" + stylesheet + "\n    </style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(r.Body(in))
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// Body renders the newsletter itself: masthead, editor notes, the generated
// sections, fixed author/podcast furniture, deep dives, movers, events and
// footer. Missing data renders nothing rather than an empty header.
func (r *Renderer) Body(in Input) string {
	var b strings.Builder

	b.WriteString(`<table width="100%" cellpadding="0" cellspacing="0" style="background: #ffffff;"><tr><td align="center">`)
	b.WriteString(`<table width="650" cellpadding="0" cellspacing="0" style="max-width: 650px; font-family: Arial, sans-serif; color: #000000; line-height: 1.5;">`)

	r.writeMasthead(&b)
	r.writeEditorNotes(&b, in.Newsletter)
	r.writeNewsletterSections(&b, in.Newsletter)
	r.writeAuthor(&b)
	r.writeDeepDives(&b, in.DeepDives)
	r.writePodcastPromo(&b)
	r.writeMovers(&b, in.Movers)
	r.writeEvents(&b, in.Events)
	r.writeFooter(&b)

	b.WriteString(`</table>`)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

func (r *Renderer) writeMasthead(b *strings.Builder) {
	b.WriteString(`<tr><td style="padding: 50px 0 40px 0;">`)
	b.WriteString(`<table width="100%" cellpadding="0" cellspacing="0">`)
	b.WriteString(`<tr><td align="left"><img src="https://ik.imagekit.io/h3u86kveh/3xBanking.png?updatedAt=1751637214695" alt="Banking Reinvented Logo" width="120" height="25" style="display: block; border: 0; outline: none;"></td></tr>`)
	b.WriteString(`<tr><td align="center"><h1 style="font-family: Arial, sans-serif; font-weight: 900; font-size: 79px; color: #000000; line-height: 1; margin: 0; padding: 0;">MOMENTUM</h1></td></tr>`)
	b.WriteString(`<tr><td align="right" style="padding-top: 10px;"><img src="https://ik.imagekit.io/h3u86kveh/3xbackbase.png?updatedAt=1751637267279" alt="by Backbase" width="76" height="16" style="display: inline-block; border: 0; outline: none;"></td></tr>`)
	b.WriteString(`</table>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writeEditorNotes(b *strings.Builder, newsletter *entity.GeneratedNewsletter) {
	if newsletter == nil || newsletter.EditorNotes == nil || *newsletter.EditorNotes == "" {
		return
	}
	b.WriteString(`<tr><td style="padding: 0 0 32px 0;">`)
	writeSectionTitle(b, "Editor&#39;s notes")
	b.WriteString(`<div style="font-size: 14px; color: #000000;">` + EmphasizeNotes(*newsletter.EditorNotes) + `</div>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writeNewsletterSections(b *strings.Builder, newsletter *entity.GeneratedNewsletter) {
	if newsletter == nil {
		return
	}
	writeContentSection(b, newsletter.Section1)
	writeContentSection(b, newsletter.Section2)
	writeContentSection(b, newsletter.Section3)
	writeContentSection(b, newsletter.Section4)

	if newsletter.KeyTakeaway != "" {
		b.WriteString(`<tr><td style="padding: 0 0 32px 0;">`)
		b.WriteString(`<p class="newsletter-takeaway" style="font-size: 14px; font-weight: bold; margin: 0;">` + newsletter.KeyTakeaway + `</p>`)
		b.WriteString(`</td></tr>`)
	}
}

// writeContentSection omits the whole block when title or content is
// missing; an empty header must never reach the email.
func writeContentSection(b *strings.Builder, section entity.ContentSection) {
	if section.Title == "" || section.Content == "" {
		return
	}
	b.WriteString(`<tr><td style="padding: 0 0 32px 0;">`)
	writeSectionTitle(b, html.EscapeString(SentenceCase(section.Title)))
	b.WriteString(`<div style="font-size: 14px; color: #000000;">` + section.Content + `</div>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writeAuthor(b *strings.Builder) {
	b.WriteString(`<tr><td style="padding: 0 0 32px 0;">`)
	b.WriteString(`<table cellpadding="0" cellspacing="0"><tr>`)
	b.WriteString(`<td width="100" valign="top"><img src="https://ik.imagekit.io/h3u86kveh/Tim%20Profile.png?updatedAt=1751884232601" alt="Tim Rutten" width="100" height="100" style="display: block; border: 0;"></td>`)
	b.WriteString(`<td style="padding-left: 20px; font-size: 14px; color: #000000;"><strong>Tim Rutten</strong><br>Chief Marketing Officer, Backbase<br><a href="https://www.linkedin.com/in/timrutten" target="_blank" rel="noopener noreferrer" style="color: #3366FF;">Editor of the Executive Briefing Newsletter</a></td>`)
	b.WriteString(`</tr></table>`)
	b.WriteString(`<p style="font-size: 12px; color: #000000; margin: 16px 0 0 0;">Ps. Did you get this email forwarded? Subscribe <a href="https://www.linkedin.com/in/timrutten" target="_blank" rel="noopener noreferrer" style="color: #3366FF;">here</a></p>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writeDeepDives(b *strings.Builder, dives *entity.DeepDiveSet) {
	if !dives.HasAny() {
		return
	}
	b.WriteString(`<tr><td style="padding: 0 0 32px 0;">`)
	writeHighlightTitle(b, "This made us think")
	b.WriteString(`<ol style="padding-left: 20px; margin: 0; font-size: 14px;">`)
	for _, dive := range []*entity.DeepDive{dives.ArticleDeepDive, dives.ResearchDeepDive, dives.PodcastDeepDive} {
		if dive == nil {
			continue
		}
		b.WriteString(`<li style="margin-bottom: 10px;"><p style="margin: 0;">` + DeepDiveLine(dive) + `</p></li>`)
	}
	b.WriteString(`</ol>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writePodcastPromo(b *strings.Builder) {
	b.WriteString(`<tr><td style="padding: 0 0 50px 0; border-bottom: 1px solid #E0E6EB;">`)
	b.WriteString(`<table width="100%" cellpadding="0" cellspacing="0"><tr>`)
	b.WriteString(`<td width="150" valign="middle" style="background: #000000; color: #ffffff; padding: 20px;">`)
	b.WriteString(`<img src="https://ik.imagekit.io/h3u86kveh/3xwave.png?updatedAt=1751637359774" alt="Podcast soundwave" width="37" height="17" style="display: block; border: 0;">`)
	b.WriteString(`<span style="display: block; font-family: Arial, sans-serif; font-weight: 600; font-size: 12px; color: #ffffff; line-height: 1.2; margin-top: 10px;">Banking<br>Reinvented</span>`)
	b.WriteString(`<span style="display: block; margin-top: 10px; font-size: 11px; color: #69FEFF;">The Podcast</span>`)
	b.WriteString(`</td>`)
	b.WriteString(`<td valign="middle" style="background: #A5FEFF; padding: 20px 34px; font-size: 14px;">`)
	b.WriteString(`<strong style="font-size: 14px;">Want to dive deeper?</strong> Go listen to our podcast Banking Reinvented where we explore the various trends reshaping banks.<br>`)
	b.WriteString(`<a href="http://rss.com/podcasts/banking-reinvented" target="_blank" rel="noopener noreferrer" style="font-size: 12px; color: #000000; font-weight: bold; text-decoration: none;"><strong style="font-size: 12px;">Listen here</strong></a>`)
	b.WriteString(`</td>`)
	b.WriteString(`</tr></table>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writeMovers(b *strings.Builder, movers []entity.JobTrackingEntry) {
	recent := RecentMovers(movers, r.moversDays, r.moversMax, r.now())
	if len(recent) == 0 {
		return
	}
	b.WriteString(`<tr><td style="padding: 50px 0 32px 0;">`)
	writeHighlightTitle(b, "Movers &amp; Shakers")
	b.WriteString(`<ul style="padding-left: 20px; margin: 0; font-size: 14px;">`)
	for _, entry := range recent {
		b.WriteString(`<li style="margin-bottom: 10px;">` + MoverLine(entry) + `</li>`)
	}
	b.WriteString(`</ul>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writeEvents(b *strings.Builder, events []entity.UpcomingEvent) {
	lines := make([]string, 0, len(events))
	for _, event := range events {
		if event.EventName == nil || *event.EventName == "" {
			continue
		}
		line := fmt.Sprintf(`<a href="https://www.backbase.com/events" target="_blank" rel="noopener noreferrer" style="color: %s;">%s</a>`,
			linkColor, html.EscapeString(*event.EventName))
		if event.EventDate != nil {
			if formatted := FormatEventDate(*event.EventDate); formatted != "" {
				line += ` &nbsp;&bull;&nbsp; ` + ProtectDate(formatted)
			}
		}
		if event.Territory != nil && *event.Territory != "" {
			line += `, ` + html.EscapeString(*event.Territory)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString(`<tr><td style="padding: 0 0 32px 0;">`)
	writeHighlightTitle(b, "Upcoming events")
	b.WriteString(`<ul style="padding-left: 20px; margin: 0; font-size: 14px;">`)
	for _, line := range lines {
		b.WriteString(`<li style="margin-bottom: 10px;">` + line + `</li>`)
	}
	b.WriteString(`</ul>`)
	b.WriteString(`</td></tr>`)
}

func (r *Renderer) writeFooter(b *strings.Builder) {
	b.WriteString(`<tr><td style="background: #F3F6F9; padding: 32px 42px; margin-top: 50px;">`)
	b.WriteString(`<p style="font-size: 12px; color: #000000; margin: 0 0 24px 0;">Want to talk more? <strong>Let&#39;s chat.</strong><br>All content in this newsletter was edited by Tim Rutten and the rest of the Backbase team. Sent by Backbase, Oosterdoksstraat 114, 1011 DK Amsterdam, The Netherlands</p>`)
	b.WriteString(`<table width="100%" cellpadding="0" cellspacing="0" style="border-top: 1px solid #E0E6EB;"><tr>`)
	b.WriteString(`<td style="font-size: 12px; color: #000000; padding-top: 24px;"><strong>&copy; Backbase</strong> &nbsp;&bull;&nbsp; All rights reserved</td>`)
	b.WriteString(`<td align="right" style="font-size: 12px; padding-top: 24px;"><a href="#" style="text-decoration: underline; color: #4E4E4E;">Unsubscribe</a> &nbsp;&bull;&nbsp; <a href="#" style="text-decoration: underline; color: #4E4E4E;">Manage preferences</a></td>`)
	b.WriteString(`</tr></table>`)
	b.WriteString(`</td></tr>`)
}

func writeSectionTitle(b *strings.Builder, title string) {
	b.WriteString(`<h2 style="font-family: Arial, sans-serif; font-size: 18px; font-weight: bold; color: #000000; margin: 0 0 12px 0;">` + title + `</h2>`)
}

func writeHighlightTitle(b *strings.Builder, title string) {
	b.WriteString(`<h2 style="font-family: Arial, sans-serif; font-size: 18px; font-weight: bold; color: #1345de; margin: 0 0 12px 0;">` + title + `</h2>`)
}
