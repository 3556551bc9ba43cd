// Package render produces the newsletter's email-safe HTML: an interactive
// preview body and the downloadable static document. Output fidelity matters
// more than elegance here; email clients only reliably render table layout
// and inline styles.
package render

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"momentum-studio/internal/entity"
	"momentum-studio/pkg/utils"
)

const linkColor = "#3366FF"

// zeroWidthSpace defeats email clients that rewrite anything shaped like a
// date into their own format.
const zeroWidthSpace = "​"

var (
	acronymAI  = regexp.MustCompile(`(?i)\bai\b`)
	firstStop  = regexp.MustCompile(`^[^.!?]*[.!?]`)
	digitGroup = regexp.MustCompile(`\d+`)
)

// SentenceCase lowercases a title-cased string, capitalizes the first rune,
// then restores "AI" to uppercase wherever it occurs as a whole word.
// Embedded occurrences ("maintain") are untouched.
func SentenceCase(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	result := strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
	return acronymAI.ReplaceAllString(result, "AI")
}

// EmphasizeNotes wraps the first sentence of the editor notes (text up to and
// including the first '.', '!' or '?') in <strong>; the remainder is left
// as-is. Without a sentence terminator the whole note is emphasized.
func EmphasizeNotes(notes string) string {
	if notes == "" {
		return ""
	}
	first := firstStop.FindString(notes)
	if first == "" {
		return "<strong>" + notes + "</strong>"
	}
	rest := strings.TrimSpace(notes[len(first):])
	if rest == "" {
		return "<strong>" + first + "</strong>"
	}
	return "<strong>" + first + "</strong> " + rest
}

// DeepDiveLine renders one deep dive as "{title}: {content}", hyperlinking
// the sentence-cased title to its source when a URL is present. Content is
// backend-produced HTML and passes through unchanged.
func DeepDiveLine(dive *entity.DeepDive) string {
	if dive == nil {
		return ""
	}
	title := SentenceCase(dive.Title)
	if dive.SourceURL != nil && *dive.SourceURL != "" {
		return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer" style="color: %s;">%s:</a> %s`,
			html.EscapeString(*dive.SourceURL), linkColor, html.EscapeString(title), dive.Content)
	}
	return fmt.Sprintf("%s: %s", html.EscapeString(title), dive.Content)
}

// MoverLine renders one personnel move as "{name} joins {bank} as {role}",
// hyperlinking the name when an announcement source URL is present.
func MoverLine(entry entity.JobTrackingEntry) string {
	name := html.EscapeString(entry.FullName)
	tail := fmt.Sprintf(" joins %s as %s", html.EscapeString(entry.BankName), html.EscapeString(entry.RoleTitle))
	if entry.NewsSourceURL != nil && *entry.NewsSourceURL != "" {
		return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer" style="color: %s;">%s</a>%s`,
			html.EscapeString(*entry.NewsSourceURL), linkColor, name, tail)
	}
	return "<strong>" + name + "</strong>" + tail
}

// RecentMovers filters entries to those with a parseable appointment date
// within the window ending at now, capped at max for display.
func RecentMovers(entries []entity.JobTrackingEntry, windowDays, max int, now time.Time) []entity.JobTrackingEntry {
	cutoff := now.AddDate(0, 0, -windowDays)
	recent := make([]entity.JobTrackingEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.AppointmentDate == nil {
			continue
		}
		appointed, err := utils.ParseBackendDate(*entry.AppointmentDate)
		if err != nil {
			continue
		}
		if appointed.Before(cutoff) {
			continue
		}
		recent = append(recent, entry)
		if len(recent) == max {
			break
		}
	}
	return recent
}

// FormatEventDate renders a backend date as a long-form UTC date, e.g.
// "June 18, 2025". Anchoring to UTC avoids the off-by-one-day shift a local
// timezone conversion would introduce. Unparseable input renders empty.
func FormatEventDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := utils.ParseBackendDate(value)
	if err != nil {
		return ""
	}
	return t.Format("January 2, 2006")
}

// ProtectDate prefixes each digit group with a zero-width space so email
// clients do not recognize and reformat the date pattern. The visible text
// is unchanged.
func ProtectDate(formatted string) string {
	return digitGroup.ReplaceAllStringFunc(formatted, func(group string) string {
		return zeroWidthSpace + group
	})
}
