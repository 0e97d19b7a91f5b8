package table

import (
	"fmt"
	"regexp"

	"github.com/ranksync/ranksync/models"
)

// Header is the fixed two-line table header emitted ahead of data rows.
var Header = [2]string{
	"| Rank | Repository | Description | Stars | Language | Updated |",
	"| ---- | ---------- | ----------- | ----- | -------- | ------- |",
}

var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// FormatStars abbreviates a star count for display. Counts of 1000 and
// above truncate to one decimal of thousands with a "k" suffix.
func FormatStars(stars int) string {
	if stars < 1000 {
		return fmt.Sprintf("%d", stars)
	}
	return fmt.Sprintf("%d.%dk", stars/1000, (stars%1000)/100)
}

// FormatDate rewrites a YYYY-MM-DD date to MM/DD under DateStyleShort.
// Under DateStyleISO, and for any input that is not a YYYY-MM-DD date,
// the input passes through unchanged.
func FormatDate(date string, style models.DateStyle) string {
	if style != models.DateStyleShort {
		return date
	}
	m := isoDatePattern.FindStringSubmatch(date)
	if m == nil {
		return date
	}
	return m[2] + "/" + m[3]
}

// FormatDescription truncates a description beyond limit runes,
// appending an ellipsis marker.
func FormatDescription(desc string, limit int) string {
	runes := []rune(desc)
	if len(runes) <= limit {
		return desc
	}
	return string(runes[:limit]) + "..."
}

// RenderRow emits a destination-document data row with display
// formatting applied.
func RenderRow(e models.Entry, style models.DateStyle, descLimit int) string {
	return fmt.Sprintf("| %d | [%s](%s) | %s | %s | %s | %s |",
		e.Rank, e.Name, e.URL,
		FormatDescription(e.Description, descLimit),
		FormatStars(e.Stars),
		e.Language,
		FormatDate(e.Updated, style))
}

// RenderSourceRow emits a row in the source document's own format:
// raw star count, untouched description and date. Used when the
// refresh command rewrites the source table in place.
func RenderSourceRow(e models.Entry) string {
	return fmt.Sprintf("| %d | [%s](%s) | %s | %d | %s | %s |",
		e.Rank, e.Name, e.URL, e.Description, e.Stars, e.Language, e.Updated)
}
