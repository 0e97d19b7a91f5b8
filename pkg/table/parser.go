// Package table parses and renders the pipe-delimited markdown table
// of ranked repositories.
package table

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ranksync/ranksync/models"
)

// rowCellCount is the cell count produced by splitting a six-column
// row on "|": a leading and a trailing empty cell plus six fields.
const rowCellCount = 8

// linkPattern extracts name and url from a markdown link cell.
var linkPattern = regexp.MustCompile(`^\[(.*?)\]\((.+)\)$`)

// ParseLine classifies a single line of the source document.
//
// A line is a candidate data row when splitting on "|" yields exactly
// eight cells and the first field trims to a positive integer. Lines
// that are not candidates (prose, headings, the table header and
// alignment rows) return ok=false with a nil skip. A candidate row
// whose link cell does not match [name](url) returns a RowSkip.
func ParseLine(line string, lineNo int) (entry models.Entry, ok bool, skip *models.RowSkip) {
	if !strings.HasPrefix(line, "|") {
		return models.Entry{}, false, nil
	}
	cells := strings.Split(line, "|")
	if len(cells) != rowCellCount {
		return models.Entry{}, false, nil
	}
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if cells[0] != "" || cells[7] != "" {
		return models.Entry{}, false, nil
	}

	rank, err := strconv.Atoi(cells[1])
	if err != nil || rank <= 0 {
		return models.Entry{}, false, nil
	}

	m := linkPattern.FindStringSubmatch(cells[2])
	if m == nil {
		return models.Entry{}, false, &models.RowSkip{Line: lineNo, Reason: "malformed link cell: " + cells[2]}
	}

	stars, err := parseStars(cells[4])
	if err != nil || stars < 0 {
		return models.Entry{}, false, &models.RowSkip{Line: lineNo, Reason: "malformed star count: " + cells[4]}
	}

	return models.Entry{
		Rank:        rank,
		Name:        m[1],
		URL:         m[2],
		Description: cells[3],
		Stars:       stars,
		Language:    cells[5],
		Updated:     cells[6],
	}, true, nil
}

// Parse extracts every entry from a document. Skips are collected in
// order; non-row lines are ignored.
func Parse(doc string) ([]models.Entry, []models.RowSkip) {
	var entries []models.Entry
	var skips []models.RowSkip
	for i, line := range strings.Split(doc, "\n") {
		entry, ok, skip := ParseLine(line, i+1)
		if skip != nil {
			skips = append(skips, *skip)
			continue
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, skips
}

// parseStars accepts both plain integers and the abbreviated "<n>.<d>k"
// form, so destination documents round-trip through the parser.
func parseStars(cell string) (int, error) {
	if s, ok := strings.CutSuffix(cell, "k"); ok {
		whole, frac, found := strings.Cut(s, ".")
		w, err := strconv.Atoi(whole)
		if err != nil {
			return 0, err
		}
		if !found {
			return w * 1000, nil
		}
		f, err := strconv.Atoi(frac)
		if err != nil || len(frac) != 1 {
			return 0, strconv.ErrSyntax
		}
		return w*1000 + f*100, nil
	}
	return strconv.Atoi(cell)
}
