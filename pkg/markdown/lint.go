package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderer is shared; goldmark.Markdown is safe for concurrent use.
var renderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// LintTable renders markdown and verifies that it produces a
// well-formed table: present, every row carrying exactly wantCols
// cells, and exactly wantRows data rows. Run against staged output
// before anything touches the filesystem.
func LintTable(source string, wantRows, wantCols int) error {
	var html bytes.Buffer
	if err := renderer.Convert([]byte(source), &html); err != nil {
		return fmt.Errorf("markdown render failed: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html.String()))
	if err != nil {
		return fmt.Errorf("rendered HTML unreadable: %w", err)
	}

	tables := doc.Find("table")
	if tables.Length() == 0 {
		return fmt.Errorf("no table rendered from staged markdown")
	}

	var lintErr error
	dataRows := 0
	tables.First().Find("tr").Each(func(i int, tr *goquery.Selection) {
		if lintErr != nil {
			return
		}
		cells := tr.Find("th,td").Length()
		if cells != wantCols {
			lintErr = fmt.Errorf("rendered row %d has %d cells, want %d", i, cells, wantCols)
			return
		}
		if tr.Find("td").Length() > 0 {
			dataRows++
		}
	})
	if lintErr != nil {
		return lintErr
	}

	if dataRows != wantRows {
		return fmt.Errorf("rendered table has %d data rows, want %d", dataRows, wantRows)
	}
	return nil
}
