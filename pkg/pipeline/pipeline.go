// Package pipeline runs the parse/format/split stages of a sync and
// stages the resulting documents in memory. It reads and writes no
// files itself: callers materialize the staged output only after every
// precondition has held, so a failed run leaves destinations untouched.
package pipeline

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ranksync/ranksync/models"
	"github.com/ranksync/ranksync/pkg/markdown"
	"github.com/ranksync/ranksync/pkg/table"
)

// StagedFile is a pending write: rendered content for a destination
// path, produced entirely in memory.
type StagedFile struct {
	Path    string
	Content []byte
}

// Report summarizes one pipeline run. Counters are returned here
// rather than accumulated in package state.
type Report struct {
	Processed    int
	Skips        []models.RowSkip
	HeadRows     int
	OverflowRows int
}

// Run parses the source table, formats and splits the entries, and
// splices them into the primary document, staging both destinations.
// primary is the current content of the primary document; its content
// outside the target section is preserved byte-for-byte.
func Run(cfg models.Config, source, primary string, logger *slog.Logger) (Report, []StagedFile, error) {
	entries, skips := table.Parse(source)
	report := Report{Processed: len(entries), Skips: skips}
	for _, s := range skips {
		logger.Warn("skipping unparseable row", "line", s.Line, "reason", s.Reason)
	}
	if len(entries) == 0 {
		return report, nil, fmt.Errorf("no table rows parsed from source")
	}
	logger.Info("parsed source table", "entries", len(entries), "skipped", len(skips))

	for i := 1; i < len(entries); i++ {
		if entries[i].Rank <= entries[i-1].Rank {
			logger.Warn("ranks are not strictly increasing",
				"rank", entries[i].Rank, "previous", entries[i-1].Rank)
		}
	}

	head := entries
	var overflow []models.Entry
	if len(entries) > cfg.HeadCount {
		head = entries[:cfg.HeadCount]
		overflow = entries[cfg.HeadCount:]
	}
	report.HeadRows = len(head)
	report.OverflowRows = len(overflow)

	section := buildSection(cfg, head, len(overflow) > 0)
	doc := markdown.NewDocument(primary)
	if err := doc.ReplaceSection(cfg.SectionHeading, section); err != nil {
		return report, nil, err
	}
	primaryOut := doc.String()

	if err := markdown.LintTable(renderLines(section), len(head), 6); err != nil {
		return report, nil, fmt.Errorf("primary document failed lint: %w", err)
	}

	staged := []StagedFile{{Path: cfg.PrimaryPath, Content: []byte(primaryOut)}}

	if len(overflow) > 0 {
		continuation := buildContinuation(cfg, overflow)
		if err := markdown.LintTable(continuation, len(overflow), 6); err != nil {
			return report, nil, fmt.Errorf("continuation document failed lint: %w", err)
		}
		staged = append(staged, StagedFile{Path: cfg.ContinuationPath, Content: []byte(continuation)})
	}

	logger.Info("staged destination documents",
		"head_rows", report.HeadRows, "overflow_rows", report.OverflowRows)
	return report, staged, nil
}

// buildSection renders the replacement span for the primary document:
// heading, blank line, header pair, head rows, and a pointer to the
// continuation document when entries overflow.
func buildSection(cfg models.Config, head []models.Entry, hasOverflow bool) []string {
	lines := []string{cfg.SectionHeading, "", table.Header[0], table.Header[1]}
	for _, e := range head {
		lines = append(lines, table.RenderRow(e, cfg.DateStyle, cfg.DescriptionLimit))
	}
	if hasOverflow {
		name := filepath.Base(cfg.ContinuationPath)
		lines = append(lines, "",
			fmt.Sprintf("The full list continues in [%s](%s).", name, name))
	}
	lines = append(lines, "")
	return lines
}

// buildContinuation renders the continuation document wholesale.
func buildContinuation(cfg models.Config, overflow []models.Entry) string {
	lines := []string{cfg.ContinuationHeading, "", table.Header[0], table.Header[1]}
	for _, e := range overflow {
		lines = append(lines, table.RenderRow(e, cfg.DateStyle, cfg.DescriptionLimit))
	}
	lines = append(lines, "")
	return renderLines(lines)
}

func renderLines(lines []string) string {
	return strings.Join(lines, "\n")
}
