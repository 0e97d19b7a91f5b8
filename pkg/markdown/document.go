// Package markdown provides line-oriented section editing and output
// validation for the destination documents.
package markdown

import (
	"fmt"
	"strings"
)

// SectionNotFoundError reports a destination document missing the
// heading the sync pipeline expected to replace. This is fatal: the
// run aborts before any file is written.
type SectionNotFoundError struct {
	Heading string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section heading %q not found", e.Heading)
}

// Document is a markdown file held as an ordered sequence of lines.
// Content outside an edited section round-trips byte-for-byte.
type Document struct {
	lines           []string
	trailingNewline bool
}

// NewDocument splits raw text into lines.
func NewDocument(text string) *Document {
	trailing := strings.HasSuffix(text, "\n")
	if trailing {
		text = strings.TrimSuffix(text, "\n")
	}
	return &Document{
		lines:           strings.Split(text, "\n"),
		trailingNewline: trailing,
	}
}

// String reassembles the document.
func (d *Document) String() string {
	out := strings.Join(d.lines, "\n")
	if d.trailingNewline {
		out += "\n"
	}
	return out
}

// headingLevel returns the number of leading '#' characters when the
// line is a heading, and 0 otherwise.
func headingLevel(line string) int {
	trimmed := strings.TrimLeft(line, "#")
	n := len(line) - len(trimmed)
	if n == 0 || !strings.HasPrefix(trimmed, " ") {
		return 0
	}
	return n
}

// FindSection locates the span [start, end) of the section opened by a
// line exactly equal to heading. The span runs from the heading line up
// to (not including) the next heading of equal or higher level, or to
// the end of the document.
func (d *Document) FindSection(heading string) (start, end int, err error) {
	start = -1
	for i, line := range d.lines {
		if line == heading {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, 0, &SectionNotFoundError{Heading: heading}
	}

	level := headingLevel(heading)
	end = len(d.lines)
	for i := start + 1; i < len(d.lines); i++ {
		if l := headingLevel(d.lines[i]); l > 0 && l <= level {
			end = i
			break
		}
	}
	return start, end, nil
}

// ReplaceSection splices replacement lines over the section opened by
// heading. Everything before and after the section is preserved.
func (d *Document) ReplaceSection(heading string, replacement []string) error {
	start, end, err := d.FindSection(heading)
	if err != nil {
		return err
	}

	out := make([]string, 0, start+len(replacement)+len(d.lines)-end)
	out = append(out, d.lines[:start]...)
	out = append(out, replacement...)
	out = append(out, d.lines[end:]...)
	d.lines = out
	return nil
}
