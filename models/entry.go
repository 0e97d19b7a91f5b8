// Package models defines the shared data types for table parsing and
// run configuration.
package models

// Entry is one parsed table row: a ranked repository listing.
// An Entry is immutable once parsed; formatting produces rendered
// rows, never in-place mutation.
type Entry struct {
	Rank        int
	Name        string
	URL         string
	Description string
	Stars       int
	Language    string
	Updated     string
}

// RowSkip records a line that looked like a data row but failed the
// stricter field extraction. Skips are recoverable: the row is dropped
// from the output set and the skip is surfaced in the run report.
type RowSkip struct {
	Line   int    // 1-based line number in the source document
	Reason string // e.g. "malformed link cell"
}
