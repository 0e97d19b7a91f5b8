package markdown

import (
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `# Top Repositories

Intro prose that must survive untouched.

## All Language

| old | table |
| --- | ----- |
| 1 | stale |

## About

Footer prose.
`

func TestFindSection(t *testing.T) {
	d := NewDocument(sampleDoc)

	start, end, err := d.FindSection("## All Language")
	if err != nil {
		t.Fatalf("FindSection() error = %v", err)
	}
	if d.lines[start] != "## All Language" {
		t.Errorf("lines[start] = %q, want heading", d.lines[start])
	}
	if d.lines[end] != "## About" {
		t.Errorf("lines[end] = %q, want next heading", d.lines[end])
	}
}

func TestFindSection_ExtendsToEOF(t *testing.T) {
	d := NewDocument("# Title\n\n## Last\n\ncontent\nmore content\n")

	start, end, err := d.FindSection("## Last")
	if err != nil {
		t.Fatalf("FindSection() error = %v", err)
	}
	if start != 2 {
		t.Errorf("start = %d, want 2", start)
	}
	if end != len(d.lines) {
		t.Errorf("end = %d, want end of document %d", end, len(d.lines))
	}
}

func TestFindSection_LowerLevelHeadingDoesNotClose(t *testing.T) {
	d := NewDocument("## Section\n\n### Subsection\n\ntext\n\n## Next\n")

	_, end, err := d.FindSection("## Section")
	if err != nil {
		t.Fatalf("FindSection() error = %v", err)
	}
	if d.lines[end] != "## Next" {
		t.Errorf("lines[end] = %q, want %q (### must not close the section)", d.lines[end], "## Next")
	}
}

func TestFindSection_Missing(t *testing.T) {
	d := NewDocument(sampleDoc)

	_, _, err := d.FindSection("## Nonexistent")
	var notFound *SectionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("FindSection() error = %v, want *SectionNotFoundError", err)
	}
	if notFound.Heading != "## Nonexistent" {
		t.Errorf("Heading = %q, want %q", notFound.Heading, "## Nonexistent")
	}
}

func TestReplaceSection_PreservesSurroundings(t *testing.T) {
	d := NewDocument(sampleDoc)

	replacement := []string{
		"## All Language",
		"",
		"| Rank | Repository | Description | Stars | Language | Updated |",
		"| ---- | ---------- | ----------- | ----- | -------- | ------- |",
		"| 1 | [a](https://github.com/o/a) | Fresh | 1.0k | Go | 01/01 |",
		"",
	}
	if err := d.ReplaceSection("## All Language", replacement); err != nil {
		t.Fatalf("ReplaceSection() error = %v", err)
	}

	out := d.String()
	if !strings.HasPrefix(out, "# Top Repositories\n\nIntro prose that must survive untouched.\n") {
		t.Error("content before the section was not preserved byte-for-byte")
	}
	if !strings.HasSuffix(out, "## About\n\nFooter prose.\n") {
		t.Error("content after the section was not preserved byte-for-byte")
	}
	if strings.Contains(out, "stale") {
		t.Error("old section content still present")
	}
	if !strings.Contains(out, "| 1 | [a](https://github.com/o/a) | Fresh | 1.0k | Go | 01/01 |") {
		t.Error("replacement rows missing")
	}
}

func TestReplaceSection_MissingLeavesDocumentUnchanged(t *testing.T) {
	d := NewDocument(sampleDoc)

	err := d.ReplaceSection("## Nope", []string{"## Nope", "", "x"})
	if err == nil {
		t.Fatal("ReplaceSection() error = nil, want SectionNotFound")
	}
	if d.String() != sampleDoc {
		t.Error("document mutated despite missing section")
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	for _, text := range []string{sampleDoc, "no trailing newline", "", "a\n\nb\n"} {
		if got := NewDocument(text).String(); got != text {
			t.Errorf("round trip of %q = %q", text, got)
		}
	}
}
