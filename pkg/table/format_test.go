package table

import (
	"strings"
	"testing"

	"github.com/ranksync/ranksync/models"
)

func TestFormatStars(t *testing.T) {
	tests := []struct {
		stars int
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1.0k"},
		{1049, "1.0k"},
		{1100, "1.1k"},
		{1999, "1.9k"},
		{41000, "41.0k"},
		{367512, "367.5k"},
	}

	for _, tt := range tests {
		if got := FormatStars(tt.stars); got != tt.want {
			t.Errorf("FormatStars(%d) = %q, want %q", tt.stars, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		date  string
		style models.DateStyle
		want  string
	}{
		{"2025-03-31", models.DateStyleShort, "03/31"},
		{"2025-01-02", models.DateStyleShort, "01/02"},
		{"2025-03-31", models.DateStyleISO, "2025-03-31"},
		{"yesterday", models.DateStyleShort, "yesterday"},
		{"2025-3-31", models.DateStyleShort, "2025-3-31"},
		{"", models.DateStyleShort, ""},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.date, tt.style); got != tt.want {
			t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.date, tt.style, got, tt.want)
		}
	}
}

func TestFormatDescription(t *testing.T) {
	short := "A short description."
	if got := FormatDescription(short, 100); got != short {
		t.Errorf("FormatDescription(short) = %q, want unchanged", got)
	}

	long := strings.Repeat("x", 150)
	got := FormatDescription(long, 100)
	if len([]rune(got)) != 103 {
		t.Errorf("len(FormatDescription(long)) = %d, want 103", len([]rune(got)))
	}
	if !strings.HasPrefix(long, strings.TrimSuffix(got, "...")) {
		t.Errorf("FormatDescription(long) = %q, want prefix of input plus ellipsis", got)
	}

	exact := strings.Repeat("y", 100)
	if got := FormatDescription(exact, 100); got != exact {
		t.Errorf("FormatDescription(exact limit) = %q, want unchanged", got)
	}
}

func TestFormatDescription_MultiByte(t *testing.T) {
	long := strings.Repeat("中", 120)
	got := FormatDescription(long, 100)
	runes := []rune(got)
	if len(runes) != 103 {
		t.Errorf("rune length = %d, want 103", len(runes))
	}
	if string(runes[:100]) != strings.Repeat("中", 100) {
		t.Error("truncation cut the description mid-character")
	}
}

func TestRenderRow(t *testing.T) {
	e := models.Entry{
		Rank:        3,
		Name:        "freeCodeCamp",
		URL:         "https://github.com/freeCodeCamp/freeCodeCamp",
		Description: "Learn to code for free.",
		Stars:       389123,
		Language:    "TypeScript",
		Updated:     "2025-03-31",
	}

	got := RenderRow(e, models.DateStyleShort, 100)
	want := "| 3 | [freeCodeCamp](https://github.com/freeCodeCamp/freeCodeCamp) | Learn to code for free. | 389.1k | TypeScript | 03/31 |"
	if got != want {
		t.Errorf("RenderRow() = %q, want %q", got, want)
	}

	got = RenderRow(e, models.DateStyleISO, 100)
	if !strings.Contains(got, "| 2025-03-31 |") {
		t.Errorf("RenderRow(iso) = %q, want ISO date preserved", got)
	}
}

func TestRenderSourceRow_RoundTrip(t *testing.T) {
	e := models.Entry{
		Rank:        17,
		Name:        "vue",
		URL:         "https://github.com/vuejs/vue",
		Description: "A progressive JavaScript framework.",
		Stars:       208450,
		Language:    "JavaScript",
		Updated:     "2025-02-14",
	}

	line := RenderSourceRow(e)
	parsed, ok, skip := ParseLine(line, 1)
	if skip != nil {
		t.Fatalf("ParseLine() skip = %+v, want none", skip)
	}
	if !ok {
		t.Fatal("ParseLine() ok = false, want true")
	}
	if parsed != e {
		t.Errorf("round trip = %+v, want %+v", parsed, e)
	}
}
