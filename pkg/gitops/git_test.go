package gitops

import (
	"testing"
)

func TestFilterStatusLines_Clean(t *testing.T) {
	if got := FilterStatusLines("", nil); len(got) != 0 {
		t.Errorf("FilterStatusLines(empty) = %v, want none", got)
	}
}

func TestFilterStatusLines_NoIgnore(t *testing.T) {
	porcelain := " M README.md\n?? REMAINING.md\n"

	got := FilterStatusLines(porcelain, nil)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestFilterStatusLines_IgnoresByBasename(t *testing.T) {
	porcelain := " M README.md\n?? ranksync.db\n M docs/ranksync.db\n"

	got := FilterStatusLines(porcelain, []string{"ranksync.db"})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1, got %v", len(got), got)
	}
	if got[0] != " M README.md" {
		t.Errorf("remaining = %q, want README.md line", got[0])
	}
}

func TestFilterStatusLines_Rename(t *testing.T) {
	porcelain := "R  old-name.md -> ranksync.db\n"

	if got := FilterStatusLines(porcelain, []string{"ranksync.db"}); len(got) != 0 {
		t.Errorf("rename to ignored basename not filtered: %v", got)
	}
}

func TestFilterStatusLines_AllIgnoredMeansClean(t *testing.T) {
	porcelain := "?? notes.txt\n M ranksync.db\n"

	if got := FilterStatusLines(porcelain, []string{"notes.txt", "ranksync.db"}); len(got) != 0 {
		t.Errorf("FilterStatusLines = %v, want none", got)
	}
}
