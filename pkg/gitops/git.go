// Package gitops wraps the git binary for the snapshot step of a sync
// run: cleanliness precondition, branch creation, staging, and commit.
package gitops

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrDirtyTree reports an unclean working tree before a run. This is a
// precondition failure: nothing has been written yet when it fires.
var ErrDirtyTree = fmt.Errorf("working tree is not clean")

// CommitError wraps a failed commit. By the time commit runs the
// destination files are already on disk; callers must report this
// distinctly from precondition failures.
type CommitError struct {
	Output string
	Err    error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("git commit failed: %v: %s", e.Err, e.Output)
}

func (e *CommitError) Unwrap() error { return e.Err }

// Repo runs git commands inside a working directory.
type Repo struct {
	Dir string
}

func (r *Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return out.String(), err
}

// IsRepo reports whether Dir is inside a git working tree.
func (r *Repo) IsRepo() bool {
	_, err := r.git("rev-parse", "--is-inside-work-tree")
	return err == nil
}

// IsClean reports whether the working tree has no modifications apart
// from paths whose basename appears in ignore.
func (r *Repo) IsClean(ignore []string) (bool, error) {
	out, err := r.git("status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status failed: %w", err)
	}
	return len(FilterStatusLines(out, ignore)) == 0, nil
}

// FilterStatusLines drops porcelain status lines whose path basename
// is in ignore and returns the remainder.
func FilterStatusLines(porcelain string, ignore []string) []string {
	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	var remaining []string
	for _, line := range strings.Split(porcelain, "\n") {
		if len(line) < 4 || strings.TrimSpace(line) == "" {
			continue
		}
		// Porcelain format: two status columns, a space, then the path.
		path := strings.TrimSpace(line[2:])
		// Renames carry "old -> new"; judge the new path.
		if _, after, found := strings.Cut(path, " -> "); found {
			path = after
		}
		path = strings.Trim(path, `"`)
		if ignored[filepath.Base(path)] {
			continue
		}
		remaining = append(remaining, line)
	}
	return remaining
}

// CheckoutNew creates and switches to a new branch.
func (r *Repo) CheckoutNew(branch string) error {
	if out, err := r.git("checkout", "-b", branch); err != nil {
		return fmt.Errorf("git checkout -b %s failed: %w: %s", branch, err, out)
	}
	return nil
}

// Add stages the given paths.
func (r *Repo) Add(paths ...string) error {
	args := append([]string{"add", "--"}, paths...)
	if out, err := r.git(args...); err != nil {
		return fmt.Errorf("git add failed: %w: %s", err, out)
	}
	return nil
}

// Commit records the staged snapshot.
func (r *Repo) Commit(message string) error {
	if out, err := r.git("commit", "-m", message); err != nil {
		return &CommitError{Output: out, Err: err}
	}
	return nil
}
