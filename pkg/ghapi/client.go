// Package ghapi fetches current repository star counts and push dates
// from the GitHub API for the refresh command.
package ghapi

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// RepoInfo is the subset of repository metadata the refresh rewrites.
type RepoInfo struct {
	Stars    int
	PushedAt string // YYYY-MM-DD
}

// Client wraps the GitHub API client.
type Client struct {
	gh *github.Client
}

// NewClient builds a client authenticated with GITHUB_TOKEN when set,
// anonymous otherwise. Anonymous access works but rate-limits hard.
func NewClient(ctx context.Context) *Client {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return &Client{gh: github.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{gh: github.NewClient(oauth2.NewClient(ctx, ts))}
}

// ParseRepoRef extracts owner and repo from a github.com repository URL.
func ParseRepoRef(repoURL string) (owner, repo string, err error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid repo url %q: %w", repoURL, err)
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return "", "", fmt.Errorf("not a github.com url: %s", repoURL)
	}

	path := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(path) < 2 || path[0] == "" || path[1] == "" {
		return "", "", fmt.Errorf("invalid repo url: %s", repoURL)
	}
	return path[0], path[1], nil
}

// Fetch returns the current star count and last-push date for a
// repository URL.
func (c *Client) Fetch(ctx context.Context, repoURL string) (RepoInfo, error) {
	owner, repo, err := ParseRepoRef(repoURL)
	if err != nil {
		return RepoInfo{}, err
	}

	res, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return RepoInfo{}, fmt.Errorf("github api get %s/%s: %w", owner, repo, err)
	}

	info := RepoInfo{Stars: res.GetStargazersCount()}
	if pushed := res.GetPushedAt(); !pushed.IsZero() {
		info.PushedAt = pushed.Format("2006-01-02")
	}
	return info, nil
}
