// Package refresh implements the refresh command: re-fetching star
// counts and push dates from the GitHub API and rewriting the source
// table in place.
package refresh

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ranksync/ranksync/models"
	"github.com/ranksync/ranksync/pkg/db"
	"github.com/ranksync/ranksync/pkg/ghapi"
	"github.com/ranksync/ranksync/pkg/table"
	"github.com/urfave/cli/v2"
)

func RefreshAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	source, err := os.ReadFile(cfg.SourcePath)
	if err != nil {
		logger.Error("failed to read source document", "path", cfg.SourcePath, "error", err)
		os.Exit(2)
	}

	client := ghapi.NewClient(c.Context)
	lines := strings.Split(string(source), "\n")
	refreshed, skipped := 0, 0

	for i, line := range lines {
		entry, ok, skip := table.ParseLine(line, i+1)
		if skip != nil {
			logger.Warn("leaving unparseable row untouched", "line", skip.Line, "reason", skip.Reason)
			skipped++
			continue
		}
		if !ok {
			continue
		}

		info, err := client.Fetch(c.Context, entry.URL)
		if err != nil {
			logger.Warn("leaving row untouched", "repo", entry.Name, "error", err)
			skipped++
			continue
		}

		entry.Stars = info.Stars
		if info.PushedAt != "" {
			entry.Updated = info.PushedAt
		}
		lines[i] = table.RenderSourceRow(entry)
		refreshed++
		logger.Info("refreshed entry", "repo", entry.Name, "stars", info.Stars)
	}

	if refreshed == 0 {
		logger.Error("no entries refreshed", "skipped", skipped)
		os.Exit(1)
	}

	if err := os.WriteFile(cfg.SourcePath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		logger.Error("failed to write source document", "path", cfg.SourcePath, "error", err)
		os.Exit(2)
	}

	if history, err := db.Open(); err == nil {
		defer history.Close()
		if _, err := history.InsertRun(db.Run{
			Mode:      "refresh",
			Processed: refreshed,
			Skipped:   skipped,
			Status:    "success",
		}); err != nil {
			logger.Warn("failed to record run in history", "error", err)
		}
	} else {
		logger.Warn("failed to open history database", "error", err)
	}

	fmt.Printf("refreshed %d entries (%d skipped) in %s\n", refreshed, skipped, cfg.SourcePath)
	return nil
}
