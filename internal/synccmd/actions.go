// Package synccmd implements the sync command: the full
// parse/format/split/write/commit pipeline and its check-only mode.
package synccmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ranksync/ranksync/models"
	"github.com/ranksync/ranksync/pkg/db"
	"github.com/ranksync/ranksync/pkg/gitops"
	"github.com/ranksync/ranksync/pkg/pipeline"
	"github.com/urfave/cli/v2"
)

func SyncAction(c *cli.Context) error {
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
	if c.IsSet("date-style") {
		cfg.DateStyle = models.DateStyle(c.String("date-style"))
		if cfg.DateStyle != models.DateStyleShort && cfg.DateStyle != models.DateStyleISO {
			logger.Error("invalid date-style flag", "value", c.String("date-style"))
			os.Exit(2)
		}
	}
	checkOnly := c.Bool("check")

	source, err := os.ReadFile(cfg.SourcePath)
	if err != nil {
		logger.Error("failed to read source document", "path", cfg.SourcePath, "error", err)
		os.Exit(2)
	}
	primary, err := os.ReadFile(cfg.PrimaryPath)
	if err != nil {
		logger.Error("failed to read primary document", "path", cfg.PrimaryPath, "error", err)
		os.Exit(2)
	}

	repo := &gitops.Repo{Dir: filepath.Dir(cfg.PrimaryPath)}
	if !checkOnly {
		// Git preconditions come before any rendering side effects so a
		// dirty tree never gets half a sync on top of it.
		if !repo.IsRepo() {
			logger.Error("destination is not inside a git repository", "dir", repo.Dir)
			os.Exit(2)
		}
		clean, err := repo.IsClean(cfg.CleanIgnore)
		if err != nil {
			logger.Error("failed to check working tree", "error", err)
			os.Exit(2)
		}
		if !clean {
			logger.Error("precondition failed", "error", gitops.ErrDirtyTree)
			os.Exit(2)
		}
	}

	report, staged, err := pipeline.Run(cfg, string(source), string(primary), logger)
	if err != nil {
		logger.Error("pipeline failed", "error", err)
		os.Exit(2)
	}

	if checkOnly {
		fmt.Printf("check ok: %d entries parsed (%d skipped), %d head rows, %d continuation rows\n",
			report.Processed, len(report.Skips), report.HeadRows, report.OverflowRows)
		for _, s := range report.Skips {
			fmt.Printf("  skipped line %d: %s\n", s.Line, s.Reason)
		}
		return nil
	}

	history, err := db.Open()
	if err != nil {
		logger.Error("failed to open history database", "error", err)
		os.Exit(2)
	}
	defer history.Close()

	runErr := publish(cfg, repo, staged, logger)

	run := db.Run{
		Mode:         "sync",
		Processed:    report.Processed,
		Skipped:      len(report.Skips),
		HeadRows:     report.HeadRows,
		OverflowRows: report.OverflowRows,
		Status:       "success",
	}
	if runErr != nil {
		run.Status = "failed"
		run.Error = runErr.Error()
	}
	if _, err := history.InsertRun(run); err != nil {
		logger.Warn("failed to record run in history", "error", err)
	}

	if runErr != nil {
		logger.Error("sync failed", "error", runErr)
		os.Exit(2)
	}

	fmt.Printf("synced %d entries (%d skipped): %d to %s, %d to %s\n",
		report.Processed, len(report.Skips),
		report.HeadRows, cfg.PrimaryPath, report.OverflowRows, cfg.ContinuationPath)
	return nil
}

// publish materializes the staged files and snapshots them with git.
// Staged content is only written once every local precondition has
// already held; a commit failure after that is reported, with the
// modified files left on disk for inspection.
func publish(cfg models.Config, repo *gitops.Repo, staged []pipeline.StagedFile, logger *slog.Logger) error {
	branch := cfg.BranchPrefix + time.Now().Format("2006-01-02")
	if err := repo.CheckoutNew(branch); err != nil {
		return err
	}
	logger.Info("created sync branch", "branch", branch)

	var paths []string
	for _, f := range staged {
		if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		logger.Info("wrote destination document", "path", f.Path, "bytes", len(f.Content))
		rel, err := filepath.Rel(repo.Dir, f.Path)
		if err != nil {
			rel = filepath.Base(f.Path)
		}
		paths = append(paths, rel)
	}

	if err := repo.Add(paths...); err != nil {
		return err
	}
	if err := repo.Commit(cfg.CommitMessage); err != nil {
		return err
	}
	logger.Info("committed snapshot", "branch", branch)
	return nil
}
