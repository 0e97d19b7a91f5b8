// Command ranksync maintains a curated markdown listing of popular
// GitHub repositories: it syncs a ranked table from a source document
// into a primary README section plus a continuation document, and
// snapshots the result with git.
package main

import (
	"fmt"
	"os"

	"github.com/ranksync/ranksync/internal/history"
	"github.com/ranksync/ranksync/internal/refresh"
	"github.com/ranksync/ranksync/internal/stats"
	"github.com/ranksync/ranksync/internal/synccmd"
	"github.com/urfave/cli/v2"
)

func main() {
	configFlag := &cli.StringFlag{
		Name:  "config",
		Value: "config.yaml",
		Usage: "path to the sync configuration file",
	}
	quietFlag := &cli.BoolFlag{
		Name:  "quiet",
		Usage: "only log errors",
	}

	app := &cli.App{
		Name:  "ranksync",
		Usage: "sync a ranked repository table across markdown documents",
		Commands: []*cli.Command{
			{
				Name:  "sync",
				Usage: "parse the source table, split it across the destination documents, and commit",
				Flags: []cli.Flag{
					configFlag,
					quietFlag,
					&cli.BoolFlag{
						Name:  "check",
						Usage: "parse and report entry counts without writing files or touching git",
					},
					&cli.StringFlag{
						Name:  "date-style",
						Usage: "override the configured date style (short|iso)",
					},
				},
				Action: synccmd.SyncAction,
			},
			{
				Name:  "refresh",
				Usage: "refresh star counts and push dates in the source table from the GitHub API",
				Flags:  []cli.Flag{configFlag, quietFlag},
				Action: refresh.RefreshAction,
			},
			{
				Name:  "stats",
				Usage: "report star and language aggregates over the source table",
				Flags:  []cli.Flag{configFlag, quietFlag},
				Action: stats.StatsAction,
			},
			{
				Name:  "history",
				Usage: "list recent sync runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
						Usage: "number of runs to show",
					},
				},
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
