// Package history implements the history command over the run
// database.
package history

import (
	"fmt"
	"os"

	"github.com/ranksync/ranksync/pkg/db"
	"github.com/urfave/cli/v2"
)

func HistoryAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open history database: %v\n", err)
		os.Exit(2)
	}
	defer database.Close()

	limit := c.Int("limit")
	if limit <= 0 {
		limit = 10
	}

	runs, err := database.ListRuns(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list runs: %v\n", err)
		os.Exit(2)
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs. Run 'ranksync sync' first.")
		return nil
	}

	fmt.Printf("%-5s %-20s %-8s %-9s %-7s %-9s %-9s %s\n",
		"ID", "STARTED", "MODE", "PROCESSED", "SKIPPED", "HEAD", "OVERFLOW", "STATUS")
	for _, r := range runs {
		status := r.Status
		if r.Error != "" {
			status = fmt.Sprintf("%s (%s)", r.Status, r.Error)
		}
		fmt.Printf("%-5d %-20s %-8s %-9d %-7d %-9d %-9d %s\n",
			r.RunID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Mode,
			r.Processed, r.Skipped, r.HeadRows, r.OverflowRows, status)
	}
	return nil
}
