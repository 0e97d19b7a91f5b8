package db

import (
	"fmt"
	"time"
)

// Run is one recorded sync or refresh invocation.
type Run struct {
	RunID        int64
	StartedAt    time.Time
	Mode         string
	Processed    int
	Skipped      int
	HeadRows     int
	OverflowRows int
	Status       string
	Error        string
}

// InsertRun records a completed invocation and returns its ID.
func (db *DB) InsertRun(run Run) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO runs (mode, processed, skipped, head_rows, overflow_rows, status, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Mode, run.Processed, run.Skipped, run.HeadRows, run.OverflowRows, run.Status, run.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(
		`SELECT run_id, started_at, mode, processed, skipped, head_rows, overflow_rows, status, error
		 FROM runs ORDER BY started_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.StartedAt, &r.Mode, &r.Processed, &r.Skipped,
			&r.HeadRows, &r.OverflowRows, &r.Status, &r.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
