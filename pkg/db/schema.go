package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs table: one row per sync or refresh invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    mode TEXT NOT NULL,              -- sync, refresh
    processed INTEGER DEFAULT 0,     -- rows successfully parsed
    skipped INTEGER DEFAULT 0,       -- rows dropped as unparseable
    head_rows INTEGER DEFAULT 0,     -- rows written to the primary document
    overflow_rows INTEGER DEFAULT 0, -- rows written to the continuation document
    status TEXT NOT NULL,            -- success, failed
    error TEXT DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
`
