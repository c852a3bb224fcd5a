package store

// schemaVersionV1 is the run-history schema.
const schemaVersionV1 = 1

// schemaV1 is the run-history DDL. One row per analysed source file in
// runs; code_counts holds the per-code warning tally for each run.
var schemaV1 = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);

CREATE TABLE IF NOT EXISTS runs (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	file                 TEXT NOT NULL,
	analyzed_at          TEXT NOT NULL,
	start_time           REAL,
	end_time             REAL,
	terminated_fatally   INTEGER NOT NULL DEFAULT 0,
	fatal_code           TEXT,
	fatal_time           REAL,
	samples              INTEGER NOT NULL DEFAULT 0,
	warnings             INTEGER NOT NULL DEFAULT 0,
	discarded            INTEGER NOT NULL DEFAULT 0,
	malformed            INTEGER NOT NULL DEFAULT 0,
	discharge_violations INTEGER NOT NULL DEFAULT 0,
	head_violations      INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS code_counts (
	run_id INTEGER NOT NULL REFERENCES runs(id),
	code   TEXT NOT NULL,
	count  INTEGER NOT NULL,
	UNIQUE(run_id, code)
);
`
