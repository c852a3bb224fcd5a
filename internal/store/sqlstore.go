package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// nullStr converts a sql.NullString to a plain string (empty if null).
func nullStr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullFloatPtr converts a sql.NullFloat64 to a *float64 (nil if null).
func nullFloatPtr(nf sql.NullFloat64) *float64 {
	if nf.Valid {
		v := nf.Float64
		return &v
	}
	return nil
}

// ptrFloat converts a *float64 to the any value driven into a REAL
// column (nil stays NULL).
func ptrFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

// currentSchemaVersion is the target schema version for this build.
const currentSchemaVersion = schemaVersionV1

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .zzdplot) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		// Fresh database.
		if _, err := s.db.Exec(schemaV1); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", currentSchemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		v = currentSchemaVersion
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", v); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}
	if v != currentSchemaVersion {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts the run and its code counts in one transaction and
// returns the new run ID. AnalyzedAt is stamped if empty.
func (s *SqlStore) SaveRun(run *Run, counts []CodeCount) (int64, error) {
	if run == nil {
		return 0, errors.New("run is nil")
	}
	at := run.AnalyzedAt
	if at == "" {
		at = nowUTC()
	}
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO runs(file, analyzed_at, start_time, end_time, terminated_fatally,
		                  fatal_code, fatal_time, samples, warnings, discarded, malformed,
		                  discharge_violations, head_violations)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.File, at, ptrFloat(run.StartTime), ptrFloat(run.EndTime), run.TerminatedFatally,
		run.FatalCode, ptrFloat(run.FatalTime), run.Samples, run.Warnings, run.Discarded,
		run.Malformed, run.DischargeViolations, run.HeadViolations,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	for _, c := range counts {
		if _, err := tx.Exec(
			"INSERT INTO code_counts(run_id, code, count) VALUES(?, ?, ?)",
			id, c.Code, c.Count,
		); err != nil {
			return 0, fmt.Errorf("insert code count %s: %w", c.Code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return id, nil
}

// GetRun returns the run by id, or nil if not found.
func (s *SqlStore) GetRun(runID int64) (*Run, error) {
	var r Run
	var start, end, fatalTime sql.NullFloat64
	var fatalCode sql.NullString
	err := s.db.QueryRow(
		`SELECT id, file, analyzed_at, start_time, end_time, terminated_fatally,
		        fatal_code, fatal_time, samples, warnings, discarded, malformed,
		        discharge_violations, head_violations
		 FROM runs WHERE id = ?`,
		runID,
	).Scan(&r.ID, &r.File, &r.AnalyzedAt, &start, &end, &r.TerminatedFatally,
		&fatalCode, &fatalTime, &r.Samples, &r.Warnings, &r.Discarded, &r.Malformed,
		&r.DischargeViolations, &r.HeadViolations)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	r.StartTime = nullFloatPtr(start)
	r.EndTime = nullFloatPtr(end)
	r.FatalTime = nullFloatPtr(fatalTime)
	r.FatalCode = nullStr(fatalCode)
	return &r, nil
}

// ListRuns returns all runs, newest first.
func (s *SqlStore) ListRuns() ([]*Run, error) {
	rows, err := s.db.Query(
		`SELECT id, file, analyzed_at, start_time, end_time, terminated_fatally,
		        fatal_code, fatal_time, samples, warnings, discarded, malformed,
		        discharge_violations, head_violations
		 FROM runs ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var list []*Run
	for rows.Next() {
		var r Run
		var start, end, fatalTime sql.NullFloat64
		var fatalCode sql.NullString
		if err := rows.Scan(&r.ID, &r.File, &r.AnalyzedAt, &start, &end, &r.TerminatedFatally,
			&fatalCode, &fatalTime, &r.Samples, &r.Warnings, &r.Discarded, &r.Malformed,
			&r.DischargeViolations, &r.HeadViolations); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartTime = nullFloatPtr(start)
		r.EndTime = nullFloatPtr(end)
		r.FatalTime = nullFloatPtr(fatalTime)
		r.FatalCode = nullStr(fatalCode)
		list = append(list, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return list, nil
}

// CodeCounts returns the per-code tally for a run, sorted by code.
func (s *SqlStore) CodeCounts(runID int64) ([]CodeCount, error) {
	rows, err := s.db.Query(
		"SELECT run_id, code, count FROM code_counts WHERE run_id = ? ORDER BY code",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("list code counts: %w", err)
	}
	defer rows.Close()
	var list []CodeCount
	for rows.Next() {
		var c CodeCount
		if err := rows.Scan(&c.RunID, &c.Code, &c.Count); err != nil {
			return nil, fmt.Errorf("scan code count: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list code counts: %w", err)
	}
	return list, nil
}
