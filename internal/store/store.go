package store

// DefaultDBPath is the default relative path for the SQLite DB.
// Resolve against cwd; Open() creates the parent dir (e.g. .zzdplot).
const DefaultDBPath = ".zzdplot/zzdplot.db"

// Run is one analysed simulation, keyed by source file. Nullable
// timestamps use pointers: an empty run has no span at all.
type Run struct {
	ID                  int64
	File                string
	AnalyzedAt          string
	StartTime           *float64
	EndTime             *float64
	TerminatedFatally   bool
	FatalCode           string // empty when the run ended cleanly
	FatalTime           *float64
	Samples             int
	Warnings            int
	Discarded           int
	Malformed           int
	DischargeViolations int
	HeadViolations      int
}

// CodeCount is the per-code warning tally for one run.
type CodeCount struct {
	RunID int64
	Code  string
	Count int
}

// Store is the persistence facade for run history. The CLI uses only
// this interface; implementation is SQLite or in-memory.
type Store interface {
	SaveRun(run *Run, counts []CodeCount) (runID int64, err error)
	GetRun(runID int64) (*Run, error)
	ListRuns() ([]*Run, error)
	CodeCounts(runID int64) ([]CodeCount, error)
	Close() error
}
