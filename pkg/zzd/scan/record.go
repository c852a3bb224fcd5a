package scan

// Kind classifies a matched record block.
type Kind string

const (
	// KindConvergence is a "Poor model convergence" block: a headline
	// carrying the model time, completed a few lines down by the worst
	// DQ/DH residuals and the nodes reporting them.
	KindConvergence Kind = "convergence"

	// KindWarning is a "Model time" headline completed by a coded
	// "*** warning|note|error Xnnnn *** at label:" line.
	KindWarning Kind = "warning"
)

// Record is one matched block with its raw captured fields. Records are
// transient: they live inside a single scan pass and are consumed by the
// extractor, which owns all numeric parsing and classification.
type Record struct {
	Kind   Kind
	Offset int64  // byte offset of the headline's first byte
	Time   string // raw model-time text from the headline

	// Convergence captures.
	MaxDQ  string
	DQNode string
	MaxDH  string
	DHNode string

	// Warning captures.
	Class string // "warning", "note" or "error"
	Code  string // e.g. "W2000"
	Label string // unit label after "at label:"
}
