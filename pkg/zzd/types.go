package zzd

// Kind distinguishes the two convergence residual series a simulation
// reports.
type Kind string

const (
	Discharge Kind = "discharge" // DQ, flow residual
	Head      Kind = "head"      // DH, water-level residual
)

// Severity classifies a warning code by its class prefix. The mapping is
// a fixed table keyed on the code's first letter; message content never
// influences it.
type Severity string

const (
	Warning Severity = "warning"
	Fatal   Severity = "fatal"
)

// ConvergenceSample is one residual measurement. Samples are immutable
// once extracted and shared read-only; source order usually ascends in
// time but is not guaranteed, so consumers that need temporal order must
// sort.
type ConvergenceSample struct {
	Time  float64 `json:"time"` // model time, hours
	Kind  Kind    `json:"kind"`
	Value float64 `json:"value"`
	Node  string  `json:"node,omitempty"` // unit reporting the worst residual
}

// WarningEvent is one coded diagnostic event.
type WarningEvent struct {
	Time     float64  `json:"time"`
	Code     string   `json:"code"` // e.g. "W2000", "E1999"
	Severity Severity `json:"severity"`
	Label    string   `json:"label,omitempty"` // unit label from the source
}

// EventSet is everything extraction produced from one source, in scan
// order.
type EventSet struct {
	Samples  []ConvergenceSample `json:"samples"`
	Warnings []WarningEvent      `json:"warnings"`
}

// Diagnostics counts the records extraction dropped. Surfaced alongside
// results so dropped data is never invisible to the analyst.
type Diagnostics struct {
	DiscardedRecords int `json:"discarded_records"` // matched a shape, code outside the W/E alphabet
	MalformedRecords int `json:"malformed_records"` // matched a shape, numeric fields unparseable
}

// SimulationRun is run-level metadata derived from the full event set.
// Times are nil when the set is empty; that degenerate case is defined,
// not an error.
type SimulationRun struct {
	StartTime         *float64      `json:"start_time"`
	EndTime           *float64      `json:"end_time"`
	TerminatedFatally bool          `json:"terminated_fatally"`
	FatalEvent        *WarningEvent `json:"fatal_event,omitempty"` // earliest fatal event
}

// Bin is one temporal bucket of warning events. A sparse bin holds
// exactly one event and carries its exact original timestamp plus the
// event itself, so renderers can always draw a discrete marker; a dense
// bin carries only the aggregate count and the bucket midpoint.
type Bin struct {
	Start  float64        `json:"start"`
	End    float64        `json:"end"`
	Count  int            `json:"count"`
	Sparse bool           `json:"sparse"`
	Time   float64        `json:"time"` // event time when sparse, midpoint when dense
	Events []WarningEvent `json:"events,omitempty"`
}
