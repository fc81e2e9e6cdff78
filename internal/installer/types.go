package installer

import "time"

// EntryState is the lifecycle state of one manifest entry during a run.
// Transitions: pending -> skipped, or pending -> downloading -> downloaded | failed.
// Terminal states are never revisited.
type EntryState string

const (
	StatePending     EntryState = "pending"
	StateDownloading EntryState = "downloading"
	StateSkipped     EntryState = "skipped"
	StateDownloaded  EntryState = "downloaded"
	StateFailed      EntryState = "failed"
)

// Terminal reports whether s is a final state.
func (s EntryState) Terminal() bool {
	return s == StateSkipped || s == StateDownloaded || s == StateFailed
}

// RunState is the overall state of a run, surfaced by /status and /readyz.
type RunState string

const (
	RunInstalling RunState = "installing"
	RunDone       RunState = "done"
	RunFailed     RunState = "failed"
)

// Outcome classifies the terminal result of one entry.
type Outcome string

const (
	OutcomeSkipped    Outcome = "skipped"
	OutcomeDownloaded Outcome = "downloaded"
	OutcomeFailed     Outcome = "failed"
)

// FetchResult is the outcome of processing a single manifest entry.
type FetchResult struct {
	Group    string
	Path     string // destination, relative to the models root
	URL      string
	Outcome  Outcome
	Bytes    int64 // bytes written to disk (0 for skips and most failures)
	Duration time.Duration
	Err      error // failure cause, nil unless Outcome is OutcomeFailed
}

// PlanItem is one entry of an offline dry run: what install would do
// without touching the network.
type PlanItem struct {
	Group   string
	Path    string
	URL     string
	Present bool // destination already exists, install would skip it
}
