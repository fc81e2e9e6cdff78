package installer

// Event represents an installer lifecycle event.
// Minimal and stable: name + the entry it concerns and optional fields
// via key/values. Group and Path are empty for run-level events.
type Event struct {
	Name   string
	Group  string
	Path   string
	Fields map[string]any
}

// Event names published by the installer.
const (
	EventRunStart      = "run_start"
	EventRunDone       = "run_done"
	EventEntrySkip     = "entry_skip"
	EventEntryStart    = "entry_download_start"
	EventEntryDownload = "entry_downloaded"
	EventEntryFail     = "entry_failed"
)

// EventPublisher receives events from the installer. Implementations should
// be lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}
