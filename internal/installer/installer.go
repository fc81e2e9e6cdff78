package installer

import (
	"sync"
	"sync/atomic"
	"time"

	"modelget/pkg/types"
)

// Installer drives one manifest through the fetch-or-skip engine.
// It is built for a single Run; construct a new one per invocation.
type Installer struct {
	mu      sync.RWMutex
	cfg     Config
	man     *types.Manifest
	entries []*entry
	state   RunState
	runID   string
	started time.Time
}

// entry is the runtime state of one manifest entry, in manifest order.
type entry struct {
	group string
	path  string // cleaned, slash form, relative to the models root
	url   string
	dest  string // absolute destination on disk

	state EntryState
	bytes atomic.Int64 // written so far; final size once downloaded
	err   error        // failure cause when state is StateFailed
}

// RunID identifies this run in logs and the status API.
func (ins *Installer) RunID() string { return ins.runID }

// ModelsDir is the resolved root all destinations live under.
func (ins *Installer) ModelsDir() string { return ins.cfg.ModelsDir }

// Manifest returns the manifest this installer was built from.
func (ins *Installer) Manifest() *types.Manifest { return ins.man }

func (ins *Installer) setEntryState(e *entry, s EntryState, cause error) {
	ins.mu.Lock()
	e.state = s
	e.err = cause
	ins.mu.Unlock()
}

func (ins *Installer) setRunState(s RunState) {
	ins.mu.Lock()
	ins.state = s
	ins.mu.Unlock()
}

func (ins *Installer) publish(name string, e *entry, fields map[string]any) {
	ev := Event{Name: name, Fields: fields}
	if e != nil {
		ev.Group = e.group
		ev.Path = e.path
	}
	ins.cfg.Events.Publish(ev)
}
