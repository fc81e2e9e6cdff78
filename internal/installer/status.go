package installer

import (
	"time"

	"modelget/pkg/types"
)

// Ready reports whether the run has finished, successfully or not.
// The /readyz endpoint maps it to 200/503.
func (ins *Installer) Ready() bool {
	ins.mu.RLock()
	defer ins.mu.RUnlock()
	return ins.state != RunInstalling
}

// Status builds the detailed response for /status.
func (ins *Installer) Status() types.StatusResponse {
	ins.mu.RLock()
	defer ins.mu.RUnlock()
	resp := types.StatusResponse{
		RunID:          ins.runID,
		State:          string(ins.state),
		StartedUnix:    ins.started.Unix(),
		ServerTimeUnix: time.Now().Unix(),
		Total:          len(ins.entries),
	}
	resp.Entries = make([]types.EntryStatus, 0, len(ins.entries))
	for _, e := range ins.entries {
		n := e.bytes.Load()
		es := types.EntryStatus{
			Group: e.group,
			Path:  e.path,
			State: string(e.state),
			Bytes: n,
		}
		if e.err != nil {
			es.Error = e.err.Error()
		}
		switch e.state {
		case StatePending:
			resp.Pending++
		case StateDownloading:
			resp.Downloading++
		case StateSkipped:
			resp.Skipped++
		case StateDownloaded:
			resp.Downloaded++
		case StateFailed:
			resp.Failed++
		}
		resp.BytesTotal += n
		resp.Entries = append(resp.Entries, es)
	}
	return resp
}
