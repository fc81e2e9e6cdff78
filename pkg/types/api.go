package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: method not allowed
	Error string `json:"error" example:"method not allowed"`
	// HTTP status code.
	// example: 405
	Code int `json:"code" example:"405"`
}

// EntryStatus summarizes one manifest entry for /status.
type EntryStatus struct {
	// Group the entry belongs to.
	// example: whisper
	Group string `json:"group" example:"whisper"`
	// Destination path relative to the models root.
	// example: faster-whisper-small/model.bin
	Path string `json:"path" example:"faster-whisper-small/model.bin"`
	// Current state of the entry (pending, downloading, skipped, downloaded, failed).
	// example: downloading
	State string `json:"state" example:"downloading"`
	// Bytes written to disk so far (final size once downloaded).
	// example: 463092953
	Bytes int64 `json:"bytes" example:"463092953"`
	// Failure cause, set only when the entry failed.
	Error string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Unique id of this run.
	// example: 7f9c24e8-3b12-4f6a-9c5d-2a8a1e2b4c6d
	RunID string `json:"run_id" example:"7f9c24e8-3b12-4f6a-9c5d-2a8a1e2b4c6d"`
	// Overall run state (installing, done, failed).
	// example: installing
	State string `json:"state" example:"installing"`
	// Time the run started, unix seconds.
	// example: 1755700000
	StartedUnix int64 `json:"started_unix" example:"1755700000"`
	// Server time in unix seconds.
	// example: 1755700042
	ServerTimeUnix int64 `json:"server_time_unix" example:"1755700042"`
	// Number of entries in the manifest.
	// example: 7
	Total int `json:"total" example:"7"`
	// Entries not yet examined.
	// example: 2
	Pending int `json:"pending" example:"2"`
	// Entries currently transferring.
	// example: 1
	Downloading int `json:"downloading" example:"1"`
	// Entries skipped because the destination already existed.
	// example: 3
	Skipped int `json:"skipped" example:"3"`
	// Entries downloaded by this run.
	// example: 1
	Downloaded int `json:"downloaded" example:"1"`
	// Entries that failed.
	// example: 0
	Failed int `json:"failed" example:"0"`
	// Total bytes written to disk by this run so far.
	// example: 463092953
	BytesTotal int64 `json:"bytes_total" example:"463092953"`
	// Per-entry detail in manifest order.
	Entries []EntryStatus `json:"entries"`
}
