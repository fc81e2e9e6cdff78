package installer

import "fmt"

// fatalError marks failures that abort the whole run before any transfer,
// such as a destination directory that cannot be created.
type fatalError struct{ err error }

func (e fatalError) Error() string { return e.err.Error() }
func (e fatalError) Unwrap() error { return e.err }

// ErrFatal wraps err as run-fatal.
func ErrFatal(err error) error { return fatalError{err: err} }

// IsFatal reports whether err aborted the run as a whole rather than a
// single entry.
func IsFatal(err error) bool {
	_, ok := err.(fatalError)
	return ok
}

// transferError is a single entry's failed transfer. It carries the final
// HTTP status when one was received so callers can tell a 404 from a
// network or disk failure.
type transferError struct {
	url    string
	status int // 0 when no HTTP response was received
	err    error
}

func (e transferError) Error() string {
	if e.status != 0 {
		return fmt.Sprintf("transfer %s: unexpected status %d", e.url, e.status)
	}
	return fmt.Sprintf("transfer %s: %v", e.url, e.err)
}

func (e transferError) Unwrap() error { return e.err }

// ErrTransfer wraps a network or disk failure for url.
func ErrTransfer(url string, err error) error { return transferError{url: url, err: err} }

// ErrTransferStatus records a non-success final HTTP status for url.
func ErrTransferStatus(url string, status int) error {
	return transferError{url: url, status: status}
}

// IsTransfer reports whether err is an entry-level transfer failure.
func IsTransfer(err error) bool {
	_, ok := err.(transferError)
	return ok
}

// TransferStatus returns the final HTTP status carried by err, if any.
func TransferStatus(err error) (int, bool) {
	te, ok := err.(transferError)
	if !ok || te.status == 0 {
		return 0, false
	}
	return te.status, true
}

// entriesFailedError is returned by Run when one or more entries failed.
// The run itself completed; the error exists so callers can exit non-zero.
type entriesFailedError struct{ failed, total int }

func (e entriesFailedError) Error() string {
	return fmt.Sprintf("%d of %d entries failed", e.failed, e.total)
}

// ErrEntriesFailed constructs the summary error for a run with failures.
func ErrEntriesFailed(failed, total int) error {
	return entriesFailedError{failed: failed, total: total}
}

// IsEntriesFailed reports whether err is the per-entry failure summary, as
// opposed to a fatal error that stopped the run early.
func IsEntriesFailed(err error) bool {
	_, ok := err.(entriesFailedError)
	return ok
}
