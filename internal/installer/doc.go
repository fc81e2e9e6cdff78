// Package installer turns a validated manifest into files on disk: it
// prepares destination directories, then performs an idempotent
// fetch-or-skip per entry and reports every outcome. It is structured
// into small files by concern:
//
//   - installer.go: core Installer type, constructor, simple getters.
//   - config.go: Config and package defaults; New applies defaults.
//   - types.go: entry state machine (EntryState), Outcome, FetchResult, PlanItem.
//   - errors.go: error types and helpers (IsFatal, IsTransfer, TransferStatus).
//   - events.go: Event and EventPublisher; noopPublisher default.
//   - eventpub_memory.go: in-memory publisher for tests.
//   - metrics.go: Prometheus collectors and the metrics event publisher.
//   - prepare.go: directory preparer (barrier before any transfer).
//   - fetch.go: per-entry fetch-or-skip engine and partial-file cleanup.
//   - run.go: orchestration across the manifest, summary, final error;
//     the offline Plan.
//   - status.go: Status/Ready reporting for the HTTP layer.
//
// The installer is stateless across invocations: presence of the
// destination file is the only durable marker, which is why a failed
// transfer must never leave a partial file behind (a later run would
// skip it). External packages should construct with New and use Run,
// Plan, Status, and Ready; internal types are subject to change.
package installer
