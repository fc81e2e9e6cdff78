package installer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"modelget/internal/common/fsutil"
)

// Run prepares directories, processes every entry, and logs the final
// tally. Entry failures never abort the run: the returned error is either
// a fatal preparation failure or the summary error when at least one entry
// failed, so callers can exit non-zero. Results are in manifest order
// regardless of completion order.
func (ins *Installer) Run(ctx context.Context) ([]FetchResult, error) {
	ins.cfg.Logger.Info().
		Str("run_id", ins.runID).
		Str("models_dir", ins.cfg.ModelsDir).
		Int("entries", len(ins.entries)).
		Int("concurrency", ins.cfg.Concurrency).
		Msg("install start")
	ins.publish(EventRunStart, nil, map[string]any{"entries": len(ins.entries)})

	if err := ins.prepareDirs(); err != nil {
		ins.setRunState(RunFailed)
		ins.cfg.Logger.Error().Err(err).Msg("prepare directories")
		return nil, err
	}

	results := make([]FetchResult, len(ins.entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ins.cfg.Concurrency)
	for i, e := range ins.entries {
		i, e := i, e // per-iteration copies: required while go.mod targets go < 1.22
		g.Go(func() error {
			results[i] = ins.fetchOrSkip(gctx, e)
			return nil
		})
	}
	// Workers isolate their own failures; Wait only joins them.
	_ = g.Wait()

	var skipped, downloaded, failed int
	for _, r := range results {
		switch r.Outcome {
		case OutcomeSkipped:
			skipped++
		case OutcomeDownloaded:
			downloaded++
		case OutcomeFailed:
			failed++
			ins.cfg.Logger.Error().Str("group", r.Group).Str("path", r.Path).Err(r.Err).Msg("failed entry")
		}
	}
	ins.publish(EventRunDone, nil, map[string]any{
		"skipped": skipped, "downloaded": downloaded, "failed": failed,
	})

	if failed > 0 {
		ins.setRunState(RunFailed)
		ins.cfg.Logger.Error().
			Int("skipped", skipped).Int("downloaded", downloaded).Int("failed", failed).
			Msg("install finished with failures")
		return results, ErrEntriesFailed(failed, len(ins.entries))
	}
	ins.setRunState(RunDone)
	ins.cfg.Logger.Info().
		Int("skipped", skipped).Int("downloaded", downloaded).Int("failed", failed).
		Msg("install done")
	return results, nil
}

// Plan reports what Run would do without touching the network: the
// presence check per entry, in manifest order.
func (ins *Installer) Plan() []PlanItem {
	items := make([]PlanItem, 0, len(ins.entries))
	for _, e := range ins.entries {
		items = append(items, PlanItem{
			Group:   e.group,
			Path:    e.path,
			URL:     e.url,
			Present: fsutil.PathExists(e.dest),
		})
	}
	return items
}
