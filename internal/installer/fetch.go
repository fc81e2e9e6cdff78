package installer

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// retryBaseDelay is the first backoff interval; it doubles per attempt.
var retryBaseDelay = time.Second

// fetchOrSkip processes one entry to a terminal state and returns its result.
func (ins *Installer) fetchOrSkip(ctx context.Context, e *entry) FetchResult {
	res := FetchResult{Group: e.group, Path: e.path, URL: e.url}

	// Presence is the idempotency check: anything at the destination means
	// a prior run completed it. Size and content are deliberately not
	// examined; the cleanup on failure below is what keeps this sound.
	if _, err := os.Stat(e.dest); err == nil {
		ins.setEntryState(e, StateSkipped, nil)
		ins.publish(EventEntrySkip, e, nil)
		ins.cfg.Logger.Info().Str("group", e.group).Str("path", e.path).Msg("SKIP")
		res.Outcome = OutcomeSkipped
		return res
	}

	// Canceled while queued: record the cause without touching the network.
	if err := ctx.Err(); err != nil {
		ins.setEntryState(e, StateFailed, err)
		ins.publish(EventEntryFail, e, map[string]any{"started": false})
		ins.cfg.Logger.Error().Str("group", e.group).Str("path", e.path).Err(err).Msg("ERROR")
		res.Outcome, res.Err = OutcomeFailed, err
		return res
	}

	ins.setEntryState(e, StateDownloading, nil)
	ins.publish(EventEntryStart, e, nil)
	ins.cfg.Logger.Info().Str("group", e.group).Str("path", e.path).Str("url", e.url).Msg("DOWNLOADING")

	start := time.Now()
	var err error
	for attempt := 0; ; attempt++ {
		err = ins.transfer(ctx, e)
		if err == nil || attempt >= ins.cfg.Retries || ctx.Err() != nil {
			break
		}
		ins.cfg.Logger.Warn().Str("group", e.group).Str("path", e.path).
			Int("attempt", attempt+1).Int("retries", ins.cfg.Retries).Err(err).Msg("retrying")
		if !sleepBackoff(ctx, attempt) {
			break
		}
	}
	dur := time.Since(start)

	if err != nil {
		ins.setEntryState(e, StateFailed, err)
		ins.publish(EventEntryFail, e, map[string]any{"started": true})
		ins.cfg.Logger.Error().Str("group", e.group).Str("path", e.path).Dur("dur", dur).Err(err).Msg("ERROR")
		res.Outcome, res.Err, res.Duration = OutcomeFailed, err, dur
		return res
	}

	n := e.bytes.Load()
	ins.setEntryState(e, StateDownloaded, nil)
	ins.publish(EventEntryDownload, e, map[string]any{"bytes": n, "dur": dur})
	ins.cfg.Logger.Info().Str("group", e.group).Str("path", e.path).Int64("bytes", n).Dur("dur", dur).Msg("OK")
	res.Outcome, res.Bytes, res.Duration = OutcomeDownloaded, n, dur
	return res
}

// transfer streams e.url into e.dest. On any failure, including
// cancellation mid-body, the partial destination is removed so a later run
// cannot mistake it for a completed asset.
func (ins *Installer) transfer(ctx context.Context, e *entry) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return ErrTransfer(e.url, err)
	}
	req.Header.Set("User-Agent", ins.cfg.UserAgent)
	if ins.cfg.Token != "" && tokenHost(req.URL) {
		req.Header.Set("Authorization", "Bearer "+ins.cfg.Token)
	}

	resp, err := ins.cfg.Client.Do(req)
	if err != nil {
		return ErrTransfer(e.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrTransferStatus(e.url, resp.StatusCode)
	}

	out, err := os.Create(e.dest)
	if err != nil {
		return ErrTransfer(e.url, err)
	}
	_, err = io.Copy(&countingWriter{w: out, n: &e.bytes}, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(e.dest)
		e.bytes.Store(0)
		return ErrTransfer(e.url, err)
	}
	return nil
}

// tokenHost limits bearer credentials to Hugging Face hosts. Manifests may
// point anywhere; the token must not follow.
func tokenHost(u *url.URL) bool {
	h := strings.ToLower(u.Hostname())
	return h == "huggingface.co" || strings.HasSuffix(h, ".huggingface.co")
}

// countingWriter tracks bytes written for the status API.
type countingWriter struct {
	w io.Writer
	n *atomic.Int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n.Add(int64(n))
	return n, err
}

// sleepBackoff waits 1s, 2s, 4s, ... between attempts, aborting early on
// cancellation.
func sleepBackoff(ctx context.Context, attempt int) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(retryBaseDelay << attempt):
		return true
	}
}
