package installer

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"modelget/internal/common/fsutil"
	"modelget/internal/manifest"
	"modelget/pkg/types"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultModelsDir     = "models"
	defaultConcurrency   = 1
	defaultHeaderTimeout = 30 * time.Second
	defaultUserAgent     = "modelget"
)

// Config encapsulates all tunables for Installer construction.
type Config struct {
	// ModelsDir is the root the manifest's destination paths resolve under.
	ModelsDir string
	// Concurrency bounds simultaneous transfers. 1 means strictly sequential.
	Concurrency int
	// Retries is the number of re-attempts after a failed transfer.
	// 0 means a transfer either succeeds or fails on its only attempt.
	Retries int
	// HeaderTimeout bounds the wait for response headers. It deliberately
	// does not bound the body read: assets are multi-gigabyte.
	HeaderTimeout time.Duration
	// Token, when set, is sent as a bearer credential to huggingface.co
	// hosts only. Other hosts never see it.
	Token string
	// UserAgent for outgoing requests.
	UserAgent string
	// Client overrides the HTTP client (tests). Redirect following is the
	// client's default behavior, capped at 10 hops.
	Client *http.Client
	// Logger receives per-entry lifecycle lines. Defaults to a no-op logger.
	Logger zerolog.Logger
	// Events receives lifecycle events. Defaults to a no-op publisher.
	Events EventPublisher
}

// New constructs an Installer from a manifest and Config, applying
// defaults. The manifest is validated here so integrity defects surface
// before any directory or network activity.
func New(man *types.Manifest, cfg Config) (*Installer, error) {
	if err := manifest.Validate(man); err != nil {
		return nil, err
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = defaultModelsDir
	}
	root, err := fsutil.ExpandHome(cfg.ModelsDir)
	if err != nil {
		return nil, fmt.Errorf("models dir: %w", err)
	}
	cfg.ModelsDir = root
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.HeaderTimeout <= 0 {
		cfg.HeaderTimeout = defaultHeaderTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Client == nil {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		tr.ResponseHeaderTimeout = cfg.HeaderTimeout
		cfg.Client = &http.Client{Transport: tr}
	}
	if cfg.Events == nil {
		cfg.Events = noopPublisher{}
	}

	ins := &Installer{
		cfg:     cfg,
		man:     man,
		runID:   uuid.NewString(),
		state:   RunInstalling,
		started: time.Now(),
	}
	for _, me := range man.Entries() {
		rel, err := manifest.CleanPath(me.Path)
		if err != nil {
			// Validate above already rejected these.
			return nil, err
		}
		ins.entries = append(ins.entries, &entry{
			group: me.Group,
			path:  rel,
			url:   me.URL,
			dest:  filepath.Join(root, filepath.FromSlash(rel)),
			state: StatePending,
		})
	}
	return ins, nil
}
