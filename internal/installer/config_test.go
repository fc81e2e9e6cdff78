package installer

import (
	"testing"

	"modelget/internal/manifest"
	"modelget/pkg/types"
)

func TestNewAppliesDefaults(t *testing.T) {
	man := oneGroup("g", [2]string{"g/a.bin", "https://example.com/a.bin"})
	ins, err := New(man, Config{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if ins.ModelsDir() != defaultModelsDir {
		t.Fatalf("models dir=%q", ins.ModelsDir())
	}
	if ins.cfg.Concurrency != defaultConcurrency {
		t.Fatalf("concurrency=%d", ins.cfg.Concurrency)
	}
	if ins.cfg.UserAgent != defaultUserAgent {
		t.Fatalf("user agent=%q", ins.cfg.UserAgent)
	}
	if ins.cfg.Client == nil || ins.cfg.Events == nil {
		t.Fatalf("client/events not defaulted")
	}
	if len(ins.entries) != 1 || ins.entries[0].state != StatePending {
		t.Fatalf("entries: %+v", ins.entries)
	}
}

func TestNewNormalizesNegatives(t *testing.T) {
	man := oneGroup("g", [2]string{"g/a.bin", "https://example.com/a.bin"})
	ins, err := New(man, Config{Concurrency: -3, Retries: -1})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if ins.cfg.Concurrency != 1 || ins.cfg.Retries != 0 {
		t.Fatalf("concurrency=%d retries=%d", ins.cfg.Concurrency, ins.cfg.Retries)
	}
}

func TestNewRejectsInvalidManifest(t *testing.T) {
	dup := &types.Manifest{Groups: []types.AssetGroup{
		{Name: "a", Assets: []types.AssetEntry{{Path: "x/f.bin", URL: "https://example.com/1"}}},
		{Name: "b", Assets: []types.AssetEntry{{Path: "x/f.bin", URL: "https://example.com/2"}}},
	}}
	if _, err := New(dup, Config{}); err == nil || !manifest.IsIntegrityError(err) {
		t.Fatalf("expected integrity error, got %v", err)
	}
	if _, err := New(nil, Config{}); err == nil {
		t.Fatalf("nil manifest accepted")
	}
}

func TestEntryStateTerminal(t *testing.T) {
	for s, want := range map[EntryState]bool{
		StatePending:     false,
		StateDownloading: false,
		StateSkipped:     true,
		StateDownloaded:  true,
		StateFailed:      true,
	} {
		if got := s.Terminal(); got != want {
			t.Fatalf("Terminal(%s)=%v", s, got)
		}
	}
}
