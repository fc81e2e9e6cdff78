package types

// AssetEntry is one artifact the installer ensures on disk: a destination
// path relative to the models root and the URL the bytes come from.
type AssetEntry struct {
	// Destination path relative to the models root. Unique across the manifest.
	// example: llm/Meta-Llama-3.1-8B-Instruct-Q4_K_M.gguf
	Path string `json:"path" yaml:"path" toml:"path" example:"llm/Meta-Llama-3.1-8B-Instruct-Q4_K_M.gguf"`
	// Absolute http(s) source URL. Query parameters are preserved.
	// example: https://huggingface.co/Systran/faster-whisper-small/resolve/main/model.bin?download=true
	URL string `json:"url" yaml:"url" toml:"url" example:"https://huggingface.co/Systran/faster-whisper-small/resolve/main/model.bin?download=true"`
}

// AssetGroup is an ordered set of entries installed together under one name.
type AssetGroup struct {
	// Group name used in logs and reports.
	// example: whisper
	Name string `json:"name" yaml:"name" toml:"name" example:"whisper"`
	// Entries in declaration order.
	Assets []AssetEntry `json:"assets" yaml:"assets" toml:"assets"`
}

// Manifest is the full declaration of what the models tree must contain.
// Group and entry order is the order work is announced and reported in;
// no entry depends on another entry's outcome.
type Manifest struct {
	Groups []AssetGroup `json:"groups" yaml:"groups" toml:"groups"`
}

// Entries flattens the manifest into declaration order.
func (m *Manifest) Entries() []ManifestEntry {
	var out []ManifestEntry
	for _, g := range m.Groups {
		for _, a := range g.Assets {
			out = append(out, ManifestEntry{Group: g.Name, Path: a.Path, URL: a.URL})
		}
	}
	return out
}

// ManifestEntry is a flattened manifest entry with its group name attached.
type ManifestEntry struct {
	Group string `json:"group"`
	Path  string `json:"path"`
	URL   string `json:"url"`
}
