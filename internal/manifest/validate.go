package manifest

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"modelget/pkg/types"
)

// integrityError marks a manifest the installer must refuse to act on.
type integrityError struct{ msg string }

func (e integrityError) Error() string { return "manifest integrity: " + e.msg }

// ErrIntegrity constructs an integrityError.
func ErrIntegrity(format string, args ...any) error {
	return integrityError{msg: fmt.Sprintf(format, args...)}
}

// IsIntegrityError reports whether err indicates a manifest rejected at load time.
func IsIntegrityError(err error) bool {
	_, ok := err.(integrityError)
	return ok
}

// Validate rejects manifests the installer must not act on: no assets,
// unnamed groups, malformed URLs, absolute or escaping destination paths,
// and duplicate destinations. It runs before any directory or network activity.
func Validate(m *types.Manifest) error {
	if m == nil || len(m.Groups) == 0 {
		return ErrIntegrity("manifest declares no asset groups")
	}
	total := 0
	seen := make(map[string]string) // cleaned path -> group name
	for gi, g := range m.Groups {
		if strings.TrimSpace(g.Name) == "" {
			return ErrIntegrity("group %d has no name", gi)
		}
		for _, a := range g.Assets {
			total++
			rel, err := CleanPath(a.Path)
			if err != nil {
				return ErrIntegrity("group %q: %v", g.Name, err)
			}
			if prev, dup := seen[rel]; dup {
				return ErrIntegrity("duplicate destination path %q (declared in %q and %q)", rel, prev, g.Name)
			}
			seen[rel] = g.Name
			if err := checkURL(a.URL); err != nil {
				return ErrIntegrity("group %q: %s: %v", g.Name, rel, err)
			}
		}
	}
	if total == 0 {
		return ErrIntegrity("manifest declares no assets")
	}
	return nil
}

// CleanPath normalizes a destination path to slash form and rejects paths
// that do not stay under the models root.
func CleanPath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("empty destination path")
	}
	if filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return "", fmt.Errorf("destination %q must be relative to the models root", p)
	}
	c := path.Clean(filepath.ToSlash(p))
	if c == "." || c == "/" || strings.HasSuffix(p, "/") {
		return "", fmt.Errorf("destination %q does not name a file", p)
	}
	if c == ".." || strings.HasPrefix(c, "../") {
		return "", fmt.Errorf("destination %q escapes the models root", p)
	}
	return c, nil
}

func checkURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("empty source url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("malformed url %q: %v", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("malformed url %q: need an absolute http(s) url", raw)
	}
	return nil
}

// Dirs returns the destination directories of m, relative to the models
// root, deduplicated in declaration order. Top-level files contribute no
// entry; the preparer creates the root itself unconditionally.
// m must have passed Validate.
func Dirs(m *types.Manifest) []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, e := range m.Entries() {
		rel, err := CleanPath(e.Path)
		if err != nil {
			continue
		}
		d := path.Dir(rel)
		if d == "." || seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}
