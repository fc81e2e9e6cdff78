package installer

import (
	"path/filepath"

	"modelget/internal/common/fsutil"
	"modelget/internal/manifest"
)

// prepareDirs creates the models root and every destination directory the
// manifest implies. It completes before the first transfer starts and any
// failure is fatal: no download can proceed without its target directory.
func (ins *Installer) prepareDirs() error {
	if err := fsutil.EnsureDir(ins.cfg.ModelsDir); err != nil {
		return ErrFatal(err)
	}
	for _, d := range manifest.Dirs(ins.man) {
		if err := fsutil.EnsureDir(filepath.Join(ins.cfg.ModelsDir, filepath.FromSlash(d))); err != nil {
			return ErrFatal(err)
		}
	}
	return nil
}
