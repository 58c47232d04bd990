package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pydocs"
)

// DownloadsDir is the directory, relative to the base directory, that
// archives are saved to.
const DownloadsDir = "downloads"

// Ensure ArchiveStore implements pydocs.ArchiveStore at compile time.
var _ pydocs.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore saves archives under baseDir/downloads. A partially written
// archive is never visible under its final name.
type ArchiveStore struct {
	baseDir string
}

// NewArchiveStore creates a new ArchiveStore.
func NewArchiveStore(baseDir string) *ArchiveStore {
	return &ArchiveStore{baseDir: baseDir}
}

// Save writes the archive bytes unchanged and sets a.Path.
func (s *ArchiveStore) Save(ctx context.Context, a *pydocs.Archive) error {
	if a.Name == "" || a.Name != filepath.Base(a.Name) {
		return pydocs.Errorf(pydocs.EINVALID, "invalid archive name %q", a.Name)
	}

	dir := filepath.Join(s.baseDir, DownloadsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, a.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, a.Data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}

	a.Path = path
	return nil
}
