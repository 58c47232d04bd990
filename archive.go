package pydocs

import (
	"context"
	"net/url"
	"path"
)

// Archive is a downloaded documentation bundle.
type Archive struct {
	URL  string
	Name string // last path segment of URL
	Path string // set by the store once saved
	Data []byte
}

// ArchiveStore persists downloaded archives.
type ArchiveStore interface {
	// Save writes the archive and sets its Path.
	Save(ctx context.Context, a *Archive) error
}

// ArchiveName returns the last path segment of rawURL, which names the file
// an archive is saved under.
func ArchiveName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid archive URL %q: %v", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", Errorf(EINVALID, "archive URL %q has no file name", rawURL)
	}
	return name, nil
}
