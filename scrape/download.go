package scrape

import (
	"context"
	"regexp"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/goquery"
)

var archivePattern = regexp.MustCompile(`.+pdf-a4\.zip$`)

// Download fetches the A4 PDF documentation archive linked from the
// downloads page and saves it to the archive store.
func (s *Scraper) Download(ctx context.Context) (*pydocs.Archive, error) {
	if s.Archives == nil {
		return nil, pydocs.Errorf(pydocs.EINVALID, "no archive store configured")
	}

	downloadsURL, err := goquery.ResolveURL(s.docsURL(), "download.html")
	if err != nil {
		return nil, err
	}
	doc, err := s.page(ctx, downloadsURL)
	if err != nil {
		return nil, err
	}
	table, err := goquery.FindRequired(doc.Selection, "table", goquery.Class("docutils"))
	if err != nil {
		return nil, err
	}
	a, err := goquery.FindRequired(table, "a", goquery.AttrRegexp("href", archivePattern))
	if err != nil {
		return nil, err
	}

	archiveURL, err := goquery.ResolveURL(downloadsURL, a.AttrOr("href", ""))
	if err != nil {
		return nil, err
	}
	name, err := pydocs.ArchiveName(archiveURL)
	if err != nil {
		return nil, err
	}

	res, err := s.Fetcher.Fetch(ctx, archiveURL)
	if err != nil {
		return nil, err
	}

	archive := &pydocs.Archive{URL: archiveURL, Name: name, Data: res.Body}
	if err := s.Archives.Save(ctx, archive); err != nil {
		return nil, err
	}
	s.logger().Info("archive downloaded and saved", "path", archive.Path, "bytes", len(archive.Data))
	return archive, nil
}
