package scrape

import (
	"context"
	"regexp"
	"strings"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/goquery"
)

var versionPattern = regexp.MustCompile(`Python (?P<version>\d\.\d+) \((?P<status>.*)\)`)

// ParseVersion extracts the version and status from a sidebar link text
// such as "Python 3.11 (stable)". Text that does not match is returned as
// the version with an empty status.
func ParseVersion(text string) (version, status string) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return text, ""
	}
	return m[versionPattern.SubexpIndex("version")], m[versionPattern.SubexpIndex("status")]
}

// LatestVersions lists the documentation versions from the docs sidebar.
func (s *Scraper) LatestVersions(ctx context.Context) (*pydocs.Table, error) {
	doc, err := s.page(ctx, s.docsURL())
	if err != nil {
		return nil, err
	}
	sidebar, err := goquery.FindRequired(doc.Selection, "div", goquery.Class("sphinxsidebarwrapper"))
	if err != nil {
		return nil, err
	}

	var list *pq.Selection
	for _, ul := range goquery.FindAll(sidebar, "ul").EachIter() {
		if strings.Contains(ul.Text(), "All versions") {
			list = ul
			break
		}
	}
	if list == nil {
		return nil, pydocs.Errorf(pydocs.ESTRUCTURE, "nothing found: no version list in sidebar")
	}

	t := pydocs.NewTable("Documentation link", "Version", "Status")
	for _, a := range goquery.FindAll(list, "a").EachIter() {
		version, status := ParseVersion(a.Text())
		if err := t.Append(a.AttrOr("href", ""), version, status); err != nil {
			return nil, err
		}
	}
	return t, nil
}
