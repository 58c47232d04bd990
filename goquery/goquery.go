// Package goquery implements HTML lookups for pydocs using goquery.
//
// Elements are located by tag name plus a list of typed attribute matchers,
// always in document order.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pydocs"
)

// Parse parses an HTML page. The parser is the tolerant HTML5 one, so
// malformed markup still yields a document.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pydocs.Errorf(pydocs.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// FindAll returns every descendant of sel with the given tag that satisfies
// all matchers, in document order.
func FindAll(sel *goquery.Selection, tag string, matchers ...Matcher) *goquery.Selection {
	return sel.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		for _, m := range matchers {
			if !m.Match(s) {
				return false
			}
		}
		return true
	})
}

// Find returns the first match of FindAll. The selection is empty when
// nothing matches.
func Find(sel *goquery.Selection, tag string, matchers ...Matcher) *goquery.Selection {
	return FindAll(sel, tag, matchers...).First()
}

// FindRequired is like Find but returns a *pydocs.TagNotFoundError when
// nothing matches.
func FindRequired(sel *goquery.Selection, tag string, matchers ...Matcher) (*goquery.Selection, error) {
	found := Find(sel, tag, matchers...)
	if found.Length() == 0 {
		return nil, &pydocs.TagNotFoundError{Tag: tag, Attrs: describe(matchers)}
	}
	return found, nil
}

// ResolveURL resolves href against base. Unlike a plain join it reports
// unparseable input instead of silently dropping it.
func ResolveURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", pydocs.Errorf(pydocs.EINVALID, "invalid base URL %q: %v", base, err)
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", pydocs.Errorf(pydocs.EINVALID, "invalid link %q: %v", href, err)
	}
	return b.ResolveReference(ref).String(), nil
}

func describe(matchers []Matcher) string {
	parts := make([]string, len(matchers))
	for i, m := range matchers {
		parts[i] = m.String()
	}
	return strings.Join(parts, "")
}
