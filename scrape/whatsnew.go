package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/goquery"
)

// WhatsNew lists the "What's New" articles linked from the docs index with
// each article's title and editor/author line.
func (s *Scraper) WhatsNew(ctx context.Context) (*pydocs.Table, error) {
	indexURL, err := goquery.ResolveURL(s.docsURL(), "whatsnew/")
	if err != nil {
		return nil, err
	}

	doc, err := s.page(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	section, err := goquery.FindRequired(doc.Selection, "section", goquery.Attr("id", "what-s-new-in-python"))
	if err != nil {
		return nil, err
	}
	wrapper, err := goquery.FindRequired(section, "div", goquery.Class("toctree-wrapper"))
	if err != nil {
		return nil, err
	}

	var links []string
	for _, li := range goquery.FindAll(wrapper, "li", goquery.Class("toctree-l1")).EachIter() {
		a, err := goquery.FindRequired(li, "a")
		if err != nil {
			s.logger().Error("release entry without link", "err", err)
			continue
		}
		link, err := goquery.ResolveURL(indexURL, a.AttrOr("href", ""))
		if err != nil {
			s.logger().Error("release entry with bad link", "err", err)
			continue
		}
		links = append(links, link)
	}

	rows, err := collect(ctx, s, links, s.whatsNewArticle)
	if err != nil {
		return nil, err
	}

	t := pydocs.NewTable("Article link", "Title", "Editor, Author")
	for _, row := range rows {
		if err := t.Append(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (s *Scraper) whatsNewArticle(ctx context.Context, url string) ([]string, error) {
	doc, err := s.page(ctx, url)
	if err != nil {
		return nil, err
	}
	h1, err := goquery.FindRequired(doc.Selection, "h1")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	dl, err := goquery.FindRequired(doc.Selection, "dl")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return []string{url, h1.Text(), strings.ReplaceAll(dl.Text(), "\n", "")}, nil
}
