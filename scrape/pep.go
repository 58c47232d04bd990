package scrape

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/pydocs"
	"github.com/fwojciec/pydocs/goquery"
)

// Mismatch records a PEP whose status is not among those expected for its
// prefix.
type Mismatch struct {
	URL      string
	Status   string
	Expected []string
}

// PEP counts the statuses of every PEP in the numerical index.
func (s *Scraper) PEP(ctx context.Context) (*pydocs.Table, error) {
	indexURL := s.pepsURL()

	doc, err := s.page(ctx, indexURL)
	if err != nil {
		return nil, err
	}
	section, err := goquery.FindRequired(doc.Selection, "section", goquery.Attr("id", "numerical-index"))
	if err != nil {
		return nil, err
	}

	var links []string
	for _, a := range goquery.FindAll(section, "a", goquery.ClassSet("pep", "reference", "internal")).EachIter() {
		link, err := goquery.ResolveURL(indexURL, a.AttrOr("href", ""))
		if err != nil {
			s.logger().Error("PEP entry with bad link", "err", err)
			continue
		}
		links = append(links, link)
	}

	statuses, err := collect(ctx, s, links, s.pepStatus)
	if err != nil {
		return nil, err
	}

	t, mismatches := TallyStatuses(statuses)
	for _, m := range mismatches {
		s.logger().Warn("unexpected PEP status",
			"url", m.URL,
			"status", m.Status,
			"expected", strings.Join(m.Expected, ", "),
		)
	}
	return t, nil
}

// PEPStatus is the status read from a single PEP page.
type PEPStatus struct {
	URL    string
	Status string
}

func (s *Scraper) pepStatus(ctx context.Context, url string) (PEPStatus, error) {
	doc, err := s.page(ctx, url)
	if err != nil {
		return PEPStatus{}, err
	}
	abbr, err := goquery.FindRequired(doc.Selection, "abbr")
	if err != nil {
		return PEPStatus{}, fmt.Errorf("%s: %w", url, err)
	}
	return PEPStatus{URL: url, Status: abbr.Text()}, nil
}

// TallyStatuses counts statuses in first-seen order and appends a total
// row. Every status is counted, including those that do not match their
// expected set; those are also returned as mismatches.
func TallyStatuses(statuses []PEPStatus) (*pydocs.Table, []Mismatch) {
	var (
		order      []string
		counts     = make(map[string]int)
		mismatches []Mismatch
	)
	for _, ps := range statuses {
		if expected, ok := pydocs.CheckStatus(ps.Status); !ok {
			mismatches = append(mismatches, Mismatch{URL: ps.URL, Status: ps.Status, Expected: expected})
		}
		if _, seen := counts[ps.Status]; !seen {
			order = append(order, ps.Status)
		}
		counts[ps.Status]++
	}

	t := pydocs.NewTable("Status", "Count")
	for _, status := range order {
		t.Rows = append(t.Rows, []string{status, strconv.Itoa(counts[status])})
	}
	t.Rows = append(t.Rows, []string{"Total:", strconv.Itoa(len(statuses))})
	return t, mismatches
}
