// Package careerbuilder parses CareerBuilder's server-rendered result pages.
package careerbuilder

import (
	"bytes"
	"fmt"
	"log"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/scrape/types"
	"jobscout-engine/internal/scrape/util"
)

// Listing is the raw per-posting extraction, verbatim from one result item.
// Fields stay source-shaped; the assembler normalizes them.
type Listing struct {
	PublishTime    string // relative phrase, e.g. "2 days ago"
	Title          string
	Company        string
	Location       string
	EmploymentType string
	Href           string // site-relative posting link
	ResultText     string // salary/summary block as shown
}

const (
	containerSel = "div.collapsed-activated"
	itemSel      = "li.data-results-content-parent"
)

// Extract walks the listing containers of one fetched page. A page without
// containers (layout change, empty result set) yields an empty slice, not an
// error; an item missing a required lookup is skipped and its siblings kept.
func Extract(doc []byte, fctx types.FetchContext) ([]Listing, error) {
	page, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("careerbuilder parse html: %w", err)
	}

	containers := page.Find(containerSel)
	if containers.Length() == 0 {
		log.Printf("[careerbuilder] no listing containers (keyword=%q page=%d)", fctx.Keyword, fctx.Page)
		return nil, nil
	}

	var out []Listing
	containers.Each(func(_ int, container *goquery.Selection) {
		container.Find(itemSel).Each(func(i int, item *goquery.Selection) {
			l, err := extractItem(item)
			if err != nil {
				log.Printf("[careerbuilder] skipping item %d (keyword=%q page=%d): %v",
					i, fctx.Keyword, fctx.Page, err)
				return
			}
			out = append(out, l)
		})
	})
	return out, nil
}

func extractItem(item *goquery.Selection) (Listing, error) {
	var l Listing

	l.PublishTime = util.CleanText(item.Find("div.data-results-publish-time").First().Text())
	if l.PublishTime == "" {
		return l, fmt.Errorf("missing publish time")
	}

	l.Title = util.CleanText(item.Find("div.data-results-title").First().Text())
	if l.Title == "" {
		return l, fmt.Errorf("missing title")
	}

	details := item.Find("div.data-details").First().Find("span")
	if details.Length() < 3 {
		return l, fmt.Errorf("expected 3 detail spans, found %d", details.Length())
	}
	l.Company = util.CleanText(details.Eq(0).Text())
	l.Location = util.CleanText(details.Eq(1).Text())
	l.EmploymentType = util.CleanText(details.Eq(2).Text())

	href, ok := item.Find("a.data-results-content").First().Attr("href")
	if !ok || href == "" {
		return l, fmt.Errorf("missing posting link")
	}
	l.Href = href

	result := item.Find("div.block:not(.show-mobile)").First()
	if result.Length() == 0 {
		return l, fmt.Errorf("missing result block")
	}
	l.ResultText = util.CleanText(result.Text())

	return l, nil
}
