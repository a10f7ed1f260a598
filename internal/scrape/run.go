// Package scrape turns fetched documents into deduplicated canonical records.
package scrape

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/fetch"
	"jobscout-engine/internal/scrape/aggregate"
	"jobscout-engine/internal/scrape/careerbuilder"
	"jobscout-engine/internal/scrape/dice"
	"jobscout-engine/internal/scrape/indeed"
	"jobscout-engine/internal/scrape/types"
)

// Fetcher is what the runner needs from the transport collaborator.
type Fetcher interface {
	Get(ctx context.Context, rawURL string, header http.Header) ([]byte, error)
}

var _ Fetcher = (*fetch.Client)(nil)

// Runner walks one source's (keyword x page) grid strictly in order, so the
// final aggregate preserves fetch order: keyword, then page, then the order
// listings appear in each document.
type Runner struct {
	cfg        config.Config
	fetcher    Fetcher
	diceAPIKey string
	now        func() time.Time
}

func NewRunner(cfg config.Config, fetcher Fetcher, diceAPIKey string) *Runner {
	return &Runner{
		cfg:        cfg,
		fetcher:    fetcher,
		diceAPIKey: diceAPIKey,
		now:        time.Now,
	}
}

// RunSource processes every grid unit of one source and returns the
// deduplicated records. Per-unit failures (fetch error, layout mismatch,
// malformed listing) are logged and skipped; only cancellation stops the grid.
func (r *Runner) RunSource(ctx context.Context, src domain.Source) ([]domain.Record, error) {
	switch src {
	case domain.SourceCareerBuilder:
		return r.runCareerBuilder(ctx)
	case domain.SourceIndeed:
		return r.runIndeed(ctx)
	case domain.SourceDice:
		return r.runDice(ctx)
	}
	return nil, fmt.Errorf("unknown source %q", src)
}

func (r *Runner) runCareerBuilder(ctx context.Context) ([]domain.Record, error) {
	s := r.cfg.Sources.CareerBuilder
	b := aggregate.NewBuilder()

	for _, kw := range r.cfg.Keywords {
		// the site wants lower-case keywords with encoded spaces
		urlKeyword := strings.ReplaceAll(strings.ToLower(kw), " ", "%20")

		for page := 0; page < s.Pages; page++ {
			fctx := types.FetchContext{
				Source:      domain.SourceCareerBuilder,
				BaseURL:     s.BaseURL,
				Keyword:     kw,
				Page:        page,
				RetrievedAt: r.now(),
			}
			doc, err := r.fetcher.Get(ctx, expandTemplate(s.URLTemplate, urlKeyword, page), nil)
			if err != nil {
				if ctx.Err() != nil {
					return b.Finalize(), ctx.Err()
				}
				log.Printf("[careerbuilder] fetch failed (keyword=%q page=%d): %v", kw, page, err)
				continue
			}

			listings, err := careerbuilder.Extract(doc, fctx)
			if err != nil {
				log.Printf("[careerbuilder] extract failed (keyword=%q page=%d): %v", kw, page, err)
				continue
			}
			for _, l := range listings {
				rec, err := FromCareerBuilder(l, fctx)
				if err != nil {
					log.Printf("[careerbuilder] dropped listing (keyword=%q page=%d): %v", kw, page, err)
					continue
				}
				r.keep(b, rec)
			}
		}
	}
	return b.Finalize(), nil
}

func (r *Runner) runIndeed(ctx context.Context) ([]domain.Record, error) {
	s := r.cfg.Sources.Indeed
	b := aggregate.NewBuilder()

	for _, kw := range r.cfg.Keywords {
		for page := 0; page < s.Pages; page++ {
			offset := page * 10 // the site paginates in steps of ten
			fctx := types.FetchContext{
				Source:      domain.SourceIndeed,
				BaseURL:     s.BaseURL,
				Keyword:     kw,
				Page:        offset,
				RetrievedAt: r.now(),
			}
			doc, err := r.fetcher.Get(ctx, expandTemplate(s.URLTemplate, kw, offset), nil)
			if err != nil {
				if ctx.Err() != nil {
					return b.Finalize(), ctx.Err()
				}
				log.Printf("[indeed] fetch failed (keyword=%q page=%d): %v", kw, offset, err)
				continue
			}

			cards, err := indeed.Extract(doc, fctx)
			if err != nil {
				log.Printf("[indeed] extract failed (keyword=%q page=%d): %v", kw, offset, err)
				continue
			}
			for _, c := range cards {
				rec, err := FromIndeed(c, fctx)
				if err != nil {
					log.Printf("[indeed] dropped card (keyword=%q page=%d): %v", kw, offset, err)
					continue
				}
				r.keep(b, rec)
			}
		}
	}
	return b.Finalize(), nil
}

func (r *Runner) runDice(ctx context.Context) ([]domain.Record, error) {
	s := r.cfg.Sources.Dice
	b := aggregate.NewBuilder()

	header := http.Header{}
	if r.diceAPIKey != "" {
		header.Set("x-api-key", r.diceAPIKey)
	}

	// keyword mode queries the run's keywords; url mode replays the captured
	// search URLs from config
	queries := r.cfg.Keywords
	if s.SearchMode == config.DiceSearchURL {
		queries = s.SearchURLs
	}

	for _, kw := range queries {
		fctx := types.FetchContext{
			Source:      domain.SourceDice,
			Keyword:     kw,
			Page:        1,
			RetrievedAt: r.now(),
		}

		params, err := dice.Params(s, kw)
		if err != nil {
			log.Printf("[dice] bad query for keyword %q: %v", kw, err)
			continue
		}
		doc, err := r.fetcher.Get(ctx, s.Endpoint+"?"+params.Encode(), header)
		if err != nil {
			if ctx.Err() != nil {
				return b.Finalize(), ctx.Err()
			}
			log.Printf("[dice] fetch failed (keyword=%q): %v", kw, err)
			continue
		}

		items, err := dice.Extract(doc, fctx)
		if err != nil {
			log.Printf("[dice] extract failed (keyword=%q): %v", kw, err)
			continue
		}
		for _, it := range items {
			rec, err := FromDice(it, fctx)
			if err != nil {
				log.Printf("[dice] dropped item (keyword=%q): %v", kw, err)
				continue
			}
			r.keep(b, rec)
		}
	}
	return b.Finalize(), nil
}

func (r *Runner) keep(b *aggregate.Builder, rec domain.Record) {
	if ok, why := ShouldKeepRecord(r.cfg, rec); !ok {
		log.Printf("[%s] filtered (%s) title=%q", rec.Source, why, rec.Title)
		return
	}
	b.Add(rec)
}

func expandTemplate(tmpl, keyword string, page int) string {
	return strings.NewReplacer(
		"{keyword}", keyword,
		"{page}", strconv.Itoa(page),
	).Replace(tmpl)
}
