package scrape

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/domain"
)

// stubFetcher serves canned bodies keyed by URL substring and records the
// requests it saw.
type stubFetcher struct {
	bodies map[string]string
	urls   []string
	header http.Header
}

func (f *stubFetcher) Get(_ context.Context, rawURL string, header http.Header) ([]byte, error) {
	f.urls = append(f.urls, rawURL)
	f.header = header
	for frag, body := range f.bodies {
		if strings.Contains(rawURL, frag) {
			return []byte(body), nil
		}
	}
	return nil, errors.New("no canned body")
}

const dupPageHTML = `
<div class="collapsed-activated">
  <li class="data-results-content-parent relative bg-shadow">
    <a class="data-results-content" href="/job/abc123"></a>
    <div class="data-results-publish-time">2 days ago</div>
    <div class="data-results-title">Remote Data Analyst</div>
    <div class="data-details">
      <span>Acme Analytics</span><span>Atlanta, GA</span><span>Contractor</span>
    </div>
    <div class="block">$40 - $50 / hour</div>
  </li>
</div>
<div class="collapsed-activated">
  <li class="data-results-content-parent relative bg-shadow">
    <a class="data-results-content" href="/job/abc123"></a>
    <div class="data-results-publish-time">2 days ago</div>
    <div class="data-results-title">Remote Data Analyst</div>
    <div class="data-details">
      <span>Acme Analytics</span><span>Atlanta, GA</span><span>Contractor</span>
    </div>
    <div class="block">$40 - $50 / hour</div>
  </li>
</div>`

func testConfig() config.Config {
	cfg := config.Config{Keywords: []string{"Data Analyst"}}
	cfg.Sources.CareerBuilder = config.PagedSource{
		Enabled:     true,
		BaseURL:     "https://www.careerbuilder.com",
		URLTemplate: "https://www.careerbuilder.com/jobs?keywords={keyword}&page={page}",
		Pages:       1,
	}
	return cfg
}

func fixedRunner(cfg config.Config, f Fetcher) *Runner {
	r := NewRunner(cfg, f, "")
	r.now = func() time.Time { return retrieved }
	return r
}

func TestRunCareerBuilderDeduplicates(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{"careerbuilder.com": dupPageHTML}}
	r := fixedRunner(testConfig(), f)

	recs, err := r.RunSource(context.Background(), domain.SourceCareerBuilder)
	if err != nil {
		t.Fatalf("RunSource error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected the two identical containers to collapse to 1 record, got %d", len(recs))
	}

	rec := recs[0]
	if rec.JobID != "abc123" {
		t.Errorf("JobID = %q", rec.JobID)
	}
	if rec.URL != "https://www.careerbuilder.com/job/abc123" {
		t.Errorf("URL = %q", rec.URL)
	}
	if rec.WorkMode != domain.WorkModeRemote {
		t.Errorf("WorkMode = %q", rec.WorkMode)
	}
	want := retrieved.AddDate(0, 0, -2).Truncate(24 * time.Hour)
	if rec.PostedDate == nil || !rec.PostedDate.Equal(want) {
		t.Errorf("PostedDate = %v, want %v", rec.PostedDate, want)
	}

	if len(f.urls) != 1 {
		t.Fatalf("expected 1 fetch, got %d", len(f.urls))
	}
	if got := f.urls[0]; !strings.Contains(got, "keywords=data%20analyst") || !strings.Contains(got, "page=0") {
		t.Errorf("request url = %q", got)
	}
}

func TestRunCareerBuilderSkipsFailedPage(t *testing.T) {
	cfg := testConfig()
	cfg.Sources.CareerBuilder.Pages = 2
	cfg.Sources.CareerBuilder.URLTemplate = "https://www.careerbuilder.com/jobs?p={page}&k={keyword}"
	f := &stubFetcher{bodies: map[string]string{"p=1": dupPageHTML}}
	r := fixedRunner(cfg, f)

	recs, err := r.RunSource(context.Background(), domain.SourceCareerBuilder)
	if err != nil {
		t.Fatalf("RunSource error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("surviving page should still yield 1 record, got %d", len(recs))
	}
	if len(f.urls) != 2 {
		t.Fatalf("both pages must be attempted, got %d fetches", len(f.urls))
	}
}

func TestRunCareerBuilderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &stubFetcher{} // every fetch fails, ctx.Err() is set
	r := fixedRunner(testConfig(), f)

	recs, err := r.RunSource(ctx, domain.SourceCareerBuilder)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestRunDiceSendsAPIKey(t *testing.T) {
	cfg := config.Config{Keywords: []string{"data engineer"}}
	cfg.Sources.Dice = config.Dice{
		Enabled:    true,
		Endpoint:   "https://job-search-api.svc.dhigroupinc.com/v1/dice/jobs/search",
		SearchMode: config.DiceSearchKeyword,
		Country:    "US",
		RadiusUnit: "mi",
		Radius:     30,
		PageSize:   100,
	}
	f := &stubFetcher{bodies: map[string]string{"dhigroupinc.com": `{"data":[
		{"id":"d-1","title":"Data Engineer","detailsPageUrl":"https://www.dice.com/job-detail/d-1",
		 "postedDate":"2024-03-10T00:00:00Z","companyName":"Acme","isRemote":true}]}`}}

	r := NewRunner(cfg, f, "secret-key")
	r.now = func() time.Time { return retrieved }

	recs, err := r.RunSource(context.Background(), domain.SourceDice)
	if err != nil {
		t.Fatalf("RunSource error: %v", err)
	}
	if len(recs) != 1 || recs[0].JobID != "d-1" {
		t.Fatalf("records = %+v", recs)
	}
	if got := f.header.Get("x-api-key"); got != "secret-key" {
		t.Errorf("x-api-key = %q", got)
	}
	if !strings.Contains(f.urls[0], "q=data+engineer") {
		t.Errorf("request url = %q", f.urls[0])
	}
}

func TestRunDiceURLMode(t *testing.T) {
	cfg := config.Config{Keywords: []string{"ignored in url mode"}}
	cfg.Sources.Dice = config.Dice{
		Enabled:    true,
		Endpoint:   "https://job-search-api.svc.dhigroupinc.com/v1/dice/jobs/search",
		SearchMode: config.DiceSearchURL,
		SearchURLs: []string{"https://www.dice.com/jobs?q=data+engineer&latitude=30.26&longitude=-97.74"},
		Country:    "US",
		RadiusUnit: "mi",
		Radius:     30,
		PageSize:   100,
	}
	f := &stubFetcher{bodies: map[string]string{"dhigroupinc.com": `{"data":[]}`}}
	r := fixedRunner(cfg, f)

	if _, err := r.RunSource(context.Background(), domain.SourceDice); err != nil {
		t.Fatalf("RunSource error: %v", err)
	}
	if len(f.urls) != 1 {
		t.Fatalf("expected one request per captured url, got %d", len(f.urls))
	}
	got := f.urls[0]
	for _, frag := range []string{"q=data+engineer", "latitude=30.26", "longitude=-97.74", "locationPrecision=city"} {
		if !strings.Contains(got, frag) {
			t.Errorf("request url missing %q: %s", frag, got)
		}
	}
}

func TestRunSourceUnknown(t *testing.T) {
	r := fixedRunner(testConfig(), &stubFetcher{})
	if _, err := r.RunSource(context.Background(), domain.Source("monster")); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
