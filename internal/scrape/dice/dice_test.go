package dice

import (
	"testing"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/scrape/types"
)

func diceCfg(mode string) config.Dice {
	return config.Dice{
		SearchMode:           mode,
		Country:              "US",
		Radius:               30,
		RadiusUnit:           "mi",
		PageSize:             100,
		Facets:               "employmentType|isRemote",
		Fields:               "id|title|salary",
		EmploymentTypeFilter: "CONTRACTS|PARTTIME",
	}
}

func TestParamsKeywordMode(t *testing.T) {
	v, err := Params(diceCfg(config.DiceSearchKeyword), "Data Analyst")
	if err != nil {
		t.Fatalf("Params error: %v", err)
	}
	if got := v.Get("q"); got != "Data Analyst" {
		t.Errorf("q = %q", got)
	}
	if got := v.Get("countryCode2"); got != "US" {
		t.Errorf("countryCode2 = %q", got)
	}
	if got := v.Get("pageSize"); got != "100" {
		t.Errorf("pageSize = %q", got)
	}
	if got := v.Get("filters.employmentType"); got != "CONTRACTS|PARTTIME" {
		t.Errorf("employment filter = %q", got)
	}
	if v.Get("latitude") != "" {
		t.Errorf("keyword mode must not carry coordinates")
	}
}

func TestParamsURLMode(t *testing.T) {
	search := "https://www.dice.com/jobs?q=data+engineer&location=Austin%2C+TX&latitude=30.26&longitude=-97.74"
	v, err := Params(diceCfg(config.DiceSearchURL), search)
	if err != nil {
		t.Fatalf("Params error: %v", err)
	}
	if got := v.Get("q"); got != "data engineer" {
		t.Errorf("q = %q", got)
	}
	if v.Get("latitude") != "30.26" || v.Get("longitude") != "-97.74" {
		t.Errorf("coordinates = %q / %q", v.Get("latitude"), v.Get("longitude"))
	}
	if got := v.Get("locationPrecision"); got != "city" {
		t.Errorf("locationPrecision = %q", got)
	}
}

func TestParamsUnknownMode(t *testing.T) {
	if _, err := Params(diceCfg("fuzzy"), "x"); err == nil {
		t.Fatal("expected error for unknown search mode")
	}
}

const responseJSON = `{"data":[
 {"id":"d-1","title":"Data Engineer","postedDate":"2024-03-10T00:00:00Z",
  "detailsPageUrl":"https://www.dice.com/job-detail/d-1",
  "jobLocation":{"displayName":"Austin, TX, USA"},
  "salary":"$70 - $80 per hour","companyName":"Acme Staffing",
  "employmentType":"Contracts","workFromHomeAvailability":"TRUE",
  "isRemote":true,"modifiedDate":"2024-03-12T00:00:00Z"},
 {"id":"d-2","title":"Systems Analyst","postedDate":"2024-03-11",
  "detailsPageUrl":"https://www.dice.com/job-detail/d-2",
  "salary":"","companyName":"Widget Co","employmentType":"Part Time",
  "isRemote":false}
]}`

func TestExtract(t *testing.T) {
	items, err := Extract([]byte(responseJSON), types.FetchContext{Keyword: "data engineer"})
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if got := items[0].LocationName(); got != "Austin, TX, USA" {
		t.Errorf("location = %q", got)
	}
	if got := items[1].LocationName(); got != "" {
		t.Errorf("missing jobLocation must flatten to empty, got %q", got)
	}
	if !items[0].IsRemote || items[1].IsRemote {
		t.Errorf("remote flags = %v / %v", items[0].IsRemote, items[1].IsRemote)
	}
}

func TestExtractNoData(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":[]}`, `{"message":"forbidden"}`} {
		items, err := Extract([]byte(body), types.FetchContext{Keyword: "x"})
		if err != nil {
			t.Fatalf("body %s: %v", body, err)
		}
		if len(items) != 0 {
			t.Fatalf("body %s: expected no items", body)
		}
	}
}

func TestExtractMalformed(t *testing.T) {
	if _, err := Extract([]byte(`not json`), types.FetchContext{}); err == nil {
		t.Fatal("expected decode error")
	}
}
