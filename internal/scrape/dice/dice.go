// Package dice builds queries for and parses responses from the Dice job
// search API. The fetch collaborator executes the requests; nothing here
// touches the network.
package dice

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/scrape/types"
)

// Location is the nested jobLocation object; only the display name survives
// into the canonical record.
type Location struct {
	DisplayName string `json:"displayName"`
}

// Item is the raw per-posting projection of one API result.
type Item struct {
	ID                       string    `json:"id"`
	Title                    string    `json:"title"`
	PostedDate               string    `json:"postedDate"`
	DetailsPageURL           string    `json:"detailsPageUrl"`
	JobLocation              *Location `json:"jobLocation"`
	Salary                   string    `json:"salary"`
	CompanyName              string    `json:"companyName"`
	EmploymentType           string    `json:"employmentType"`
	WorkFromHomeAvailability string    `json:"workFromHomeAvailability"`
	IsRemote                 bool      `json:"isRemote"`
	ModifiedDate             string    `json:"modifiedDate"`
}

// LocationName flattens jobLocation to its display name.
func (it Item) LocationName() string {
	if it.JobLocation == nil {
		return ""
	}
	return it.JobLocation.DisplayName
}

type response struct {
	Data []Item `json:"data"`
}

// Extract decodes one API response body. A body without a data array is a
// structural mismatch: empty slice plus a diagnostic, not an error.
func Extract(doc []byte, fctx types.FetchContext) ([]Item, error) {
	var res response
	if err := json.Unmarshal(doc, &res); err != nil {
		return nil, fmt.Errorf("dice decode response: %w", err)
	}
	if len(res.Data) == 0 {
		log.Printf("[dice] empty data for keyword %q", fctx.Keyword)
		return nil, nil
	}
	return res.Data, nil
}

// Params builds the search query for one keyword. In keyword mode the keyword
// is the search text; in URL mode it is a previously captured search URL whose
// q/location/latitude/longitude parameters are lifted out.
func Params(cfg config.Dice, keyword string) (url.Values, error) {
	v := url.Values{
		"countryCode2":           {cfg.Country},
		"radius":                 {strconv.Itoa(cfg.Radius)},
		"radiusUnit":             {cfg.RadiusUnit},
		"page":                   {"1"},
		"pageSize":               {strconv.Itoa(cfg.PageSize)},
		"facets":                 {cfg.Facets},
		"fields":                 {cfg.Fields},
		"culture":                {"en"},
		"recommendations":        {"true"},
		"interactionId":          {"0"},
		"fj":                     {"true"},
		"includeRemote":          {"true"},
		"filters.employmentType": {cfg.EmploymentTypeFilter},
	}

	switch cfg.SearchMode {
	case config.DiceSearchKeyword:
		v.Set("q", keyword)
	case config.DiceSearchURL:
		parsed, err := url.Parse(keyword)
		if err != nil {
			return nil, fmt.Errorf("dice parse search url: %w", err)
		}
		q := parsed.Query()
		v.Set("q", q.Get("q"))
		v.Set("locationPrecision", "city")
		v.Set("latitude", q.Get("latitude"))
		v.Set("longitude", q.Get("longitude"))
	default:
		return nil, fmt.Errorf("dice unknown search mode %q", cfg.SearchMode)
	}

	return v, nil
}
