package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong or
// suspicious about it. The caller decides whether warnings are fatal.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Keywords = trimList(out.Keywords)
	out.Filters.EmploymentTypesBlock = trimList(out.Filters.EmploymentTypesBlock)
	out.Fetch.UserAgents = trimList(out.Fetch.UserAgents)

	if len(out.Keywords) == 0 {
		res.addErr("keywords must have at least 1 entry")
	}

	if !out.Sources.CareerBuilder.Enabled && !out.Sources.Indeed.Enabled && !out.Sources.Dice.Enabled {
		res.addErr("no sources enabled")
	}

	checkPaged := func(name string, s PagedSource) {
		if !s.Enabled {
			return
		}
		if strings.TrimSpace(s.URLTemplate) == "" {
			res.addErr("sources.%s.url_template is required when enabled", name)
		} else if !strings.Contains(s.URLTemplate, "{keyword}") || !strings.Contains(s.URLTemplate, "{page}") {
			res.addErr("sources.%s.url_template must contain {keyword} and {page}", name)
		}
		if strings.TrimSpace(s.BaseURL) == "" {
			res.addErr("sources.%s.base_url is required when enabled", name)
		}
		if s.Pages <= 0 {
			res.addErr("sources.%s.pages must be > 0", name)
		} else if s.Pages > 50 {
			res.addWarn("sources.%s.pages is very high (%d); runs will be slow.", name, s.Pages)
		}
	}
	checkPaged("careerbuilder", out.Sources.CareerBuilder)
	checkPaged("indeed", out.Sources.Indeed)

	out.Sources.Dice.SearchURLs = trimList(out.Sources.Dice.SearchURLs)
	if d := out.Sources.Dice; d.Enabled {
		if strings.TrimSpace(d.Endpoint) == "" {
			res.addErr("sources.dice.endpoint is required when enabled")
		}
		switch d.SearchMode {
		case DiceSearchKeyword:
		case DiceSearchURL:
			if len(d.SearchURLs) == 0 {
				res.addErr("sources.dice.search_urls must have at least 1 entry in url mode")
			}
		case "":
			out.Sources.Dice.SearchMode = DiceSearchKeyword
		default:
			res.addErr("sources.dice.search_mode must be %q or %q", DiceSearchKeyword, DiceSearchURL)
		}
		if d.PageSize <= 0 {
			res.addErr("sources.dice.page_size must be > 0")
		}
	}

	if out.Fetch.RequestsPerSec < 0 {
		res.addErr("fetch.requests_per_sec must be >= 0")
	} else if out.Fetch.RequestsPerSec > 2 {
		res.addWarn("fetch.requests_per_sec is high (%.1f) and may get the proxy blocked.", out.Fetch.RequestsPerSec)
	}
	if len(out.Fetch.UserAgents) == 0 {
		res.addWarn("fetch.user_agents is empty; requests will go out with the default Go agent.")
	}
	if out.Fetch.TimeoutSeconds <= 0 {
		out.Fetch.TimeoutSeconds = 30
	}

	if strings.TrimSpace(out.Output.Dir) == "" {
		out.Output.Dir = "output"
	}

	return out, res
}
