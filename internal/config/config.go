package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Dice search modes: "keyword" searches by search text, "url" lifts the query
// out of previously captured search URLs.
const (
	DiceSearchKeyword = "keyword"
	DiceSearchURL     = "url"
)

type PagedSource struct {
	Enabled     bool   `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	URLTemplate string `yaml:"url_template"` // {keyword} and {page} placeholders
	Pages       int    `yaml:"pages"`
}

type Dice struct {
	Enabled              bool     `yaml:"enabled"`
	Endpoint             string   `yaml:"endpoint"`
	SearchMode           string   `yaml:"search_mode"` // keyword | url
	SearchURLs           []string `yaml:"search_urls"` // url mode: captured search URLs
	Country              string   `yaml:"country"`
	Radius               int      `yaml:"radius"`
	RadiusUnit           string   `yaml:"radius_unit"`
	PageSize             int      `yaml:"page_size"`
	Facets               string   `yaml:"facets"`
	Fields               string   `yaml:"fields"`
	EmploymentTypeFilter string   `yaml:"employment_type_filter"`
	APIKey               string   `yaml:"api_key"` // fallback when the keyring has none
}

type Config struct {
	Keywords []string `yaml:"keywords"`

	Sources struct {
		CareerBuilder PagedSource `yaml:"careerbuilder"`
		Indeed        PagedSource `yaml:"indeed"`
		Dice          Dice        `yaml:"dice"`
	} `yaml:"sources"`

	Fetch struct {
		Proxy          string   `yaml:"proxy"`
		UserAgents     []string `yaml:"user_agents"`
		RequestsPerSec float64  `yaml:"requests_per_sec"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
	} `yaml:"fetch"`

	Filters struct {
		EmploymentTypesBlock []string `yaml:"employment_types_block"`
	} `yaml:"filters"`

	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
