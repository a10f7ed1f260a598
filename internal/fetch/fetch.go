// Package fetch is the transport collaborator: it retrieves raw document
// bytes for the pipeline and owns everything polite about doing so (proxy,
// user-agent rotation, per-host pacing). It never interprets what it fetched.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/scrape/util"
)

type Client struct {
	hc      *http.Client
	agents  []string
	limiter *util.HostLimiter
}

func New(cfg config.Config) (*Client, error) {
	tr := &http.Transport{}
	if cfg.Fetch.Proxy != "" {
		pu, err := url.Parse(cfg.Fetch.Proxy)
		if err != nil {
			return nil, fmt.Errorf("fetch parse proxy url: %w", err)
		}
		tr.Proxy = http.ProxyURL(pu)
	}

	return &Client{
		hc: &http.Client{
			Transport: tr,
			Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		},
		agents:  cfg.Fetch.UserAgents,
		limiter: util.NewHostLimiter(cfg.Fetch.RequestsPerSec, 1),
	}, nil
}

func (c *Client) userAgent() string {
	if len(c.agents) == 0 {
		return ""
	}
	return c.agents[rand.Intn(len(c.agents))]
}

// Get fetches one URL after waiting out the host's politeness budget.
// Extra headers (API keys etc.) come from the caller; the user agent is
// rotated here unless the caller pinned one.
func (c *Client) Get(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		if ua := c.userAgent(); ua != "" {
			req.Header.Set("User-Agent", ua)
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		io.Copy(io.Discard, res.Body)
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
