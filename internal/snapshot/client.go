package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vaibhavrajebhosale/swing-digest/pkg/config"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/httputil"
	"github.com/vaibhavrajebhosale/swing-digest/pkg/logger"
)

// Client fetches the latest point-in-time table exports from the CDN.
// Every fetch is a single best-effort attempt: a timed-out, failed, or
// malformed response degrades that table to absent and the run goes on.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	branch     string
}

// NewClient creates a snapshot client from config
func NewClient(cfg config.SnapshotConfig, log *logger.Logger) *Client {
	hc := httputil.New(time.Duration(cfg.TimeoutSeconds)*time.Second, log).
		WithRateLimit(5, 2).
		WithHeader("Accept", "application/json").
		WithHeader("User-Agent", cfg.UserAgent).
		WithHeader("Cache-Control", "no-cache")

	return &Client{
		httpClient: hc,
		logger:     log,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		branch:     cfg.Branch,
	}
}

// monthSlug is the YYYY-MM path segment for the current UTC month.
// Not injectable: a run that crosses into a new month silently repoints
// to the new month's path.
func monthSlug() string {
	return time.Now().UTC().Format("2006-01")
}

// TableURL returns the latest-snapshot URL for one named table
func (c *Client) TableURL(table string) string {
	return fmt.Sprintf("%s/snapshots/%s/%s/latest/%s.json", c.baseURL, monthSlug(), c.branch, table)
}

// ManifestURL returns the URL of the snapshot manifest record
func (c *Client) ManifestURL() string {
	return c.TableURL("manifest")
}

// FetchTable fetches and decodes one table, or nil when absent
func (c *Client) FetchTable(ctx context.Context, table string) map[string]any {
	return c.fetch(ctx, c.TableURL(table))
}

// FetchManifest fetches the snapshot manifest record, or nil when absent
func (c *Client) FetchManifest(ctx context.Context) map[string]any {
	return c.fetch(ctx, c.ManifestURL())
}

func (c *Client) fetch(ctx context.Context, url string) map[string]any {
	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		}).Warn("Snapshot fetch failed")
		return nil
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		}).Warn("Snapshot body read failed")
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WithFields(map[string]interface{}{
			"url":         url,
			"status_code": resp.StatusCode,
			"body":        body,
		}).Warn("Snapshot fetch returned non-2xx status")
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		c.logger.WithFields(map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		}).Warn("Snapshot payload is not a JSON object")
		return nil
	}

	return obj
}
