package sitemeta

import "context"

// DefaultDisallow is the crawl denylist applied when a site does not
// configure one. The prefixes cover the conventional non-content surfaces.
var DefaultDisallow = []string{"/api/", "/admin/", "/internal/"}

// RobotsRule is one user-agent group of a robots policy.
type RobotsRule struct {
	UserAgent string   `json:"userAgent"`
	Disallow  []string `json:"disallow,omitempty"`
	Allow     []string `json:"allow,omitempty"`
}

// RobotsPolicy is the complete crawl policy for a site.
type RobotsPolicy struct {
	Rules []RobotsRule `json:"rules"`

	// SitemapURL is the absolute URL of the sitemap the policy advertises.
	SitemapURL string `json:"sitemapUrl"`
}

// RobotsService derives the crawl policy for a site.
type RobotsService interface {
	// BuildRobots returns the policy for site. It fails with ECONFLICT
	// when a disallow prefix would hide a route the catalog publishes,
	// since a page cannot be both advertised in the sitemap and blocked
	// from crawling.
	BuildRobots(ctx context.Context, site *Site, catalog *Catalog) (*RobotsPolicy, error)
}
