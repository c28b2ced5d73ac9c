package sitemeta

import (
	"context"
	"time"
)

// SitemapRoute is the site-relative path the sitemap is served from.
const SitemapRoute = "/sitemap.xml"

// ChangeFreq is a sitemap change-frequency hint.
type ChangeFreq string

const (
	ChangeAlways  ChangeFreq = "always"
	ChangeHourly  ChangeFreq = "hourly"
	ChangeDaily   ChangeFreq = "daily"
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
	ChangeYearly  ChangeFreq = "yearly"
	ChangeNever   ChangeFreq = "never"
)

// Valid reports whether f is one of the sitemap protocol's change frequencies.
func (f ChangeFreq) Valid() bool {
	switch f {
	case ChangeAlways, ChangeHourly, ChangeDaily, ChangeWeekly, ChangeMonthly, ChangeYearly, ChangeNever:
		return true
	}
	return false
}

// Default sitemap priorities per page class. Values are clamped to [0,1] at
// encoding time regardless.
const (
	PriorityHome      = 1.0
	PriorityTool      = 0.9
	PriorityCategory  = 0.85
	PriorityBlogIndex = 0.8
	PriorityPost      = 0.8
	PriorityStatic    = 0.4
)

// SitemapEntry is one <url> element of the generated sitemap.
type SitemapEntry struct {
	// URL is the absolute canonical URL.
	URL string `json:"url"`

	// LastModified is emitted date-only (2006-01-02). A zero time means
	// the element is omitted.
	LastModified time.Time `json:"lastModified,omitzero"`

	ChangeFreq ChangeFreq `json:"changeFreq,omitempty"`
	Priority   float64    `json:"priority"`
}

// SitemapService builds the site's sitemap entry list.
type SitemapService interface {
	// BuildSitemap returns one entry per reachable canonical URL, in a
	// deterministic order that does not depend on catalog input order.
	// dropped lists the canonical URLs that were discarded because an
	// earlier entry already claimed the same URL.
	//
	// now supplies the last-modified date for pages without their own
	// timestamp.
	BuildSitemap(ctx context.Context, site *Site, catalog *Catalog, now time.Time) (entries []SitemapEntry, dropped []string, err error)
}
