package gen

import (
	"context"
	"sort"
	"time"

	"github.com/sitemeta/sitemeta"
)

// SitemapBuilder enumerates every published route into a deduplicated
// sitemap with a deterministic order.
//
// Route classes are visited in fixed precedence order: home, static routes,
// categories, tools, blog index, posts. Within a class entries sort by
// canonical URL, so output does not depend on catalog input order. When two
// sources map to the same canonical URL the earlier class wins and the
// loser is reported in dropped.
type SitemapBuilder struct{}

var _ sitemeta.SitemapService = (*SitemapBuilder)(nil)

// NewSitemapBuilder returns a SitemapBuilder.
func NewSitemapBuilder() *SitemapBuilder {
	return &SitemapBuilder{}
}

// BuildSitemap implements sitemeta.SitemapService.
func (b *SitemapBuilder) BuildSitemap(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog, now time.Time) ([]sitemeta.SitemapEntry, []string, error) {
	if site == nil || catalog == nil {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "site and catalog required")
	}

	seen := make(map[string]bool)
	var entries []sitemeta.SitemapEntry
	var dropped []string

	add := func(class []sitemeta.SitemapEntry) {
		sort.Slice(class, func(i, j int) bool { return class[i].URL < class[j].URL })
		for _, e := range class {
			if seen[e.URL] {
				dropped = append(dropped, e.URL)
				continue
			}
			seen[e.URL] = true
			entries = append(entries, e)
		}
	}

	add([]sitemeta.SitemapEntry{{
		URL:          sitemeta.CanonicalURL(site.BaseURL, sitemeta.RouteHome),
		LastModified: now,
		ChangeFreq:   sitemeta.ChangeWeekly,
		Priority:     sitemeta.PriorityHome,
	}})

	statics := make([]sitemeta.SitemapEntry, 0, len(site.StaticRoutes))
	for _, route := range site.StaticRoutes {
		priority := route.Priority
		if priority == 0 {
			priority = sitemeta.PriorityStatic
		}
		freq := route.ChangeFreq
		if freq == "" {
			freq = sitemeta.ChangeYearly
		}
		statics = append(statics, sitemeta.SitemapEntry{
			URL:          sitemeta.CanonicalURL(site.BaseURL, route.Path),
			LastModified: now,
			ChangeFreq:   freq,
			Priority:     priority,
		})
	}
	add(statics)

	categories := catalog.Categories()
	class := make([]sitemeta.SitemapEntry, 0, len(categories))
	for _, category := range categories {
		class = append(class, sitemeta.SitemapEntry{
			URL:          sitemeta.CanonicalURL(site.BaseURL, category.Route()),
			LastModified: now,
			ChangeFreq:   sitemeta.ChangeMonthly,
			Priority:     sitemeta.PriorityCategory,
		})
	}
	add(class)

	tools := catalog.Tools()
	class = make([]sitemeta.SitemapEntry, 0, len(tools))
	for _, tool := range tools {
		class = append(class, sitemeta.SitemapEntry{
			URL:          sitemeta.CanonicalURL(site.BaseURL, tool.Route()),
			LastModified: now,
			ChangeFreq:   sitemeta.ChangeMonthly,
			Priority:     sitemeta.PriorityTool,
		})
	}
	add(class)

	posts := catalog.Posts()
	if len(posts) > 0 {
		add([]sitemeta.SitemapEntry{{
			URL:          sitemeta.CanonicalURL(site.BaseURL, sitemeta.RouteBlogIndex),
			LastModified: now,
			ChangeFreq:   sitemeta.ChangeWeekly,
			Priority:     sitemeta.PriorityBlogIndex,
		}})
	}
	class = make([]sitemeta.SitemapEntry, 0, len(posts))
	for _, post := range posts {
		class = append(class, sitemeta.SitemapEntry{
			URL:          sitemeta.CanonicalURL(site.BaseURL, post.Route()),
			LastModified: post.Date,
			ChangeFreq:   sitemeta.ChangeMonthly,
			Priority:     sitemeta.PriorityPost,
		})
	}
	add(class)

	return entries, dropped, nil
}
