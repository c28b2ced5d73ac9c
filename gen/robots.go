package gen

import (
	"context"
	"strings"

	"github.com/sitemeta/sitemeta"
)

// RobotsBuilder derives the crawl policy from the site configuration and
// cross-checks it against the published route set.
type RobotsBuilder struct{}

var _ sitemeta.RobotsService = (*RobotsBuilder)(nil)

// NewRobotsBuilder returns a RobotsBuilder.
func NewRobotsBuilder() *RobotsBuilder {
	return &RobotsBuilder{}
}

// BuildRobots implements sitemeta.RobotsService. A disallow prefix that
// matches any published route fails the build with ECONFLICT; robots prefix
// matching has no segment boundary, so "/json" shadows "/json-formatter".
func (b *RobotsBuilder) BuildRobots(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog) (*sitemeta.RobotsPolicy, error) {
	if site == nil || catalog == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site and catalog required")
	}

	disallow := site.RobotsDisallow
	if disallow == nil {
		disallow = sitemeta.DefaultDisallow
	}
	disallow = append([]string(nil), disallow...)

	// NormalizeRoute keeps the home route as "/", so a disallow of "/"
	// registers as shadowing the home page instead of matching nothing.
	routes := publishedRoutes(site, catalog)
	normalized := make([]string, len(routes))
	for i, route := range routes {
		normalized[i] = sitemeta.NormalizeRoute(route)
	}
	for _, prefix := range disallow {
		for i, route := range normalized {
			if strings.HasPrefix(route, prefix) {
				return nil, sitemeta.Errorf(sitemeta.ECONFLICT, "robots disallow prefix %q shadows published route %q", prefix, routes[i])
			}
		}
	}

	return &sitemeta.RobotsPolicy{
		Rules: []sitemeta.RobotsRule{{
			UserAgent: "*",
			Allow:     []string{"/"},
			Disallow:  disallow,
		}},
		SitemapURL: sitemeta.AbsoluteURL(site.BaseURL, sitemeta.SitemapRoute),
	}, nil
}

func publishedRoutes(site *sitemeta.Site, catalog *sitemeta.Catalog) []string {
	routes := []string{sitemeta.RouteHome}
	for _, r := range site.StaticRoutes {
		routes = append(routes, r.Path)
	}
	if len(catalog.Posts()) > 0 {
		routes = append(routes, sitemeta.RouteBlogIndex)
	}
	return append(routes, catalog.Routes()...)
}
