package mock

import (
	"context"
	"time"

	"github.com/sitemeta/sitemeta"
)

var _ sitemeta.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of sitemeta.SitemapService.
type SitemapService struct {
	BuildSitemapFn func(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog, now time.Time) ([]sitemeta.SitemapEntry, []string, error)
}

func (s *SitemapService) BuildSitemap(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog, now time.Time) ([]sitemeta.SitemapEntry, []string, error) {
	return s.BuildSitemapFn(ctx, site, catalog, now)
}
