// Package slog provides logging decorators for sitemeta services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/sitemeta/sitemeta"
)

// Ensure LoggingSitemapService implements sitemeta.SitemapService.
var _ sitemeta.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with build logging.
type LoggingSitemapService struct {
	next   sitemeta.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next sitemeta.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// BuildSitemap delegates to the wrapped service and logs the outcome.
func (s *LoggingSitemapService) BuildSitemap(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog, now time.Time) (entries []sitemeta.SitemapEntry, dropped []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap build",
			"entries", len(entries),
			"dropped", len(dropped),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.BuildSitemap(ctx, site, catalog, now)
}
