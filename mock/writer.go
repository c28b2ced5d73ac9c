package mock

import (
	"context"

	"github.com/sitemeta/sitemeta"
)

var _ sitemeta.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of sitemeta.ArtifactWriter.
type ArtifactWriter struct {
	WritePageFn    func(ctx context.Context, artifact *sitemeta.PageArtifact) (bool, error)
	WriteSitemapFn func(ctx context.Context, entries []sitemeta.SitemapEntry) (bool, error)
	WriteRobotsFn  func(ctx context.Context, policy *sitemeta.RobotsPolicy) (bool, error)
	WriteReportFn  func(ctx context.Context, report *sitemeta.Report) error
}

func (w *ArtifactWriter) WritePage(ctx context.Context, artifact *sitemeta.PageArtifact) (bool, error) {
	return w.WritePageFn(ctx, artifact)
}

func (w *ArtifactWriter) WriteSitemap(ctx context.Context, entries []sitemeta.SitemapEntry) (bool, error) {
	return w.WriteSitemapFn(ctx, entries)
}

func (w *ArtifactWriter) WriteRobots(ctx context.Context, policy *sitemeta.RobotsPolicy) (bool, error) {
	return w.WriteRobotsFn(ctx, policy)
}

func (w *ArtifactWriter) WriteReport(ctx context.Context, report *sitemeta.Report) error {
	return w.WriteReportFn(ctx, report)
}
