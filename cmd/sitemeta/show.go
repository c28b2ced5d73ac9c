package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sitemeta/sitemeta"
	"github.com/sitemeta/sitemeta/gen"
)

// Ensure type implements interface.
var _ sitemeta.ArtifactWriter = (*captureWriter)(nil)

// captureWriter collects page artifacts in memory and discards everything
// else, so show can run a full generation pass without touching disk. The
// map is keyed by normalized route; artifacts keep their authored spelling.
type captureWriter struct {
	pages map[string]*sitemeta.PageArtifact
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{pages: make(map[string]*sitemeta.PageArtifact)}
}

func (w *captureWriter) WritePage(_ context.Context, artifact *sitemeta.PageArtifact) (bool, error) {
	w.pages[sitemeta.NormalizeRoute(artifact.Route)] = artifact
	return false, nil
}

func (w *captureWriter) WriteSitemap(context.Context, []sitemeta.SitemapEntry) (bool, error) {
	return false, nil
}

func (w *captureWriter) WriteRobots(context.Context, *sitemeta.RobotsPolicy) (bool, error) {
	return false, nil
}

func (w *captureWriter) WriteReport(context.Context, *sitemeta.Report) error {
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	capture := newCaptureWriter()
	pipeline := &gen.Pipeline{
		Schema:   deps.Schema,
		Metadata: deps.Metadata,
		Sitemap:  deps.Sitemaps,
		Robots:   deps.Robots,
		Writer:   capture,
	}

	report, err := pipeline.Run(deps.Ctx, deps.Site, catalog, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	// Both sides of the lookup normalize, so any spelling of a route finds
	// the page regardless of how the catalog authors its href.
	route := sitemeta.NormalizeRoute(c.Route)

	for _, failure := range report.FailedPages {
		if sitemeta.NormalizeRoute(failure.Route) != route {
			continue
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", failure.Message)
		return sitemeta.Errorf(sitemeta.EINTERNAL, "page %s failed: %s", route, failure.Message)
	}

	artifact, ok := capture.pages[route]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: no page at %q. Use 'sitemeta routes' to see available routes.\n", route)
		return sitemeta.Errorf(sitemeta.ENOTFOUND, "no page at %q", route)
	}

	out, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
