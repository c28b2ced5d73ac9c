package main

import (
	"fmt"

	"github.com/sitemeta/sitemeta"
	"github.com/sitemeta/sitemeta/gen"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	progress := func(event gen.ProgressEvent) {
		switch event.Type {
		case gen.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Generating %d pages\n", event.Total)
		case gen.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Route, event.Error)
		case gen.ProgressFinished:
			// Summary printed from the report below
		}
	}

	report, err := deps.Pipeline.Run(deps.Ctx, deps.Site, catalog, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	for _, url := range report.DroppedDuplicates {
		fmt.Fprintf(deps.Stderr, "  warning: dropped duplicate sitemap URL %s\n", url)
	}

	fmt.Fprintf(deps.Stdout, "Generated %d pages, %d nodes (%d skipped), %d sitemap entries in %dms\n",
		report.Pages, report.Nodes, report.SkippedNodes, report.SitemapEntries, report.DurationMS)
	fmt.Fprintf(deps.Stdout, "Wrote %d files, %d unchanged\n", report.Written, report.Unchanged)

	if len(report.Advisories) > 0 {
		fmt.Fprintf(deps.Stdout, "%d advisories (see report.json)\n", len(report.Advisories))
	}

	if len(report.FailedPages) > 0 {
		fmt.Fprintf(deps.Stderr, "error: %d pages failed\n", len(report.FailedPages))
		return sitemeta.Errorf(sitemeta.EINTERNAL, "%d pages failed", len(report.FailedPages))
	}

	return nil
}
