package main

import (
	"fmt"
	"time"

	"github.com/sitemeta/sitemeta"
)

// Run executes the routes command.
func (c *RoutesCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	entries, _, err := deps.Sitemaps.BuildSitemap(deps.Ctx, deps.Site, catalog, time.Now())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	for _, entry := range entries {
		lastmod := "-"
		if !entry.LastModified.IsZero() {
			lastmod = entry.LastModified.Format("2006-01-02")
		}
		fmt.Fprintf(deps.Stdout, "%.2f  %-7s  %s  %s\n", entry.Priority, entry.ChangeFreq, lastmod, entry.URL)
	}

	return nil
}
