package main

import (
	"fmt"
	"time"

	"github.com/sitemeta/sitemeta"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	// Robots first: a route shadowed by a disallow rule is a config
	// conflict, not a warning.
	if _, err := deps.Robots.BuildRobots(deps.Ctx, deps.Site, catalog); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	entries, dropped, err := deps.Sitemaps.BuildSitemap(deps.Ctx, deps.Site, catalog, time.Now())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	for _, url := range dropped {
		fmt.Fprintf(deps.Stderr, "warning: duplicate canonical URL %s dropped from sitemap\n", url)
	}

	fmt.Fprintf(deps.Stdout, "OK: %d tools, %d categories, %d posts, %d sitemap entries\n",
		len(catalog.Tools()), len(catalog.Categories()), len(catalog.Posts()), len(entries))

	return nil
}
