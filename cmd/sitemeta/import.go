package main

import (
	"fmt"

	"github.com/sitemeta/sitemeta"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalog.LoadCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	if err := deps.Importer.Import(deps.Ctx, catalog); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitemeta.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d tools, %d categories, %d posts into %s\n",
		len(catalog.Tools()), len(catalog.Categories()), len(catalog.Posts()), c.DB)

	return nil
}
