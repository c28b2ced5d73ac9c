package main

import (
	"context"
	"io"

	"github.com/sitemeta/sitemeta"
	"github.com/sitemeta/sitemeta/gen"
	"github.com/sitemeta/sitemeta/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Site     *sitemeta.Site
	Catalog  sitemeta.CatalogService
	Schema   sitemeta.SchemaService
	Metadata sitemeta.MetadataService
	Sitemaps sitemeta.SitemapService
	Robots   sitemeta.RobotsService
	Pipeline *gen.Pipeline
	Importer *sqlite.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate page metadata, JSON-LD, sitemap, and robots.txt"`
	Check    CheckCmd    `cmd:"" help:"Validate the site config and catalog without writing anything"`
	Routes   RoutesCmd   `cmd:"" help:"List every URL the sitemap will contain"`
	Show     ShowCmd     `cmd:"" help:"Print the generated artifact for one route"`
	Import   ImportCmd   `cmd:"" help:"Import a content directory into a catalog database"`
}

// SourceFlags selects where the site config and the catalog come from.
// Setting --db switches the catalog source from the content directory to a
// SQLite database.
type SourceFlags struct {
	Site    string `short:"s" default:"site.yaml" env:"SITEMETA_SITE" help:"Site config file"`
	Content string `default:"content" env:"SITEMETA_CONTENT" help:"Content directory with tools.yaml, categories.yaml, and posts/"`
	DB      string `env:"SITEMETA_DB" help:"Load the catalog from a SQLite database instead of the content directory"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	SourceFlags `embed:""`
	Out         string `short:"o" default:"public" env:"SITEMETA_OUT" help:"Output directory"`
	Concurrency int    `short:"c" default:"0" help:"Parallel page workers (0 means GOMAXPROCS)"`
	Verbose     bool   `short:"v" help:"Log sitemap builds and schema node skips"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	SourceFlags `embed:""`
}

// RoutesCmd is the "routes" subcommand.
type RoutesCmd struct {
	SourceFlags `embed:""`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	SourceFlags `embed:""`
	Route       string `arg:"" help:"Site-relative route, e.g. /json-formatter"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Content string `default:"content" env:"SITEMETA_CONTENT" help:"Content directory to import"`
	DB      string `arg:"" help:"Target SQLite database path"`
}
