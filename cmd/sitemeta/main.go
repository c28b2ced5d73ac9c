package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sitemeta/sitemeta/fs"
	"github.com/sitemeta/sitemeta/gen"
	"github.com/sitemeta/sitemeta/goldmark"
	siteslog "github.com/sitemeta/sitemeta/slog"
	"github.com/sitemeta/sitemeta/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite catalog database, opened only when a command selects one.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitemeta"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitemeta --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Commands that run the engine share the same site config and catalog
	// source wiring.
	var src *SourceFlags
	switch cmd {
	case "generate":
		src = &cli.Generate.SourceFlags
	case "check":
		src = &cli.Check.SourceFlags
	case "routes":
		src = &cli.Routes.SourceFlags
	case "show":
		src = &cli.Show.SourceFlags
	}

	if src != nil {
		site, err := fs.LoadSite(src.Site)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Pass --site or set SITEMETA_SITE to point at your site config\n")
			return fmt.Errorf("failed to load site config %q: %w", src.Site, err)
		}
		deps.Site = site

		if src.DB != "" {
			m.DB = sqlite.NewDB(src.DB)
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open database at %q: %w", src.DB, err)
			}
			defer m.Close()
			deps.Catalog = sqlite.NewCatalogService(m.DB)
		} else {
			deps.Catalog = fs.NewCatalogService(src.Content)
		}

		level := slog.LevelWarn
		if cmd == "generate" && cli.Generate.Verbose {
			level = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

		deps.Schema = siteslog.NewLoggingSchemaService(gen.NewSchemaGenerator(), logger)
		deps.Metadata = siteslog.NewLoggingMetadataService(gen.NewMetadataComposer(goldmark.NewSummarizer()), logger)
		deps.Sitemaps = siteslog.NewLoggingSitemapService(gen.NewSitemapBuilder(), logger)
		deps.Robots = gen.NewRobotsBuilder()
	}

	if cmd == "generate" {
		deps.Pipeline = &gen.Pipeline{
			Schema:      deps.Schema,
			Metadata:    deps.Metadata,
			Sitemap:     deps.Sitemaps,
			Robots:      deps.Robots,
			Writer:      fs.NewWriter(cli.Generate.Out),
			Concurrency: cli.Generate.Concurrency,
		}
	}

	if cmd == "import" {
		m.DB = sqlite.NewDB(cli.Import.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.Import.DB, err)
		}
		defer m.Close()
		deps.Catalog = fs.NewCatalogService(cli.Import.Content)
		deps.Importer = sqlite.NewImporter(m.DB)
	}

	return kongCtx.Run(deps)
}
