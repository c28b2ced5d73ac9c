package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sitemeta/sitemeta"
	main "github.com/sitemeta/sitemeta/cmd/sitemeta"
	"github.com/sitemeta/sitemeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints catalog and sitemap counts", func(t *testing.T) {
		t.Parallel()

		catalog := fixtureCatalog(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Site:   fixtureSite(),
			Catalog: &mock.CatalogService{
				LoadCatalogFn: func(_ context.Context) (*sitemeta.Catalog, error) {
					return catalog, nil
				},
			},
			Robots: &mock.RobotsService{
				BuildRobotsFn: func(_ context.Context, site *sitemeta.Site, _ *sitemeta.Catalog) (*sitemeta.RobotsPolicy, error) {
					return &sitemeta.RobotsPolicy{SitemapURL: site.BaseURL + sitemeta.SitemapRoute}, nil
				},
			},
			Sitemaps: &mock.SitemapService{
				BuildSitemapFn: func(_ context.Context, _ *sitemeta.Site, _ *sitemeta.Catalog, _ time.Time) ([]sitemeta.SitemapEntry, []string, error) {
					return []sitemeta.SitemapEntry{
						{URL: "https://site.example", Priority: 1.0},
						{URL: "https://site.example/json-formatter", Priority: 0.9},
					}, nil, nil
				},
			},
		}

		cmd := &main.CheckCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "OK: 2 tools, 1 categories, 1 posts, 2 sitemap entries")
		assert.Empty(t, stderr.String())
	})

	t.Run("warns about dropped duplicate URLs", func(t *testing.T) {
		t.Parallel()

		catalog := fixtureCatalog(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Site:   fixtureSite(),
			Catalog: &mock.CatalogService{
				LoadCatalogFn: func(_ context.Context) (*sitemeta.Catalog, error) {
					return catalog, nil
				},
			},
			Robots: &mock.RobotsService{
				BuildRobotsFn: func(_ context.Context, _ *sitemeta.Site, _ *sitemeta.Catalog) (*sitemeta.RobotsPolicy, error) {
					return &sitemeta.RobotsPolicy{}, nil
				},
			},
			Sitemaps: &mock.SitemapService{
				BuildSitemapFn: func(_ context.Context, _ *sitemeta.Site, _ *sitemeta.Catalog, _ time.Time) ([]sitemeta.SitemapEntry, []string, error) {
					entries := []sitemeta.SitemapEntry{{URL: "https://site.example", Priority: 1.0}}
					return entries, []string{"https://site.example/blog/shadow"}, nil
				},
			},
		}

		cmd := &main.CheckCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(),
			"warning: duplicate canonical URL https://site.example/blog/shadow dropped from sitemap")
		assert.Contains(t, stdout.String(), "OK:")
	})

	t.Run("fails when the robots policy conflicts", func(t *testing.T) {
		t.Parallel()

		catalog := fixtureCatalog(t)
		conflictErr := sitemeta.Errorf(sitemeta.ECONFLICT,
			"route %q is shadowed by disallow prefix %q", "/json-formatter", "/json-")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Site:   fixtureSite(),
			Catalog: &mock.CatalogService{
				LoadCatalogFn: func(_ context.Context) (*sitemeta.Catalog, error) {
					return catalog, nil
				},
			},
			Robots: &mock.RobotsService{
				BuildRobotsFn: func(_ context.Context, _ *sitemeta.Site, _ *sitemeta.Catalog) (*sitemeta.RobotsPolicy, error) {
					return nil, conflictErr
				},
			},
		}

		cmd := &main.CheckCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, sitemeta.ECONFLICT, sitemeta.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
		assert.Contains(t, stderr.String(), "shadowed by disallow prefix")
	})

	t.Run("returns catalog load errors", func(t *testing.T) {
		t.Parallel()

		loadErr := sitemeta.Errorf(sitemeta.EINVALID, "tool %q references unknown category %q", "JSON Formatter", "missing")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Site:   fixtureSite(),
			Catalog: &mock.CatalogService{
				LoadCatalogFn: func(_ context.Context) (*sitemeta.Catalog, error) {
					return nil, loadErr
				},
			},
		}

		cmd := &main.CheckCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, loadErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
