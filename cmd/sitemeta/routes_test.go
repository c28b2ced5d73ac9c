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

func TestRoutesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints one line per sitemap entry", func(t *testing.T) {
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
			Sitemaps: &mock.SitemapService{
				BuildSitemapFn: func(_ context.Context, _ *sitemeta.Site, _ *sitemeta.Catalog, _ time.Time) ([]sitemeta.SitemapEntry, []string, error) {
					return []sitemeta.SitemapEntry{
						{
							URL:          "https://site.example",
							LastModified: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
							ChangeFreq:   sitemeta.ChangeWeekly,
							Priority:     1.0,
						},
						{
							URL:        "https://site.example/about",
							ChangeFreq: sitemeta.ChangeYearly,
							Priority:   0.4,
						},
					}, nil, nil
				},
			},
		}

		cmd := &main.RoutesCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "1.00  weekly   2024-03-01  https://site.example\n")
		// Entries without their own timestamp print a dash.
		assert.Contains(t, output, "0.40  yearly   -  https://site.example/about\n")
	})

	t.Run("returns sitemap build errors", func(t *testing.T) {
		t.Parallel()

		catalog := fixtureCatalog(t)
		buildErr := sitemeta.Errorf(sitemeta.EINTERNAL, "sitemap build failed")

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
			Sitemaps: &mock.SitemapService{
				BuildSitemapFn: func(_ context.Context, _ *sitemeta.Site, _ *sitemeta.Catalog, _ time.Time) ([]sitemeta.SitemapEntry, []string, error) {
					return nil, nil, buildErr
				},
			},
		}

		cmd := &main.RoutesCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, buildErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
