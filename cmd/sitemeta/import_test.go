package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sitemeta/sitemeta"
	main "github.com/sitemeta/sitemeta/cmd/sitemeta"
	"github.com/sitemeta/sitemeta/mock"
	"github.com/sitemeta/sitemeta/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("mirrors the catalog into the database", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		require.NoError(t, db.Open())
		t.Cleanup(func() { db.Close() })

		catalog := fixtureCatalog(t)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Catalog: &mock.CatalogService{
				LoadCatalogFn: func(_ context.Context) (*sitemeta.Catalog, error) {
					return catalog, nil
				},
			},
			Importer: sqlite.NewImporter(db),
		}

		cmd := &main.ImportCmd{DB: "catalog.db"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Imported 2 tools, 1 categories, 1 posts into catalog.db")

		loaded, err := sqlite.NewCatalogService(db).LoadCatalog(context.Background())
		require.NoError(t, err)
		assert.Len(t, loaded.Tools(), 2)
		assert.Len(t, loaded.Posts(), 1)
	})

	t.Run("returns catalog load errors", func(t *testing.T) {
		t.Parallel()

		loadErr := sitemeta.Errorf(sitemeta.EINVALID, "post %s has no front matter", "posts/broken.md")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Catalog: &mock.CatalogService{
				LoadCatalogFn: func(_ context.Context) (*sitemeta.Catalog, error) {
					return nil, loadErr
				},
			},
		}

		cmd := &main.ImportCmd{DB: "catalog.db"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, loadErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
