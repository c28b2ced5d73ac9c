package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitemeta/sitemeta"
	"github.com/sitemeta/sitemeta/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const toolsYAML = `- title: JSON Formatter
  href: /json-formatter
  description: Format and validate JSON in the browser.
  category: dev-tools
  featured: true
  steps:
    - name: Paste your JSON
      text: Drop raw JSON into the input panel.
    - name: Format
      text: Press Format to pretty-print and validate.
- title: Base64 Decoder
  href: /base64-decoder
  description: Decode Base64 to plain text.
  category: dev-tools
`

const categoriesYAML = `- id: dev-tools
  name: Developer Tools
  description: Utilities for day-to-day development work.
  keywords:
    - json
    - base64
  tools:
    - /json-formatter
    - /base64-decoder
  faqs:
    - question: Is my data uploaded anywhere?
      answer: Nothing leaves your browser.
`

const postMarkdown = `---
title: Formatting JSON at Scale
slug: formatting-json-at-scale
excerpt: Lessons from formatting very large JSON documents.
date: 2024-03-01
author: Ada Lovelace
category: dev-tools
---

Large documents stress every formatter.

More below the fold.
`

// writeCatalogDir lays out a complete catalog fixture in a temp directory.
func writeCatalogDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tools.yaml"), []byte(toolsYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.yaml"), []byte(categoriesYAML), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "posts", "2024-03-01-formatting-json-at-scale.md"),
		[]byte(postMarkdown), 0644))
	return dir
}

func TestCatalogService_LoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("loads tools, categories, and posts", func(t *testing.T) {
		t.Parallel()

		svc := fs.NewCatalogService(writeCatalogDir(t))

		catalog, err := svc.LoadCatalog(context.Background())
		require.NoError(t, err)

		tools := catalog.Tools()
		require.Len(t, tools, 2)
		assert.Equal(t, "JSON Formatter", tools[0].Title)
		assert.Equal(t, "/json-formatter", tools[0].Href)
		assert.True(t, tools[0].Featured)
		require.Len(t, tools[0].Steps, 2)
		assert.Equal(t, "Paste your JSON", tools[0].Steps[0].Name)
		assert.Equal(t, "Base64 Decoder", tools[1].Title)

		category, ok := catalog.CategoryByID("dev-tools")
		require.True(t, ok)
		assert.Equal(t, "Developer Tools", category.Name)
		assert.Equal(t, []string{"json", "base64"}, category.Keywords)
		assert.Equal(t, []string{"/json-formatter", "/base64-decoder"}, category.Tools)
		require.Len(t, category.FAQs, 1)
		assert.Equal(t, "Is my data uploaded anywhere?", category.FAQs[0].Question)

		post, ok := catalog.PostBySlug("formatting-json-at-scale")
		require.True(t, ok)
		assert.Equal(t, "Formatting JSON at Scale", post.Title)
		assert.Equal(t, "Lessons from formatting very large JSON documents.", post.Excerpt)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), post.Date)
		assert.Equal(t, "Ada Lovelace", post.Author)
		assert.Equal(t, "dev-tools", post.Category)
		assert.True(t, len(post.Content) > 0)
		assert.Contains(t, post.Content, "Large documents stress every formatter.")
		assert.NotContains(t, post.Content, "slug:")
	})

	t.Run("derives slug from filename when front matter omits it", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		post := `---
title: Why We Built It
date: 2024-04-15
---

Origins.
`
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "posts", "2024-04-15-why-we-built-it.md"),
			[]byte(post), 0644))

		catalog, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())
		require.NoError(t, err)

		got, ok := catalog.PostBySlug("2024-04-15-why-we-built-it")
		require.True(t, ok)
		assert.Equal(t, "Why We Built It", got.Title)
	})

	t.Run("reads posts in lexical filename order", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		post := `---
title: A Later Post
slug: a-later-post
date: 2024-05-20
---

Body.
`
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "posts", "2024-05-20-a-later-post.md"),
			[]byte(post), 0644))

		catalog, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())
		require.NoError(t, err)

		posts := catalog.Posts()
		require.Len(t, posts, 2)
		assert.Equal(t, "formatting-json-at-scale", posts[0].Slug)
		assert.Equal(t, "a-later-post", posts[1].Slug)
	})

	t.Run("missing posts directory means no blog", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		require.NoError(t, os.RemoveAll(filepath.Join(dir, "posts")))

		catalog, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())
		require.NoError(t, err)
		assert.Empty(t, catalog.Posts())
	})

	t.Run("missing tools file", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "tools.yaml")))

		_, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, sitemeta.ENOTFOUND, sitemeta.ErrorCode(err))
	})

	t.Run("missing categories file", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "categories.yaml")))

		_, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, sitemeta.ENOTFOUND, sitemeta.ErrorCode(err))
	})

	t.Run("rejects post without front matter", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "posts", "bare.md"),
			[]byte("Just a body, no front matter.\n"), 0644))

		_, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, sitemeta.EINVALID, sitemeta.ErrorCode(err))
		assert.Contains(t, sitemeta.ErrorMessage(err), "front matter")
	})

	t.Run("rejects unrecognized post date", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		post := `---
title: Bad Date
slug: bad-date
date: March 1st
---

Body.
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "bad-date.md"), []byte(post), 0644))

		_, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, sitemeta.EINVALID, sitemeta.ErrorCode(err))
		assert.Contains(t, sitemeta.ErrorMessage(err), "unrecognized date")
	})

	t.Run("rejects tool referencing unknown category", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		tools := `- title: Orphan Tool
  href: /orphan
  description: A tool without a home.
  category: missing
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "tools.yaml"), []byte(tools), 0644))

		_, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, sitemeta.EINVALID, sitemeta.ErrorCode(err))
	})

	t.Run("rejects cross kind path conflict", func(t *testing.T) {
		t.Parallel()

		dir := writeCatalogDir(t)
		post := `---
title: Shadowing Post
slug: shadow
date: 2024-06-01
---

Body.
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "shadow.md"), []byte(post), 0644))
		tools := `- title: Blog Squatter
  href: /blog/shadow
  description: Publishes at a blog path.
  category: dev-tools
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "tools.yaml"), []byte(tools), 0644))

		_, err := fs.NewCatalogService(dir).LoadCatalog(context.Background())

		require.Error(t, err)
		assert.Equal(t, sitemeta.ECONFLICT, sitemeta.ErrorCode(err))
	})
}
