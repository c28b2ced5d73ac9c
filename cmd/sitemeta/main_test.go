package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sitemeta/sitemeta"
	main "github.com/sitemeta/sitemeta/cmd/sitemeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteYAML = `baseUrl: https://site.example
name: Site Example
title: Free Browser Tools
description: Fast, private utilities that run entirely in your browser.
`

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
`

// writeFixtures lays out a site config and a content directory in a temp
// dir: two tools, one category, one post.
func writeFixtures(t *testing.T) (sitePath, contentDir string) {
	t.Helper()

	dir := t.TempDir()
	sitePath = filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(sitePath, []byte(siteYAML), 0644))

	contentDir = filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(filepath.Join(contentDir, "posts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "tools.yaml"), []byte(toolsYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "categories.yaml"), []byte(categoriesYAML), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(contentDir, "posts", "2024-03-01-formatting-json-at-scale.md"),
		[]byte(postMarkdown), 0644))

	return sitePath, contentDir
}

// fixtureSite mirrors siteYAML for command tests that bypass config loading.
func fixtureSite() *sitemeta.Site {
	return &sitemeta.Site{
		BaseURL:     "https://site.example",
		Name:        "Site Example",
		Title:       "Free Browser Tools",
		Description: "Fast, private utilities that run entirely in your browser.",
	}
}

// fixtureCatalog mirrors the content fixture as an in-memory catalog.
func fixtureCatalog(t testing.TB) *sitemeta.Catalog {
	t.Helper()

	catalog, err := sitemeta.NewCatalog(
		[]*sitemeta.Tool{
			{
				Title:       "JSON Formatter",
				Href:        "/json-formatter",
				Description: "Format and validate JSON in the browser.",
				Category:    "dev-tools",
				Featured:    true,
				Steps: []sitemeta.ToolStep{
					{Name: "Paste your JSON", Text: "Drop raw JSON into the input panel."},
					{Name: "Format", Text: "Press Format to pretty-print and validate."},
				},
			},
			{
				Title:       "Base64 Decoder",
				Href:        "/base64-decoder",
				Description: "Decode Base64 to plain text.",
				Category:    "dev-tools",
			},
		},
		[]*sitemeta.ToolCategory{
			{
				ID:          "dev-tools",
				Name:        "Developer Tools",
				Description: "Utilities for day-to-day development work.",
				Keywords:    []string{"json", "base64"},
				Tools:       []string{"/json-formatter", "/base64-decoder"},
				FAQs: []sitemeta.FAQ{
					{Question: "Is my data uploaded anywhere?", Answer: "Nothing leaves your browser."},
				},
			},
		},
		[]*sitemeta.BlogPost{
			{
				Title:    "Formatting JSON at Scale",
				Slug:     "formatting-json-at-scale",
				Excerpt:  "Lessons from formatting very large JSON documents.",
				Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Author:   "Ada Lovelace",
				Category: "dev-tools",
				Content:  "Large documents stress every formatter.",
			},
		},
	)
	require.NoError(t, err)
	return catalog
}

func TestMain_Run_Generate(t *testing.T) {
	t.Parallel()

	sitePath, contentDir := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "public")

	m := main.NewMain()
	defer m.Close()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{
		"generate", "--site", sitePath, "--content", contentDir, "--out", outDir,
	}, stdout, stderr)
	require.NoError(t, err, "stderr: %s", stderr.String())

	// Home, category, two tools, blog index, one post.
	assert.Contains(t, stdout.String(), "Generated 6 pages")
	assert.Contains(t, stdout.String(), "Wrote")

	for _, rel := range []string{
		"sitemap.xml",
		"robots.txt",
		"report.json",
		filepath.Join("pages", "index.json"),
		filepath.Join("pages", "json-formatter.json"),
		filepath.Join("pages", "base64-decoder.json"),
		filepath.Join("pages", "category", "dev-tools.json"),
		filepath.Join("pages", "blog.json"),
		filepath.Join("pages", "blog", "formatting-json-at-scale.json"),
	} {
		_, statErr := os.Stat(filepath.Join(outDir, rel))
		assert.NoError(t, statErr, "expected %s to be written", rel)
	}
}

func TestMain_Run_GenerateUnchangedSecondPass(t *testing.T) {
	t.Parallel()

	sitePath, contentDir := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "public")
	args := []string{"generate", "--site", sitePath, "--content", contentDir, "--out", outDir}

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	require.NoError(t, main.NewMain().Run(context.Background(), args, stdout, stderr),
		"stderr: %s", stderr.String())

	stdout.Reset()
	stderr.Reset()
	require.NoError(t, main.NewMain().Run(context.Background(), args, stdout, stderr),
		"stderr: %s", stderr.String())

	// Second pass over an unmodified catalog rewrites nothing.
	assert.Contains(t, stdout.String(), "Wrote 0 files")
}

func TestMain_Run_ImportThenGenerate(t *testing.T) {
	t.Parallel()

	sitePath, contentDir := writeFixtures(t)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	outDir := filepath.Join(t.TempDir(), "public")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{
		"import", "--content", contentDir, dbPath,
	}, stdout, stderr)
	require.NoError(t, err, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Imported 2 tools, 1 categories, 1 posts")

	stdout.Reset()
	stderr.Reset()

	err = main.NewMain().Run(context.Background(), []string{
		"generate", "--site", sitePath, "--db", dbPath, "--out", outDir,
	}, stdout, stderr)
	require.NoError(t, err, "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Generated 6 pages")
}

func TestMain_Run_Check(t *testing.T) {
	t.Parallel()

	sitePath, contentDir := writeFixtures(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{
		"check", "--site", sitePath, "--content", contentDir,
	}, stdout, stderr)
	require.NoError(t, err, "stderr: %s", stderr.String())

	assert.Contains(t, stdout.String(), "OK: 2 tools, 1 categories, 1 posts, 6 sitemap entries")
}

func TestMain_Run_MissingSiteConfig(t *testing.T) {
	t.Parallel()

	_, contentDir := writeFixtures(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{
		"check", "--site", filepath.Join(t.TempDir(), "absent.yaml"), "--content", contentDir,
	}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load site config")
	assert.Contains(t, stderr.String(), "Hint:")
}
