package sitemeta

import (
	"context"
	"time"
)

// PageArtifact bundles everything generated for one page: the composed head
// metadata and the page's JSON-LD graph.
type PageArtifact struct {
	// Route is the site-relative canonical path, e.g. "/tools/json-formatter".
	Route string `json:"route"`

	Metadata *Metadata     `json:"metadata"`
	Graph    []*SchemaNode `json:"graph,omitempty"`
}

// PageFailure records a page the generation pass could not produce.
type PageFailure struct {
	Route   string `json:"route"`
	Message string `json:"message"`
}

// Report summarizes one generation pass.
type Report struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	DurationMS  int64     `json:"durationMs"`

	// Pages is the number of page artifacts produced; FailedPages lists
	// the routes that could not be generated.
	Pages       int           `json:"pages"`
	FailedPages []PageFailure `json:"failedPages,omitempty"`

	// Nodes counts the JSON-LD nodes emitted across all pages;
	// SkippedNodes counts the ones omitted for lack of source data.
	Nodes        int `json:"nodes"`
	SkippedNodes int `json:"skippedNodes"`

	Advisories []Advisory `json:"advisories,omitempty"`

	SitemapEntries    int      `json:"sitemapEntries"`
	DroppedDuplicates []string `json:"droppedDuplicates,omitempty"`

	// Written and Unchanged count artifact files by whether their content
	// actually changed on disk.
	Written   int `json:"written"`
	Unchanged int `json:"unchanged"`
}

// ArtifactWriter persists generation outputs. Write methods report whether
// the target actually changed, so unchanged artifacts keep their mtimes and
// a pass over an unmodified catalog is a no-op on disk.
type ArtifactWriter interface {
	WritePage(ctx context.Context, artifact *PageArtifact) (written bool, err error)
	WriteSitemap(ctx context.Context, entries []SitemapEntry) (written bool, err error)
	WriteRobots(ctx context.Context, policy *RobotsPolicy) (written bool, err error)
	WriteReport(ctx context.Context, report *Report) error
}
