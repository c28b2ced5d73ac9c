// Package fs provides file-based catalog loading and artifact storage.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sitemeta/sitemeta"
	"github.com/sitemeta/sitemeta/etree"
)

// Artifact layout below the writer's base directory.
const (
	SitemapFile = "sitemap.xml"
	RobotsFile  = "robots.txt"
	ReportFile  = "report.json"
	PagesDir    = "pages"
)

// PagePath converts a site-relative route to the page artifact path below
// the base directory.
// Example: /blog/formatting-json → pages/blog/formatting-json.json; the
// home route maps to pages/index.json.
func PagePath(route string) string {
	path := strings.Trim(route, "/")
	if path == "" {
		return filepath.Join(PagesDir, "index.json")
	}
	return filepath.Join(PagesDir, path+".json")
}

// FormatRobots renders a robots policy in robots.txt syntax.
func FormatRobots(policy *sitemeta.RobotsPolicy) string {
	var b strings.Builder
	for i, rule := range policy.Rules {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("User-agent: ")
		b.WriteString(rule.UserAgent)
		b.WriteString("\n")
		for _, path := range rule.Allow {
			b.WriteString("Allow: ")
			b.WriteString(path)
			b.WriteString("\n")
		}
		for _, path := range rule.Disallow {
			b.WriteString("Disallow: ")
			b.WriteString(path)
			b.WriteString("\n")
		}
	}
	if policy.SitemapURL != "" {
		b.WriteString("\nSitemap: ")
		b.WriteString(policy.SitemapURL)
		b.WriteString("\n")
	}
	return b.String()
}

// Ensure Writer implements sitemeta.ArtifactWriter at compile time.
var _ sitemeta.ArtifactWriter = (*Writer)(nil)

// Writer persists generation artifacts below a base directory. A write is
// skipped when the target already holds identical content, so file mtimes
// only move when output actually changes.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes one page artifact as indented JSON.
func (w *Writer) WritePage(ctx context.Context, artifact *sitemeta.PageArtifact) (bool, error) {
	if artifact == nil || artifact.Route == "" {
		return false, sitemeta.Errorf(sitemeta.EINVALID, "page artifact with route required")
	}
	if strings.Contains(artifact.Route, "..") {
		return false, sitemeta.Errorf(sitemeta.EINVALID, "route %q must not contain path traversal", artifact.Route)
	}

	data, err := marshalJSON(artifact)
	if err != nil {
		return false, err
	}
	return w.writeIfChanged(PagePath(artifact.Route), data)
}

// WriteSitemap writes the sitemap XML.
func (w *Writer) WriteSitemap(ctx context.Context, entries []sitemeta.SitemapEntry) (bool, error) {
	data, err := etree.EncodeSitemap(entries)
	if err != nil {
		return false, err
	}
	return w.writeIfChanged(SitemapFile, data)
}

// WriteRobots writes robots.txt.
func (w *Writer) WriteRobots(ctx context.Context, policy *sitemeta.RobotsPolicy) (bool, error) {
	if policy == nil {
		return false, sitemeta.Errorf(sitemeta.EINVALID, "robots policy required")
	}
	return w.writeIfChanged(RobotsFile, []byte(FormatRobots(policy)))
}

// WriteReport writes the run report. Reports carry a fresh run ID, so they
// are written unconditionally.
func (w *Writer) WriteReport(ctx context.Context, report *sitemeta.Report) error {
	if report == nil {
		return sitemeta.Errorf(sitemeta.EINVALID, "report required")
	}
	data, err := marshalJSON(report)
	if err != nil {
		return err
	}

	path := filepath.Join(w.baseDir, ReportFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (w *Writer) writeIfChanged(relPath string, data []byte) (bool, error) {
	fullPath := filepath.Join(w.baseDir, relPath)

	if existing, err := os.ReadFile(fullPath); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal artifact: %w", err)
	}
	return append(data, '\n'), nil
}
