// Package gen implements the generation engine: the schema generators, the
// metadata composer, the sitemap and robots builders, and the pipeline that
// runs them across a frozen catalog.
package gen

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sitemeta/sitemeta"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs one full generation pass. Configuration conflicts (robots
// shadowing, invalid site) abort before any page is produced; individual
// page failures are collected in the report instead of stopping the pass.
type Pipeline struct {
	Schema   sitemeta.SchemaService
	Metadata sitemeta.MetadataService
	Sitemap  sitemeta.SitemapService
	Robots   sitemeta.RobotsService
	Writer   sitemeta.ArtifactWriter

	// Concurrency bounds the parallel page workers. Zero or negative
	// selects runtime.GOMAXPROCS(0).
	Concurrency int

	// Now supplies the generation timestamp. nil selects time.Now.
	Now func() time.Time
}

// ProgressEvent reports progress during a generation pass.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Route     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting generation progress.
type ProgressFunc func(event ProgressEvent)

// pageJob is one page to generate.
type pageJob struct {
	position int
	route    string
	build    func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error)
}

// pageResult holds the outcome of generating a single page.
type pageResult struct {
	position   int
	route      string
	artifact   *sitemeta.PageArtifact
	advisories []sitemeta.Advisory
	skipped    int
	err        error
}

// Run generates every page artifact plus the sitemap, robots policy, and
// run report, and persists them through the writer. The progress callback,
// if provided, receives events as pages complete.
func (p *Pipeline) Run(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog, progress ProgressFunc) (*sitemeta.Report, error) {
	if site == nil || catalog == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site and catalog required")
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	now := start
	if p.Now != nil {
		now = p.Now()
	}

	robots, err := p.Robots.BuildRobots(ctx, site, catalog)
	if err != nil {
		return nil, err
	}
	entries, droppedDup, err := p.Sitemap.BuildSitemap(ctx, site, catalog, now)
	if err != nil {
		return nil, err
	}

	jobs := p.pageJobs(site, catalog)
	total := len(jobs)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, job := range jobs {
			job := job
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					resultCh <- pageResult{position: job.position, route: job.route, err: err}
					return nil
				}
				artifact, advisories, skipped, err := job.build()
				resultCh <- pageResult{
					position:   job.position,
					route:      job.route,
					artifact:   artifact,
					advisories: advisories,
					skipped:    skipped,
					err:        err,
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order.
	results := make([]pageResult, total)
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		if result.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				Route:     result.route,
				Error:     result.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Route:     result.route,
			})
		}
	}

	report := &sitemeta.Report{
		RunID:             uuid.New().String(),
		GeneratedAt:       now,
		SitemapEntries:    len(entries),
		DroppedDuplicates: droppedDup,
	}

	countWrite := func(written bool) {
		if written {
			report.Written++
		} else {
			report.Unchanged++
		}
	}

	for _, result := range results {
		if result.err != nil {
			report.FailedPages = append(report.FailedPages, sitemeta.PageFailure{
				Route:   result.route,
				Message: result.err.Error(),
			})
			continue
		}

		report.Pages++
		report.Nodes += len(result.artifact.Graph)
		report.SkippedNodes += result.skipped
		report.Advisories = append(report.Advisories, result.advisories...)

		written, err := p.Writer.WritePage(ctx, result.artifact)
		if err != nil {
			return nil, fmt.Errorf("write page %s: %w", result.route, err)
		}
		countWrite(written)
	}

	written, err := p.Writer.WriteSitemap(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("write sitemap: %w", err)
	}
	countWrite(written)

	written, err = p.Writer.WriteRobots(ctx, robots)
	if err != nil {
		return nil, fmt.Errorf("write robots: %w", err)
	}
	countWrite(written)

	report.DurationMS = time.Since(start).Milliseconds()
	if err := p.Writer.WriteReport(ctx, report); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return report, nil
}

// pageJobs enumerates every page of the site in a stable order: home,
// static routes, categories, tools, blog index, posts.
func (p *Pipeline) pageJobs(site *sitemeta.Site, catalog *sitemeta.Catalog) []pageJob {
	var jobs []pageJob
	add := func(route string, build func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error)) {
		jobs = append(jobs, pageJob{position: len(jobs), route: route, build: build})
	}

	home := sitemeta.BreadcrumbItem{
		Name: site.Name,
		URL:  sitemeta.CanonicalURL(site.BaseURL, sitemeta.RouteHome),
	}

	add(sitemeta.RouteHome, func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error) {
		meta, advisories, err := p.Metadata.HomeMetadata(site)
		if err != nil {
			return nil, nil, 0, err
		}
		graph, skipped, err := p.graph(
			func() (*sitemeta.SchemaNode, error) { return p.Schema.WebSiteNode(site) },
			func() (*sitemeta.SchemaNode, error) { return p.Schema.OrganizationNode(site) },
		)
		if err != nil {
			return nil, nil, 0, err
		}
		return &sitemeta.PageArtifact{Route: sitemeta.RouteHome, Metadata: meta, Graph: graph}, advisories, skipped, nil
	})

	for _, route := range site.StaticRoutes {
		route := route
		add(route.Path, func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error) {
			meta, advisories, err := p.Metadata.StaticMetadata(site, route)
			if err != nil {
				return nil, nil, 0, err
			}
			trail := []sitemeta.BreadcrumbItem{home, {
				Name: route.Title,
				URL:  sitemeta.CanonicalURL(site.BaseURL, route.Path),
			}}
			graph, skipped, err := p.graph(
				func() (*sitemeta.SchemaNode, error) { return p.Schema.BreadcrumbNode(site, trail) },
			)
			if err != nil {
				return nil, nil, 0, err
			}
			return &sitemeta.PageArtifact{Route: route.Path, Metadata: meta, Graph: graph}, advisories, skipped, nil
		})
	}

	for _, category := range catalog.Categories() {
		category := category
		add(category.Route(), func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error) {
			meta, advisories, err := p.Metadata.CategoryMetadata(site, category)
			if err != nil {
				return nil, nil, 0, err
			}
			tools := catalog.ToolsInCategory(category.ID)
			trail := []sitemeta.BreadcrumbItem{home, {
				Name: category.Name,
				URL:  sitemeta.CanonicalURL(site.BaseURL, category.Route()),
			}}
			graph, skipped, err := p.graph(
				func() (*sitemeta.SchemaNode, error) { return p.Schema.CollectionNode(site, category, tools) },
				func() (*sitemeta.SchemaNode, error) { return p.Schema.FAQNode(category) },
				func() (*sitemeta.SchemaNode, error) { return p.Schema.BreadcrumbNode(site, trail) },
			)
			if err != nil {
				return nil, nil, 0, err
			}
			return &sitemeta.PageArtifact{Route: category.Route(), Metadata: meta, Graph: graph}, advisories, skipped, nil
		})
	}

	for _, tool := range catalog.Tools() {
		tool := tool
		add(tool.Route(), func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error) {
			meta, advisories, err := p.Metadata.ToolMetadata(site, tool)
			if err != nil {
				return nil, nil, 0, err
			}
			trail := []sitemeta.BreadcrumbItem{home}
			if category, ok := catalog.CategoryByID(tool.Category); ok {
				trail = append(trail, sitemeta.BreadcrumbItem{
					Name: category.Name,
					URL:  sitemeta.CanonicalURL(site.BaseURL, category.Route()),
				})
			}
			trail = append(trail, sitemeta.BreadcrumbItem{
				Name: tool.Title,
				URL:  sitemeta.CanonicalURL(site.BaseURL, tool.Route()),
			})
			graph, skipped, err := p.graph(
				func() (*sitemeta.SchemaNode, error) { return p.Schema.ToolNode(site, tool) },
				func() (*sitemeta.SchemaNode, error) { return p.Schema.HowToNode(site, tool) },
				func() (*sitemeta.SchemaNode, error) { return p.Schema.BreadcrumbNode(site, trail) },
			)
			if err != nil {
				return nil, nil, 0, err
			}
			return &sitemeta.PageArtifact{Route: tool.Route(), Metadata: meta, Graph: graph}, advisories, skipped, nil
		})
	}

	posts := catalog.Posts()
	blogIndex := sitemeta.BreadcrumbItem{
		Name: "Blog",
		URL:  sitemeta.CanonicalURL(site.BaseURL, sitemeta.RouteBlogIndex),
	}
	if len(posts) > 0 {
		add(sitemeta.RouteBlogIndex, func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error) {
			meta, advisories, err := p.Metadata.BlogIndexMetadata(site)
			if err != nil {
				return nil, nil, 0, err
			}
			trail := []sitemeta.BreadcrumbItem{home, blogIndex}
			graph, skipped, err := p.graph(
				func() (*sitemeta.SchemaNode, error) { return p.Schema.BreadcrumbNode(site, trail) },
			)
			if err != nil {
				return nil, nil, 0, err
			}
			return &sitemeta.PageArtifact{Route: sitemeta.RouteBlogIndex, Metadata: meta, Graph: graph}, advisories, skipped, nil
		})
	}

	for _, post := range posts {
		post := post
		add(post.Route(), func() (*sitemeta.PageArtifact, []sitemeta.Advisory, int, error) {
			meta, advisories, err := p.Metadata.PostMetadata(site, post)
			if err != nil {
				return nil, nil, 0, err
			}
			trail := []sitemeta.BreadcrumbItem{home, blogIndex, {
				Name: post.Title,
				URL:  sitemeta.CanonicalURL(site.BaseURL, post.Route()),
			}}
			graph, skipped, err := p.graph(
				func() (*sitemeta.SchemaNode, error) { return p.Schema.ArticleNode(site, post) },
				func() (*sitemeta.SchemaNode, error) { return p.Schema.BreadcrumbNode(site, trail) },
			)
			if err != nil {
				return nil, nil, 0, err
			}
			return &sitemeta.PageArtifact{Route: post.Route(), Metadata: meta, Graph: graph}, advisories, skipped, nil
		})
	}

	return jobs
}

// graph runs node builders in order, dropping omitted nodes and counting
// the skips.
func (p *Pipeline) graph(builders ...func() (*sitemeta.SchemaNode, error)) ([]*sitemeta.SchemaNode, int, error) {
	var nodes []*sitemeta.SchemaNode
	var skipped int
	for _, build := range builders {
		node, err := build()
		if err != nil {
			return nil, 0, err
		}
		if node == nil {
			skipped++
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes, skipped, nil
}
