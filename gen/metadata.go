package gen

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sitemeta/sitemeta"
)

// MetadataComposer builds per-page head metadata. Page-specific values win;
// anything absent falls back to the site defaults. Length and quality checks
// are attached as advisories, the composer always returns usable metadata.
type MetadataComposer struct {
	// Summaries, when set, derives a description for posts that ship
	// without an excerpt. When nil such posts fall back to the site
	// description.
	Summaries sitemeta.Summarizer
}

var _ sitemeta.MetadataService = (*MetadataComposer)(nil)

// NewMetadataComposer returns a composer. summaries may be nil.
func NewMetadataComposer(summaries sitemeta.Summarizer) *MetadataComposer {
	return &MetadataComposer{Summaries: summaries}
}

// HomeMetadata implements sitemeta.MetadataService.
func (c *MetadataComposer) HomeMetadata(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	if site == nil {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "site required")
	}
	meta, advisories := c.compose(site, pageInput{
		route: sitemeta.RouteHome,
		title: site.Title,
	})
	return meta, advisories, nil
}

// ToolMetadata implements sitemeta.MetadataService.
func (c *MetadataComposer) ToolMetadata(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	if site == nil || tool == nil {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "site and tool required")
	}
	meta, advisories := c.compose(site, pageInput{
		route:       tool.Route(),
		title:       tool.Title + " | " + site.Name,
		description: tool.Description,
	})
	return meta, advisories, nil
}

// CategoryMetadata implements sitemeta.MetadataService.
func (c *MetadataComposer) CategoryMetadata(site *sitemeta.Site, category *sitemeta.ToolCategory) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	if site == nil || category == nil {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "site and category required")
	}
	meta, advisories := c.compose(site, pageInput{
		route:       category.Route(),
		title:       category.Name + " | " + site.Name,
		description: category.Description,
		keywords:    category.Keywords,
	})
	return meta, advisories, nil
}

// PostMetadata implements sitemeta.MetadataService.
func (c *MetadataComposer) PostMetadata(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	if site == nil || post == nil {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "site and post required")
	}

	var derived []sitemeta.Advisory
	description := post.Excerpt
	if description == "" && c.Summaries != nil && post.Content != "" {
		summary, err := c.Summaries.Summarize(post.Content, sitemeta.DescriptionLengthLimit)
		if err != nil {
			derived = append(derived, sitemeta.Advisory{
				Route:   post.Route(),
				Field:   "description",
				Message: fmt.Sprintf("could not derive description from content: %s", err),
			})
		} else {
			description = summary
		}
	}

	meta, advisories := c.compose(site, pageInput{
		route:       post.Route(),
		title:       post.Title + " | " + site.Name,
		description: description,
		ogType:      sitemeta.OGTypeArticle,
		published:   post.Date,
		author:      post.Author,
		section:     post.Category,
	})
	return meta, append(derived, advisories...), nil
}

// BlogIndexMetadata implements sitemeta.MetadataService.
func (c *MetadataComposer) BlogIndexMetadata(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	if site == nil {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "site required")
	}
	meta, advisories := c.compose(site, pageInput{
		route: sitemeta.RouteBlogIndex,
		title: "Blog | " + site.Name,
	})
	return meta, advisories, nil
}

// StaticMetadata implements sitemeta.MetadataService.
func (c *MetadataComposer) StaticMetadata(site *sitemeta.Site, route sitemeta.StaticRoute) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	if site == nil {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "site required")
	}
	if route.Path == "" {
		return nil, nil, sitemeta.Errorf(sitemeta.EINVALID, "static route path required")
	}
	meta, advisories := c.compose(site, pageInput{
		route:       route.Path,
		title:       route.Title + " | " + site.Name,
		description: route.Description,
	})
	return meta, advisories, nil
}

// pageInput carries the page-specific values the fallback chain starts from.
type pageInput struct {
	route       string
	title       string
	description string
	ogType      string
	keywords    []string
	published   time.Time
	author      string
	section     string
}

func (c *MetadataComposer) compose(site *sitemeta.Site, in pageInput) (*sitemeta.Metadata, []sitemeta.Advisory) {
	title := in.title
	if title == "" {
		title = site.Title
	}
	description := in.description
	if description == "" {
		description = site.Description
	}
	ogType := in.ogType
	if ogType == "" {
		ogType = sitemeta.OGTypeWebsite
	}

	canonical := sitemeta.CanonicalURL(site.BaseURL, in.route)
	image := sitemeta.AbsoluteURL(site.BaseURL, site.OGImage)

	card := sitemeta.TwitterCardSummary
	if image != "" {
		card = sitemeta.TwitterCardSummaryLargeImage
	}

	meta := &sitemeta.Metadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Keywords:    append([]string(nil), in.keywords...),
		OpenGraph: sitemeta.OpenGraph{
			Title:       title,
			Description: description,
			Type:        ogType,
			URL:         canonical,
			SiteName:    site.Name,
			Image:       image,
			Locale:      site.Locale,
		},
		Twitter: sitemeta.TwitterCard{
			Card:        card,
			Site:        site.TwitterSite,
			Title:       title,
			Description: description,
			Image:       image,
		},
	}
	if ogType == sitemeta.OGTypeArticle {
		if !in.published.IsZero() {
			meta.OpenGraph.PublishedTime = in.published.Format(time.RFC3339)
		}
		meta.OpenGraph.Author = in.author
		if in.section != "" {
			meta.OpenGraph.Section = humanize(in.section)
		}
	}

	var advisories []sitemeta.Advisory
	if n := utf8.RuneCountInString(title); n > sitemeta.TitleLengthLimit {
		advisories = append(advisories, sitemeta.Advisory{
			Route:   in.route,
			Field:   "title",
			Message: fmt.Sprintf("title is %d characters, display limit is %d", n, sitemeta.TitleLengthLimit),
		})
	}
	if n := utf8.RuneCountInString(description); n > sitemeta.DescriptionLengthLimit {
		advisories = append(advisories, sitemeta.Advisory{
			Route:   in.route,
			Field:   "description",
			Message: fmt.Sprintf("description is %d characters, display limit is %d", n, sitemeta.DescriptionLengthLimit),
		})
	}
	if description == "" {
		advisories = append(advisories, sitemeta.Advisory{
			Route:   in.route,
			Field:   "description",
			Message: "description is empty and the site sets no default",
		})
	}

	return meta, advisories
}
