package gen

import (
	"strings"
	"unicode"

	"github.com/sitemeta/sitemeta"
)

// SchemaGenerator produces schema.org JSON-LD nodes from catalog entities.
// Every method is a pure function of its inputs; nodes whose required source
// data is absent are omitted, never emitted half-filled.
type SchemaGenerator struct{}

var _ sitemeta.SchemaService = (*SchemaGenerator)(nil)

// NewSchemaGenerator returns a SchemaGenerator.
func NewSchemaGenerator() *SchemaGenerator {
	return &SchemaGenerator{}
}

// WebSiteNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) WebSiteNode(site *sitemeta.Site) (*sitemeta.SchemaNode, error) {
	if site == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site required")
	}

	props := map[string]any{
		"name": site.Name,
		"url":  site.BaseURL,
	}
	if site.Description != "" {
		props["description"] = site.Description
	}
	if site.SearchRoute != "" {
		props["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      sitemeta.AbsoluteURL(site.BaseURL, site.SearchRoute) + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}

	return &sitemeta.SchemaNode{Type: sitemeta.TypeWebSite, Props: props}, nil
}

// OrganizationNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) OrganizationNode(site *sitemeta.Site) (*sitemeta.SchemaNode, error) {
	if site == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site required")
	}
	if site.Logo == "" {
		return nil, nil
	}

	return &sitemeta.SchemaNode{
		Type: sitemeta.TypeOrganization,
		Props: map[string]any{
			"name": site.Name,
			"url":  site.BaseURL,
			"logo": sitemeta.AbsoluteURL(site.BaseURL, site.Logo),
		},
	}, nil
}

// ToolNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) ToolNode(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	if site == nil || tool == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site and tool required")
	}
	if tool.Title == "" || tool.Href == "" || tool.Description == "" {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "tool %q missing required fields", tool.Href)
	}

	props := map[string]any{
		"name":            tool.Title,
		"url":             sitemeta.CanonicalURL(site.BaseURL, tool.Route()),
		"description":     tool.Description,
		"operatingSystem": "Web",
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
		},
	}
	if tool.Category != "" {
		props["applicationCategory"] = humanize(tool.Category)
	}

	return &sitemeta.SchemaNode{Type: sitemeta.TypeSoftwareApplication, Props: props}, nil
}

// HowToNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) HowToNode(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	if site == nil || tool == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site and tool required")
	}
	if len(tool.Steps) == 0 {
		return nil, nil
	}

	steps := make([]map[string]any, 0, len(tool.Steps))
	for i, s := range tool.Steps {
		step := map[string]any{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     s.Name,
		}
		if s.Text != "" {
			step["text"] = s.Text
		}
		steps = append(steps, step)
	}

	props := map[string]any{
		"name": "How to use " + tool.Title,
		"step": steps,
	}
	if tool.Description != "" {
		props["description"] = tool.Description
	}

	return &sitemeta.SchemaNode{Type: sitemeta.TypeHowTo, Props: props}, nil
}

// CollectionNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) CollectionNode(site *sitemeta.Site, category *sitemeta.ToolCategory, tools []*sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	if site == nil || category == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site and category required")
	}

	items := make([]map[string]any, 0, len(tools))
	for i, t := range tools {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     t.Title,
			"url":      sitemeta.CanonicalURL(site.BaseURL, t.Route()),
		})
	}

	return &sitemeta.SchemaNode{
		Type: sitemeta.TypeCollectionPage,
		Props: map[string]any{
			"name":        category.Name,
			"description": category.Description,
			"url":         sitemeta.CanonicalURL(site.BaseURL, category.Route()),
			"mainEntity": map[string]any{
				"@type":           "ItemList",
				"numberOfItems":   len(items),
				"itemListElement": items,
			},
		},
	}, nil
}

// FAQNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) FAQNode(category *sitemeta.ToolCategory) (*sitemeta.SchemaNode, error) {
	if category == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "category required")
	}
	if len(category.FAQs) == 0 {
		return nil, nil
	}

	entities := make([]map[string]any, 0, len(category.FAQs))
	for _, faq := range category.FAQs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  faq.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  faq.Answer,
			},
		})
	}

	return &sitemeta.SchemaNode{
		Type:  sitemeta.TypeFAQPage,
		Props: map[string]any{"mainEntity": entities},
	}, nil
}

// ArticleNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) ArticleNode(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.SchemaNode, error) {
	if site == nil || post == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site and post required")
	}
	if post.Title == "" || post.Date.IsZero() {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "post %q missing required fields", post.Slug)
	}

	publisher := map[string]any{
		"@type": "Organization",
		"name":  site.Name,
	}
	if site.Logo != "" {
		publisher["logo"] = sitemeta.AbsoluteURL(site.BaseURL, site.Logo)
	}

	props := map[string]any{
		"headline":      post.Title,
		"url":           sitemeta.CanonicalURL(site.BaseURL, post.Route()),
		"datePublished": post.Date.Format("2006-01-02"),
		"publisher":     publisher,
	}
	if post.Excerpt != "" {
		props["description"] = post.Excerpt
	}
	if post.Author != "" {
		props["author"] = map[string]any{"@type": "Person", "name": post.Author}
	}
	if post.Category != "" {
		props["articleSection"] = humanize(post.Category)
	}
	if site.OGImage != "" {
		props["image"] = sitemeta.AbsoluteURL(site.BaseURL, site.OGImage)
	}

	return &sitemeta.SchemaNode{Type: sitemeta.TypeArticle, Props: props}, nil
}

// BreadcrumbNode implements sitemeta.SchemaService.
func (g *SchemaGenerator) BreadcrumbNode(site *sitemeta.Site, trail []sitemeta.BreadcrumbItem) (*sitemeta.SchemaNode, error) {
	if site == nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "site required")
	}
	if len(trail) == 0 {
		return nil, nil
	}

	elements := make([]map[string]any, 0, len(trail))
	for i, item := range trail {
		if item.Name == "" || item.URL == "" {
			return nil, sitemeta.Errorf(sitemeta.EINVALID, "breadcrumb item %d missing name or url", i+1)
		}
		elements = append(elements, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     item.Name,
			"item":     item.URL,
		})
	}

	return &sitemeta.SchemaNode{
		Type:  sitemeta.TypeBreadcrumbList,
		Props: map[string]any{"itemListElement": elements},
	}, nil
}

// humanize renders a slug identifier as display text, e.g. "dev-tools"
// becomes "Dev Tools".
func humanize(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
