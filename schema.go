package sitemeta

import "encoding/json"

// SchemaContext is the schema.org vocabulary URL every top-level node declares.
const SchemaContext = "https://schema.org"

// Node types emitted by the schema generators.
const (
	TypeSoftwareApplication = "SoftwareApplication"
	TypeHowTo               = "HowTo"
	TypeBreadcrumbList      = "BreadcrumbList"
	TypeFAQPage             = "FAQPage"
	TypeCollectionPage      = "CollectionPage"
	TypeArticle             = "Article"
	TypeWebSite             = "WebSite"
	TypeOrganization        = "Organization"
)

// SchemaNode is one top-level JSON-LD node. It marshals as a single object
// carrying "@context" and "@type" alongside the node's properties; nested
// objects inside Props declare their own "@type" but no "@context".
//
// Marshaling is deterministic: keys are emitted in sorted order, which for
// "@"-prefixed keys means the JSON-LD keywords lead the object.
type SchemaNode struct {
	Type  string
	Props map[string]any
}

// MarshalJSON implements json.Marshaler.
func (n *SchemaNode) MarshalJSON() ([]byte, error) {
	if n.Type == "" {
		return nil, Errorf(EINTERNAL, "schema node type required")
	}
	m := make(map[string]any, len(n.Props)+2)
	for k, v := range n.Props {
		m[k] = v
	}
	m["@context"] = SchemaContext
	m["@type"] = n.Type
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *SchemaNode) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	typ, ok := m["@type"].(string)
	if !ok || typ == "" {
		return Errorf(EINVALID, "schema node missing @type")
	}
	delete(m, "@context")
	delete(m, "@type")
	n.Type = typ
	n.Props = m
	return nil
}

// BreadcrumbItem is one crumb of a page's navigation trail, ordered from the
// site root down to the current page.
type BreadcrumbItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SchemaService generates the JSON-LD nodes for catalog pages.
//
// Methods that depend on optional catalog data return (nil, nil) when the
// data is absent; callers treat a nil node as "omit", not as a failure. A
// non-nil error always means the inputs were unusable.
type SchemaService interface {
	// WebSiteNode describes the site itself, including a SearchAction
	// when the site configures a search route.
	WebSiteNode(site *Site) (*SchemaNode, error)

	// OrganizationNode describes the publishing organization. It returns
	// (nil, nil) when the site configures no logo.
	OrganizationNode(site *Site) (*SchemaNode, error)

	// ToolNode describes one tool as a SoftwareApplication.
	ToolNode(site *Site, tool *Tool) (*SchemaNode, error)

	// HowToNode describes a tool's usage steps. It returns (nil, nil)
	// when the tool declares no steps.
	HowToNode(site *Site, tool *Tool) (*SchemaNode, error)

	// CollectionNode describes a category page and the tools it lists.
	CollectionNode(site *Site, category *ToolCategory, tools []*Tool) (*SchemaNode, error)

	// FAQNode describes a category's FAQ entries. It returns (nil, nil)
	// when the category has none.
	FAQNode(category *ToolCategory) (*SchemaNode, error)

	// ArticleNode describes one blog post.
	ArticleNode(site *Site, post *BlogPost) (*SchemaNode, error)

	// BreadcrumbNode describes a page's navigation trail with positions
	// numbered from 1. It returns (nil, nil) for an empty trail.
	BreadcrumbNode(site *Site, trail []BreadcrumbItem) (*SchemaNode, error)
}
