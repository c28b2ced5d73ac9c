package mock

import (
	"github.com/sitemeta/sitemeta"
)

var _ sitemeta.SchemaService = (*SchemaService)(nil)

// SchemaService is a mock implementation of sitemeta.SchemaService.
type SchemaService struct {
	WebSiteNodeFn      func(site *sitemeta.Site) (*sitemeta.SchemaNode, error)
	OrganizationNodeFn func(site *sitemeta.Site) (*sitemeta.SchemaNode, error)
	ToolNodeFn         func(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error)
	HowToNodeFn        func(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error)
	CollectionNodeFn   func(site *sitemeta.Site, category *sitemeta.ToolCategory, tools []*sitemeta.Tool) (*sitemeta.SchemaNode, error)
	FAQNodeFn          func(category *sitemeta.ToolCategory) (*sitemeta.SchemaNode, error)
	ArticleNodeFn      func(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.SchemaNode, error)
	BreadcrumbNodeFn   func(site *sitemeta.Site, trail []sitemeta.BreadcrumbItem) (*sitemeta.SchemaNode, error)
}

func (s *SchemaService) WebSiteNode(site *sitemeta.Site) (*sitemeta.SchemaNode, error) {
	return s.WebSiteNodeFn(site)
}

func (s *SchemaService) OrganizationNode(site *sitemeta.Site) (*sitemeta.SchemaNode, error) {
	return s.OrganizationNodeFn(site)
}

func (s *SchemaService) ToolNode(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	return s.ToolNodeFn(site, tool)
}

func (s *SchemaService) HowToNode(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	return s.HowToNodeFn(site, tool)
}

func (s *SchemaService) CollectionNode(site *sitemeta.Site, category *sitemeta.ToolCategory, tools []*sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	return s.CollectionNodeFn(site, category, tools)
}

func (s *SchemaService) FAQNode(category *sitemeta.ToolCategory) (*sitemeta.SchemaNode, error) {
	return s.FAQNodeFn(category)
}

func (s *SchemaService) ArticleNode(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.SchemaNode, error) {
	return s.ArticleNodeFn(site, post)
}

func (s *SchemaService) BreadcrumbNode(site *sitemeta.Site, trail []sitemeta.BreadcrumbItem) (*sitemeta.SchemaNode, error) {
	return s.BreadcrumbNodeFn(site, trail)
}
