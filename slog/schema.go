package slog

import (
	"log/slog"

	"github.com/sitemeta/sitemeta"
)

// Ensure LoggingSchemaService implements sitemeta.SchemaService.
var _ sitemeta.SchemaService = (*LoggingSchemaService)(nil)

// LoggingSchemaService wraps a SchemaService and logs every node the inner
// service declines to emit for lack of source data, so thin page graphs are
// visible in the run log.
type LoggingSchemaService struct {
	next   sitemeta.SchemaService
	logger *slog.Logger
}

// NewLoggingSchemaService creates a new LoggingSchemaService.
func NewLoggingSchemaService(next sitemeta.SchemaService, logger *slog.Logger) *LoggingSchemaService {
	return &LoggingSchemaService{next: next, logger: logger}
}

// logSkip records a node the inner service declined to emit.
func (s *LoggingSchemaService) logSkip(node *sitemeta.SchemaNode, err error, kind, route string) {
	if err != nil || node != nil {
		return
	}
	s.logger.Warn("schema node skipped", "kind", kind, "route", route)
}

// WebSiteNode delegates to the wrapped service.
func (s *LoggingSchemaService) WebSiteNode(site *sitemeta.Site) (*sitemeta.SchemaNode, error) {
	return s.next.WebSiteNode(site)
}

// OrganizationNode delegates and logs when the site declares no logo.
func (s *LoggingSchemaService) OrganizationNode(site *sitemeta.Site) (*sitemeta.SchemaNode, error) {
	node, err := s.next.OrganizationNode(site)
	s.logSkip(node, err, sitemeta.TypeOrganization, sitemeta.RouteHome)
	return node, err
}

// ToolNode delegates to the wrapped service.
func (s *LoggingSchemaService) ToolNode(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	return s.next.ToolNode(site, tool)
}

// HowToNode delegates and logs when the tool declares no steps. A nil tool
// is the inner service's EINVALID, not a skip, so no route is computed.
func (s *LoggingSchemaService) HowToNode(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	node, err := s.next.HowToNode(site, tool)
	if tool != nil {
		s.logSkip(node, err, sitemeta.TypeHowTo, tool.Route())
	}
	return node, err
}

// CollectionNode delegates to the wrapped service.
func (s *LoggingSchemaService) CollectionNode(site *sitemeta.Site, category *sitemeta.ToolCategory, tools []*sitemeta.Tool) (*sitemeta.SchemaNode, error) {
	return s.next.CollectionNode(site, category, tools)
}

// FAQNode delegates and logs when the category has no FAQ entries. A nil
// category is the inner service's EINVALID, not a skip, so no route is
// computed.
func (s *LoggingSchemaService) FAQNode(category *sitemeta.ToolCategory) (*sitemeta.SchemaNode, error) {
	node, err := s.next.FAQNode(category)
	if category != nil {
		s.logSkip(node, err, sitemeta.TypeFAQPage, category.Route())
	}
	return node, err
}

// ArticleNode delegates to the wrapped service.
func (s *LoggingSchemaService) ArticleNode(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.SchemaNode, error) {
	return s.next.ArticleNode(site, post)
}

// BreadcrumbNode delegates to the wrapped service. An empty trail is a
// structural property of the page, not missing data, so it is not logged.
func (s *LoggingSchemaService) BreadcrumbNode(site *sitemeta.Site, trail []sitemeta.BreadcrumbItem) (*sitemeta.SchemaNode, error) {
	return s.next.BreadcrumbNode(site, trail)
}
