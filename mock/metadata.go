package mock

import (
	"github.com/sitemeta/sitemeta"
)

var _ sitemeta.MetadataService = (*MetadataService)(nil)

// MetadataService is a mock implementation of sitemeta.MetadataService.
type MetadataService struct {
	HomeMetadataFn      func(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error)
	ToolMetadataFn      func(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.Metadata, []sitemeta.Advisory, error)
	CategoryMetadataFn  func(site *sitemeta.Site, category *sitemeta.ToolCategory) (*sitemeta.Metadata, []sitemeta.Advisory, error)
	PostMetadataFn      func(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.Metadata, []sitemeta.Advisory, error)
	BlogIndexMetadataFn func(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error)
	StaticMetadataFn    func(site *sitemeta.Site, route sitemeta.StaticRoute) (*sitemeta.Metadata, []sitemeta.Advisory, error)
}

func (s *MetadataService) HomeMetadata(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	return s.HomeMetadataFn(site)
}

func (s *MetadataService) ToolMetadata(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	return s.ToolMetadataFn(site, tool)
}

func (s *MetadataService) CategoryMetadata(site *sitemeta.Site, category *sitemeta.ToolCategory) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	return s.CategoryMetadataFn(site, category)
}

func (s *MetadataService) PostMetadata(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	return s.PostMetadataFn(site, post)
}

func (s *MetadataService) BlogIndexMetadata(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	return s.BlogIndexMetadataFn(site)
}

func (s *MetadataService) StaticMetadata(site *sitemeta.Site, route sitemeta.StaticRoute) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	return s.StaticMetadataFn(site, route)
}
