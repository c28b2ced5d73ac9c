package slog

import (
	"log/slog"

	"github.com/sitemeta/sitemeta"
)

// Ensure LoggingMetadataService implements sitemeta.MetadataService.
var _ sitemeta.MetadataService = (*LoggingMetadataService)(nil)

// LoggingMetadataService wraps a MetadataService and logs every advisory the
// inner service attaches, so length and fallback problems surface in the run
// log as well as the report.
type LoggingMetadataService struct {
	next   sitemeta.MetadataService
	logger *slog.Logger
}

// NewLoggingMetadataService creates a new LoggingMetadataService.
func NewLoggingMetadataService(next sitemeta.MetadataService, logger *slog.Logger) *LoggingMetadataService {
	return &LoggingMetadataService{next: next, logger: logger}
}

func (s *LoggingMetadataService) logAdvisories(advisories []sitemeta.Advisory) {
	for _, a := range advisories {
		s.logger.Warn("metadata advisory",
			"route", a.Route,
			"field", a.Field,
			"msg", a.Message,
		)
	}
}

// HomeMetadata delegates to the wrapped service and logs its advisories.
func (s *LoggingMetadataService) HomeMetadata(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	meta, advisories, err := s.next.HomeMetadata(site)
	s.logAdvisories(advisories)
	return meta, advisories, err
}

// ToolMetadata delegates to the wrapped service and logs its advisories.
func (s *LoggingMetadataService) ToolMetadata(site *sitemeta.Site, tool *sitemeta.Tool) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	meta, advisories, err := s.next.ToolMetadata(site, tool)
	s.logAdvisories(advisories)
	return meta, advisories, err
}

// CategoryMetadata delegates to the wrapped service and logs its advisories.
func (s *LoggingMetadataService) CategoryMetadata(site *sitemeta.Site, category *sitemeta.ToolCategory) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	meta, advisories, err := s.next.CategoryMetadata(site, category)
	s.logAdvisories(advisories)
	return meta, advisories, err
}

// PostMetadata delegates to the wrapped service and logs its advisories.
func (s *LoggingMetadataService) PostMetadata(site *sitemeta.Site, post *sitemeta.BlogPost) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	meta, advisories, err := s.next.PostMetadata(site, post)
	s.logAdvisories(advisories)
	return meta, advisories, err
}

// BlogIndexMetadata delegates to the wrapped service and logs its advisories.
func (s *LoggingMetadataService) BlogIndexMetadata(site *sitemeta.Site) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	meta, advisories, err := s.next.BlogIndexMetadata(site)
	s.logAdvisories(advisories)
	return meta, advisories, err
}

// StaticMetadata delegates to the wrapped service and logs its advisories.
func (s *LoggingMetadataService) StaticMetadata(site *sitemeta.Site, route sitemeta.StaticRoute) (*sitemeta.Metadata, []sitemeta.Advisory, error) {
	meta, advisories, err := s.next.StaticMetadata(site, route)
	s.logAdvisories(advisories)
	return meta, advisories, err
}
