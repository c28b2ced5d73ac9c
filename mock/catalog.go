package mock

import (
	"context"

	"github.com/sitemeta/sitemeta"
)

var _ sitemeta.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of sitemeta.CatalogService.
type CatalogService struct {
	LoadCatalogFn func(ctx context.Context) (*sitemeta.Catalog, error)
}

func (s *CatalogService) LoadCatalog(ctx context.Context) (*sitemeta.Catalog, error) {
	return s.LoadCatalogFn(ctx)
}
