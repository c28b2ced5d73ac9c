package mock

import (
	"context"

	"github.com/sitemeta/sitemeta"
)

var _ sitemeta.RobotsService = (*RobotsService)(nil)

// RobotsService is a mock implementation of sitemeta.RobotsService.
type RobotsService struct {
	BuildRobotsFn func(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog) (*sitemeta.RobotsPolicy, error)
}

func (s *RobotsService) BuildRobots(ctx context.Context, site *sitemeta.Site, catalog *sitemeta.Catalog) (*sitemeta.RobotsPolicy, error) {
	return s.BuildRobotsFn(ctx, site, catalog)
}
