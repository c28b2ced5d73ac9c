package fs

import (
	"os"
	"strings"

	"github.com/sitemeta/sitemeta"
	"gopkg.in/yaml.v3"
)

// siteFile mirrors the site.yaml layout.
type siteFile struct {
	BaseURL        string            `yaml:"baseUrl"`
	Name           string            `yaml:"name"`
	Title          string            `yaml:"title"`
	Description    string            `yaml:"description"`
	OGImage        string            `yaml:"ogImage"`
	Logo           string            `yaml:"logo"`
	TwitterSite    string            `yaml:"twitterSite"`
	Locale         string            `yaml:"locale"`
	SearchRoute    string            `yaml:"searchRoute"`
	StaticRoutes   []staticRouteFile `yaml:"staticRoutes"`
	RobotsDisallow []string          `yaml:"robotsDisallow"`
}

type staticRouteFile struct {
	Path        string  `yaml:"path"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Priority    float64 `yaml:"priority"`
	ChangeFreq  string  `yaml:"changeFreq"`
}

// LoadSite reads and validates a site configuration file. A trailing slash
// on the base URL is tolerated and trimmed.
func LoadSite(path string) (*sitemeta.Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitemeta.Errorf(sitemeta.ENOTFOUND, "site configuration %q not found", path)
		}
		return nil, err
	}

	var f siteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "parse %s: %s", path, err)
	}

	site := &sitemeta.Site{
		BaseURL:        strings.TrimRight(strings.TrimSpace(f.BaseURL), "/"),
		Name:           strings.TrimSpace(f.Name),
		Title:          strings.TrimSpace(f.Title),
		Description:    strings.TrimSpace(f.Description),
		OGImage:        strings.TrimSpace(f.OGImage),
		Logo:           strings.TrimSpace(f.Logo),
		TwitterSite:    strings.TrimSpace(f.TwitterSite),
		Locale:         strings.TrimSpace(f.Locale),
		SearchRoute:    strings.TrimSpace(f.SearchRoute),
		RobotsDisallow: f.RobotsDisallow,
	}
	for _, r := range f.StaticRoutes {
		site.StaticRoutes = append(site.StaticRoutes, sitemeta.StaticRoute{
			Path:        strings.TrimSpace(r.Path),
			Title:       strings.TrimSpace(r.Title),
			Description: strings.TrimSpace(r.Description),
			Priority:    r.Priority,
			ChangeFreq:  sitemeta.ChangeFreq(strings.TrimSpace(r.ChangeFreq)),
		})
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}
