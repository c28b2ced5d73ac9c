package sitemeta

import (
	"net/url"
	"strings"
)

// RouteHome is the site-relative path of the home page.
const RouteHome = "/"

// Site describes the publishing site for one generation pass: the base URL,
// global metadata defaults, the static route list, and the crawl-policy
// inputs. A Site is constructed explicitly and passed into every generator
// and composer call; nothing reads it from ambient state.
type Site struct {
	// BaseURL is the absolute site origin, without a trailing slash,
	// e.g. "https://site.example".
	BaseURL string `json:"baseUrl"`

	// Name is the site's display name, used as the title suffix and as
	// og:site_name.
	Name string `json:"name"`

	// Title and Description are the global metadata defaults pages fall
	// back to.
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// OGImage is the default social sharing image, absolute or site-relative.
	OGImage string `json:"ogImage,omitempty"`

	// Logo is the organization logo for structured data.
	Logo string `json:"logo,omitempty"`

	// TwitterSite is the site's Twitter handle, e.g. "@siteexample".
	TwitterSite string `json:"twitterSite,omitempty"`

	// Locale is the Open Graph locale, e.g. "en_US".
	Locale string `json:"locale,omitempty"`

	// SearchRoute, when set, is the site-relative search path the WebSite
	// node advertises as a SearchAction, e.g. "/search?q=".
	SearchRoute string `json:"searchRoute,omitempty"`

	// StaticRoutes lists the non-catalog pages (about, contact, legal).
	StaticRoutes []StaticRoute `json:"staticRoutes,omitempty"`

	// RobotsDisallow holds the crawl denylist path prefixes. nil selects
	// DefaultDisallow; an explicit empty list disables the denylist.
	RobotsDisallow []string `json:"robotsDisallow,omitempty"`
}

// StaticRoute describes one fixed, non-catalog page.
type StaticRoute struct {
	Path        string     `json:"path"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    float64    `json:"priority,omitempty"`   // 0 selects PriorityStatic
	ChangeFreq  ChangeFreq `json:"changeFreq,omitempty"` // "" selects ChangeYearly
}

// Validate returns an error if the site context contains invalid fields.
func (s *Site) Validate() error {
	if s.BaseURL == "" {
		return Errorf(EINVALID, "site base URL required")
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Errorf(EINVALID, "site base URL %q must be absolute", s.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "site base URL %q must use http or https", s.BaseURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return Errorf(EINVALID, "site base URL %q must not carry a query or fragment", s.BaseURL)
	}
	if strings.HasSuffix(s.BaseURL, "/") {
		return Errorf(EINVALID, "site base URL %q must not end with /", s.BaseURL)
	}
	if s.Name == "" {
		return Errorf(EINVALID, "site name required")
	}
	if s.Title == "" {
		return Errorf(EINVALID, "site title required")
	}
	if s.TwitterSite != "" && !strings.HasPrefix(s.TwitterSite, "@") {
		return Errorf(EINVALID, "twitter site %q must begin with @", s.TwitterSite)
	}
	if s.SearchRoute != "" && !strings.HasPrefix(s.SearchRoute, "/") {
		return Errorf(EINVALID, "search route %q must begin with /", s.SearchRoute)
	}

	seen := make(map[string]string, len(s.StaticRoutes))
	for _, route := range s.StaticRoutes {
		if route.Path == "" || !strings.HasPrefix(route.Path, "/") {
			return Errorf(EINVALID, "static route path %q must begin with /", route.Path)
		}
		if route.Title == "" {
			return Errorf(EINVALID, "static route %q title required", route.Path)
		}
		if route.Priority < 0 || route.Priority > 1 {
			return Errorf(EINVALID, "static route %q priority %v must be within [0,1]", route.Path, route.Priority)
		}
		if route.ChangeFreq != "" && !route.ChangeFreq.Valid() {
			return Errorf(EINVALID, "static route %q change frequency %q is not valid", route.Path, route.ChangeFreq)
		}
		key := NormalizeRoute(route.Path)
		if prev, ok := seen[key]; ok {
			return Errorf(EINVALID, "static routes %q and %q share the canonical path %q", prev, route.Path, key)
		}
		seen[key] = route.Path
	}

	for _, prefix := range s.RobotsDisallow {
		if !strings.HasPrefix(prefix, "/") {
			return Errorf(EINVALID, "robots disallow prefix %q must begin with /", prefix)
		}
	}

	return nil
}
