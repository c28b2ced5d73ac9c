package sitemeta

import (
	"net/url"
	"strings"
)

// NormalizeURL is the single canonicalization choke point shared by the
// metadata composer and the sitemap builder, so the advertised canonical URL
// and the sitemap entry for a page can never disagree. It strips query
// strings and fragments, removes trailing slashes, and lowercases the
// scheme, host, and path. Normalizing an already-normalized URL returns it
// unchanged.
//
// Inputs that do not parse are returned with surrounding whitespace trimmed.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.ToLower(strings.TrimRight(u.Path, "/"))
	// Clear RawPath so String() re-encodes from the lowercased Path.
	u.RawPath = ""
	return u.String()
}

// NormalizeRoute normalizes a site-relative route for lookup and comparison.
// Unlike NormalizeURL it maps the home route to "/" rather than the empty
// string, which can neither key a map nor prefix-match anything.
func NormalizeRoute(route string) string {
	normalized := NormalizeURL(route)
	if normalized == "" {
		return RouteHome
	}
	return normalized
}

// CanonicalURL returns the canonical absolute URL for a site-relative path:
// NormalizeURL(baseURL + path). Callers pass a validated base URL and a path
// beginning with "/".
func CanonicalURL(baseURL, path string) string {
	return NormalizeURL(strings.TrimRight(strings.TrimSpace(baseURL), "/") + path)
}

// AbsoluteURL resolves a possibly site-relative reference (such as an Open
// Graph image path) against the base URL. Absolute references are returned
// as-is. Unlike NormalizeURL it preserves case and query strings, since
// asset paths may be case-sensitive.
func AbsoluteURL(baseURL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if u, err := url.Parse(ref); err == nil && u.IsAbs() {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return strings.TrimRight(strings.TrimSpace(baseURL), "/") + ref
}
