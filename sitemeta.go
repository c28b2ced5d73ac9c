// Package sitemeta keeps search-engine metadata, JSON-LD structured data,
// and crawl artifacts consistent across the generated pages of a
// catalog-driven website. It turns a validated, frozen catalog of tools,
// tool categories, and blog posts into per-page metadata, schema.org
// graphs, a deduplicated sitemap, and a robots policy that can never
// drift from the published page set.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or function (e.g., gen/, etree/, sqlite/).
package sitemeta
