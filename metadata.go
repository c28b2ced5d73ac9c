package sitemeta

// Display limits the composer checks titles and descriptions against.
// Overruns are reported as advisories, never as errors; search engines
// truncate, they do not reject.
const (
	TitleLengthLimit       = 60
	DescriptionLengthLimit = 160
)

// Open Graph object types.
const (
	OGTypeWebsite = "website"
	OGTypeArticle = "article"
)

// Twitter card kinds.
const (
	TwitterCardSummary           = "summary"
	TwitterCardSummaryLargeImage = "summary_large_image"
)

// Metadata is the composed head metadata for one page.
type Metadata struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Canonical   string      `json:"canonical"`
	Keywords    []string    `json:"keywords,omitempty"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
}

// OpenGraph holds the og:* properties of a page.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName"`
	Image       string `json:"image,omitempty"`
	Locale      string `json:"locale,omitempty"`

	// Article properties, set only when Type is OGTypeArticle.
	PublishedTime string `json:"publishedTime,omitempty"`
	Author        string `json:"author,omitempty"`
	Section       string `json:"section,omitempty"`
}

// TwitterCard holds the twitter:* properties of a page.
type TwitterCard struct {
	Card        string `json:"card"`
	Site        string `json:"site,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Advisory is a non-fatal metadata quality finding, e.g. a title that
// exceeds the display limit. Advisories surface in the generation report;
// they never fail a page.
type Advisory struct {
	Route   string `json:"route"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MetadataService composes head metadata for catalog pages. Every method
// applies the same fallback chain: page-specific values first, then the
// site-wide defaults; derived values are recorded as advisories when they
// fall outside display limits or come up empty.
type MetadataService interface {
	HomeMetadata(site *Site) (*Metadata, []Advisory, error)
	ToolMetadata(site *Site, tool *Tool) (*Metadata, []Advisory, error)
	CategoryMetadata(site *Site, category *ToolCategory) (*Metadata, []Advisory, error)
	PostMetadata(site *Site, post *BlogPost) (*Metadata, []Advisory, error)
	BlogIndexMetadata(site *Site) (*Metadata, []Advisory, error)
	StaticMetadata(site *Site, route StaticRoute) (*Metadata, []Advisory, error)
}
