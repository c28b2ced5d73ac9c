package sitemeta

import (
	"strings"
	"time"
)

// BlogPost represents a published blog article.
type BlogPost struct {
	Title   string    `json:"title"`
	Slug    string    `json:"slug"`
	Excerpt string    `json:"excerpt,omitempty"`
	Date    time.Time `json:"date"`

	// Author and Category are optional.
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`

	// Content is the optional markdown body. When Excerpt is empty a
	// summarizer may derive the meta description from it.
	Content string `json:"content,omitempty"`
}

// RouteBlogIndex is the site-relative path of the blog landing page.
const RouteBlogIndex = "/blog"

// Route returns the site-relative path of the post's page.
func (p *BlogPost) Route() string {
	return RouteBlogIndex + "/" + p.Slug
}

// Validate returns an error if the post contains invalid fields.
func (p *BlogPost) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "post title required")
	}
	if p.Slug == "" {
		return Errorf(EINVALID, "post %q slug required", p.Title)
	}
	if strings.ContainsAny(p.Slug, "/?#") || p.Slug != strings.ToLower(p.Slug) {
		return Errorf(EINVALID, "post %q slug %q must be a lowercase path segment", p.Title, p.Slug)
	}
	if p.Date.IsZero() {
		return Errorf(EINVALID, "post %q date required", p.Title)
	}
	return nil
}
