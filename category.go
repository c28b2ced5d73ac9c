package sitemeta

// ToolCategory groups related tools and carries the category page's SEO
// keywords and optional FAQ entries.
type ToolCategory struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`

	// Tools lists member tool hrefs in display order. Catalog tools that
	// reference this category but are absent from the list sort after it.
	Tools []string `json:"tools,omitempty"`

	FAQs []FAQ `json:"faqs,omitempty"`
}

// FAQ is one question/answer pair on a category page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Route returns the site-relative path of the category's page.
func (c *ToolCategory) Route() string {
	return "/category/" + c.ID
}

// Validate returns an error if the category contains invalid fields.
func (c *ToolCategory) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "category id required")
	}
	if c.ID != Slugify(c.ID) {
		return Errorf(EINVALID, "category id %q must be a lowercase slug", c.ID)
	}
	if c.Name == "" {
		return Errorf(EINVALID, "category %q name required", c.ID)
	}
	if c.Description == "" {
		return Errorf(EINVALID, "category %q description required", c.ID)
	}
	for i, faq := range c.FAQs {
		if faq.Question == "" {
			return Errorf(EINVALID, "category %q FAQ %d question required", c.ID, i+1)
		}
		if faq.Answer == "" {
			return Errorf(EINVALID, "category %q FAQ %d answer required", c.ID, i+1)
		}
	}
	return nil
}
