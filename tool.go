package sitemeta

import "strings"

// Tool represents a single interactive tool page in the catalog.
type Tool struct {
	Title       string     `json:"title"`
	Href        string     `json:"href"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color,omitempty"`
	Featured    bool       `json:"featured,omitempty"`
	Steps       []ToolStep `json:"steps,omitempty"`
}

// ToolStep is one instruction in a tool's how-to guide. Tools without steps
// simply publish no how-to node.
type ToolStep struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Route returns the site-relative path of the tool's page.
func (t *Tool) Route() string {
	return t.Href
}

// Validate returns an error if the tool contains invalid fields.
func (t *Tool) Validate() error {
	if t.Title == "" {
		return Errorf(EINVALID, "tool title required")
	}
	if t.Href == "" {
		return Errorf(EINVALID, "tool %q href required", t.Title)
	}
	if !strings.HasPrefix(t.Href, "/") {
		return Errorf(EINVALID, "tool %q href %q must begin with /", t.Title, t.Href)
	}
	if strings.ContainsAny(t.Href, "?#") {
		return Errorf(EINVALID, "tool %q href %q must not carry a query or fragment", t.Title, t.Href)
	}
	if t.Description == "" {
		return Errorf(EINVALID, "tool %q description required", t.Title)
	}
	if t.Category == "" {
		return Errorf(EINVALID, "tool %q category required", t.Title)
	}
	for i, step := range t.Steps {
		if step.Name == "" {
			return Errorf(EINVALID, "tool %q step %d name required", t.Title, i+1)
		}
	}
	return nil
}
