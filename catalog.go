package sitemeta

import "context"

// Catalog is the immutable collection of tools, categories, and blog posts
// backing one generation pass. It is constructed and validated once via
// NewCatalog and only read afterwards; generators and composers never
// mutate it.
type Catalog struct {
	tools      []*Tool
	categories []*ToolCategory
	posts      []*BlogPost

	toolsByPath    map[string]*Tool
	categoriesByID map[string]*ToolCategory
	postsBySlug    map[string]*BlogPost
}

// NewCatalog validates the catalog invariants and returns a frozen catalog:
// entity fields are well-formed, canonical paths are unique across every
// entity kind, and every category reference resolves. Any violation aborts
// with EINVALID or ECONFLICT before a single page can be generated.
func NewCatalog(tools []*Tool, categories []*ToolCategory, posts []*BlogPost) (*Catalog, error) {
	c := &Catalog{
		tools:          make([]*Tool, len(tools)),
		categories:     make([]*ToolCategory, len(categories)),
		posts:          make([]*BlogPost, len(posts)),
		toolsByPath:    make(map[string]*Tool, len(tools)),
		categoriesByID: make(map[string]*ToolCategory, len(categories)),
		postsBySlug:    make(map[string]*BlogPost, len(posts)),
	}
	copy(c.tools, tools)
	copy(c.categories, categories)
	copy(c.posts, posts)

	// kind+name per published path, for cross-kind conflict messages.
	type owner struct {
		kind string
		name string
	}
	paths := make(map[string]owner)
	claim := func(route, kind, name string) error {
		key := NormalizeURL(route)
		if prev, ok := paths[key]; ok {
			return Errorf(ECONFLICT, "%s %q and %s %q publish the same canonical path %q",
				prev.kind, prev.name, kind, name, key)
		}
		paths[key] = owner{kind: kind, name: name}
		return nil
	}

	for _, cat := range c.categories {
		if err := cat.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.categoriesByID[cat.ID]; ok {
			return nil, Errorf(EINVALID, "duplicate category id %q", cat.ID)
		}
		c.categoriesByID[cat.ID] = cat
		if err := claim(cat.Route(), "category", cat.ID); err != nil {
			return nil, err
		}
	}

	for _, tool := range c.tools {
		if err := tool.Validate(); err != nil {
			return nil, err
		}
		key := NormalizeURL(tool.Href)
		if _, ok := c.toolsByPath[key]; ok {
			return nil, Errorf(EINVALID, "duplicate tool href %q", tool.Href)
		}
		c.toolsByPath[key] = tool
		if _, ok := c.categoriesByID[tool.Category]; !ok {
			return nil, Errorf(EINVALID, "tool %q references unknown category %q", tool.Title, tool.Category)
		}
		if err := claim(tool.Href, "tool", tool.Href); err != nil {
			return nil, err
		}
	}

	for _, post := range c.posts {
		if err := post.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.postsBySlug[post.Slug]; ok {
			return nil, Errorf(EINVALID, "duplicate post slug %q", post.Slug)
		}
		c.postsBySlug[post.Slug] = post
		if post.Category != "" {
			if _, ok := c.categoriesByID[post.Category]; !ok {
				return nil, Errorf(EINVALID, "post %q references unknown category %q", post.Title, post.Category)
			}
		}
		if err := claim(post.Route(), "post", post.Slug); err != nil {
			return nil, err
		}
	}

	// Ordered member lists must reference tools that exist and belong.
	for _, cat := range c.categories {
		for _, href := range cat.Tools {
			tool, ok := c.toolsByPath[NormalizeURL(href)]
			if !ok {
				return nil, Errorf(EINVALID, "category %q lists unknown tool href %q", cat.ID, href)
			}
			if tool.Category != cat.ID {
				return nil, Errorf(EINVALID, "category %q lists tool %q which belongs to category %q",
					cat.ID, tool.Title, tool.Category)
			}
		}
	}

	return c, nil
}

// Tools returns the catalog's tools in input order.
func (c *Catalog) Tools() []*Tool {
	out := make([]*Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Categories returns the catalog's categories in input order.
func (c *Catalog) Categories() []*ToolCategory {
	out := make([]*ToolCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

// Posts returns the catalog's blog posts in input order.
func (c *Catalog) Posts() []*BlogPost {
	out := make([]*BlogPost, len(c.posts))
	copy(out, c.posts)
	return out
}

// ToolByPath looks up a tool by its href. The path is normalized before the
// lookup, so "/JSON-Formatter/" finds the tool published at "/json-formatter".
func (c *Catalog) ToolByPath(href string) (*Tool, bool) {
	t, ok := c.toolsByPath[NormalizeURL(href)]
	return t, ok
}

// CategoryByID looks up a category by id.
func (c *Catalog) CategoryByID(id string) (*ToolCategory, bool) {
	cat, ok := c.categoriesByID[id]
	return cat, ok
}

// PostBySlug looks up a blog post by slug.
func (c *Catalog) PostBySlug(slug string) (*BlogPost, bool) {
	p, ok := c.postsBySlug[slug]
	return p, ok
}

// ToolsInCategory returns the category's tools in display order: the
// category's ordered member list first, then any remaining members in
// catalog order.
func (c *Catalog) ToolsInCategory(id string) []*Tool {
	cat, ok := c.categoriesByID[id]
	if !ok {
		return nil
	}

	var out []*Tool
	listed := make(map[string]bool, len(cat.Tools))
	for _, href := range cat.Tools {
		key := NormalizeURL(href)
		if listed[key] {
			continue
		}
		listed[key] = true
		out = append(out, c.toolsByPath[key])
	}
	for _, tool := range c.tools {
		if tool.Category != id {
			continue
		}
		if listed[NormalizeURL(tool.Href)] {
			continue
		}
		out = append(out, tool)
	}
	return out
}

// Routes returns the site-relative path of every catalog entity page:
// tools, categories, and blog posts. The home page, blog index, and static
// routes belong to the site context, not the catalog.
func (c *Catalog) Routes() []string {
	routes := make([]string, 0, len(c.tools)+len(c.categories)+len(c.posts))
	for _, tool := range c.tools {
		routes = append(routes, tool.Route())
	}
	for _, cat := range c.categories {
		routes = append(routes, cat.Route())
	}
	for _, post := range c.posts {
		routes = append(routes, post.Route())
	}
	return routes
}

// CatalogService loads the catalog for a generation pass. Implementations
// construct the result via NewCatalog, so a successfully loaded catalog
// always satisfies the catalog invariants.
type CatalogService interface {
	LoadCatalog(ctx context.Context) (*Catalog, error)
}
