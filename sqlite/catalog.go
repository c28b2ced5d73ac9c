package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/sitemeta/sitemeta"
)

// Compile-time interface verification.
var _ sitemeta.CatalogService = (*CatalogService)(nil)

// CatalogService implements sitemeta.CatalogService on top of the content
// database. Entities come back in their stored positions, so a catalog
// survives an import/load round trip in the same order.
type CatalogService struct {
	db *DB
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(db *DB) *CatalogService {
	return &CatalogService{db: db}
}

// LoadCatalog implements sitemeta.CatalogService.
func (s *CatalogService) LoadCatalog(ctx context.Context) (*sitemeta.Catalog, error) {
	categories, err := s.loadCategories(ctx)
	if err != nil {
		return nil, err
	}
	tools, err := s.loadTools(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.loadPosts(ctx)
	if err != nil {
		return nil, err
	}

	return sitemeta.NewCatalog(tools, categories, posts)
}

func (s *CatalogService) loadCategories(ctx context.Context) ([]*sitemeta.ToolCategory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description
		FROM categories
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*sitemeta.ToolCategory
	byID := make(map[string]*sitemeta.ToolCategory)
	for rows.Next() {
		var cat sitemeta.ToolCategory
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
			return nil, err
		}
		categories = append(categories, &cat)
		byID[cat.ID] = &cat
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadKeywords(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadMemberLists(ctx, byID); err != nil {
		return nil, err
	}
	if err := s.loadFAQs(ctx, byID); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *CatalogService) loadKeywords(ctx context.Context, byID map[string]*sitemeta.ToolCategory) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, keyword
		FROM category_keywords
		ORDER BY category_id ASC, position ASC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var categoryID, keyword string
		if err := rows.Scan(&categoryID, &keyword); err != nil {
			return err
		}
		if cat, ok := byID[categoryID]; ok {
			cat.Keywords = append(cat.Keywords, keyword)
		}
	}
	return rows.Err()
}

func (s *CatalogService) loadMemberLists(ctx context.Context, byID map[string]*sitemeta.ToolCategory) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, href
		FROM category_tools
		ORDER BY category_id ASC, position ASC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var categoryID, href string
		if err := rows.Scan(&categoryID, &href); err != nil {
			return err
		}
		if cat, ok := byID[categoryID]; ok {
			cat.Tools = append(cat.Tools, href)
		}
	}
	return rows.Err()
}

func (s *CatalogService) loadFAQs(ctx context.Context, byID map[string]*sitemeta.ToolCategory) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, question, answer
		FROM faqs
		ORDER BY category_id ASC, position ASC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var categoryID string
		var faq sitemeta.FAQ
		if err := rows.Scan(&categoryID, &faq.Question, &faq.Answer); err != nil {
			return err
		}
		if cat, ok := byID[categoryID]; ok {
			cat.FAQs = append(cat.FAQs, faq)
		}
	}
	return rows.Err()
}

func (s *CatalogService) loadTools(ctx context.Context) ([]*sitemeta.Tool, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT href, title, description, category_id, icon, color, featured
		FROM tools
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []*sitemeta.Tool
	byHref := make(map[string]*sitemeta.Tool)
	for rows.Next() {
		var tool sitemeta.Tool
		if err := rows.Scan(&tool.Href, &tool.Title, &tool.Description, &tool.Category,
			&tool.Icon, &tool.Color, &tool.Featured); err != nil {
			return nil, err
		}
		tools = append(tools, &tool)
		byHref[tool.Href] = &tool
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadSteps(ctx, byHref); err != nil {
		return nil, err
	}

	return tools, nil
}

func (s *CatalogService) loadSteps(ctx context.Context, byHref map[string]*sitemeta.Tool) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT tool_href, name, step_text
		FROM tool_steps
		ORDER BY tool_href ASC, position ASC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var href string
		var step sitemeta.ToolStep
		if err := rows.Scan(&href, &step.Name, &step.Text); err != nil {
			return err
		}
		if tool, ok := byHref[href]; ok {
			tool.Steps = append(tool.Steps, step)
		}
	}
	return rows.Err()
}

func (s *CatalogService) loadPosts(ctx context.Context) ([]*sitemeta.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, title, excerpt, date, author, category_id, content
		FROM posts
		ORDER BY date ASC, slug ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*sitemeta.BlogPost
	for rows.Next() {
		var post sitemeta.BlogPost
		var date string

		if err := rows.Scan(&post.Slug, &post.Title, &post.Excerpt, &date,
			&post.Author, &post.Category, &post.Content); err != nil {
			return nil, err
		}

		var parseErr error
		post.Date, parseErr = time.Parse(time.RFC3339, date)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse post date: %w", parseErr)
		}

		posts = append(posts, &post)
	}

	return posts, rows.Err()
}
