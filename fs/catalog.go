package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sitemeta/sitemeta"
	"gopkg.in/yaml.v3"
)

// Catalog source layout below the loader's directory.
const (
	ToolsFile      = "tools.yaml"
	CategoriesFile = "categories.yaml"
	PostsDir       = "posts"
)

// Ensure CatalogService implements sitemeta.CatalogService at compile time.
var _ sitemeta.CatalogService = (*CatalogService)(nil)

// CatalogService loads the catalog from a content directory: tools.yaml,
// categories.yaml, and one markdown file with YAML front matter per blog
// post under posts/.
type CatalogService struct {
	dir string
}

// NewCatalogService creates a loader reading from dir.
func NewCatalogService(dir string) *CatalogService {
	return &CatalogService{dir: dir}
}

// LoadCatalog implements sitemeta.CatalogService. The returned catalog is
// validated and frozen; any invariant violation fails the load.
func (s *CatalogService) LoadCatalog(ctx context.Context) (*sitemeta.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tools, err := s.loadTools()
	if err != nil {
		return nil, err
	}
	categories, err := s.loadCategories()
	if err != nil {
		return nil, err
	}
	posts, err := s.loadPosts()
	if err != nil {
		return nil, err
	}

	return sitemeta.NewCatalog(tools, categories, posts)
}

type toolFile struct {
	Title       string         `yaml:"title"`
	Href        string         `yaml:"href"`
	Description string         `yaml:"description"`
	Category    string         `yaml:"category"`
	Icon        string         `yaml:"icon"`
	Color       string         `yaml:"color"`
	Featured    bool           `yaml:"featured"`
	Steps       []toolStepFile `yaml:"steps"`
}

type toolStepFile struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

func (s *CatalogService) loadTools() ([]*sitemeta.Tool, error) {
	path := filepath.Join(s.dir, ToolsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitemeta.Errorf(sitemeta.ENOTFOUND, "catalog file %q not found", path)
		}
		return nil, err
	}

	var files []toolFile
	if err := yaml.Unmarshal(data, &files); err != nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "parse %s: %s", path, err)
	}

	tools := make([]*sitemeta.Tool, 0, len(files))
	for _, f := range files {
		tool := &sitemeta.Tool{
			Title:       strings.TrimSpace(f.Title),
			Href:        strings.TrimSpace(f.Href),
			Description: strings.TrimSpace(f.Description),
			Category:    strings.TrimSpace(f.Category),
			Icon:        strings.TrimSpace(f.Icon),
			Color:       strings.TrimSpace(f.Color),
			Featured:    f.Featured,
		}
		for _, step := range f.Steps {
			tool.Steps = append(tool.Steps, sitemeta.ToolStep{
				Name: strings.TrimSpace(step.Name),
				Text: strings.TrimSpace(step.Text),
			})
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

type categoryFile struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Keywords    []string  `yaml:"keywords"`
	Tools       []string  `yaml:"tools"`
	FAQs        []faqFile `yaml:"faqs"`
}

type faqFile struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

func (s *CatalogService) loadCategories() ([]*sitemeta.ToolCategory, error) {
	path := filepath.Join(s.dir, CategoriesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitemeta.Errorf(sitemeta.ENOTFOUND, "catalog file %q not found", path)
		}
		return nil, err
	}

	var files []categoryFile
	if err := yaml.Unmarshal(data, &files); err != nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "parse %s: %s", path, err)
	}

	categories := make([]*sitemeta.ToolCategory, 0, len(files))
	for _, f := range files {
		category := &sitemeta.ToolCategory{
			ID:          strings.TrimSpace(f.ID),
			Name:        strings.TrimSpace(f.Name),
			Description: strings.TrimSpace(f.Description),
			Keywords:    f.Keywords,
			Tools:       f.Tools,
		}
		for _, faq := range f.FAQs {
			category.FAQs = append(category.FAQs, sitemeta.FAQ{
				Question: strings.TrimSpace(faq.Question),
				Answer:   strings.TrimSpace(faq.Answer),
			})
		}
		categories = append(categories, category)
	}
	return categories, nil
}

type postFrontMatter struct {
	Title    string `yaml:"title"`
	Slug     string `yaml:"slug"`
	Excerpt  string `yaml:"excerpt"`
	Date     string `yaml:"date"`
	Author   string `yaml:"author"`
	Category string `yaml:"category"`
}

// loadPosts reads posts/*.md in lexical order. A missing posts directory
// means the site publishes no blog.
func (s *CatalogService) loadPosts() ([]*sitemeta.BlogPost, error) {
	dir := filepath.Join(s.dir, PostsDir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}

	posts := make([]*sitemeta.BlogPost, 0, len(paths))
	for _, path := range paths {
		post, err := readPost(path)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func readPost(path string) (*sitemeta.BlogPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	front, body := splitFrontMatter(string(data))
	if strings.TrimSpace(front) == "" {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "post %s has no front matter", path)
	}

	var fm postFrontMatter
	if err := yaml.Unmarshal([]byte(front), &fm); err != nil {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "parse front matter of %s: %s", path, err)
	}

	slug := strings.TrimSpace(fm.Slug)
	if slug == "" {
		slug = sitemeta.Slugify(strings.TrimSuffix(filepath.Base(path), ".md"))
	}

	date, ok := parseDate(fm.Date)
	if !ok {
		return nil, sitemeta.Errorf(sitemeta.EINVALID, "post %s has unrecognized date %q", path, fm.Date)
	}

	return &sitemeta.BlogPost{
		Title:    strings.TrimSpace(fm.Title),
		Slug:     slug,
		Excerpt:  strings.TrimSpace(fm.Excerpt),
		Date:     date,
		Author:   strings.TrimSpace(fm.Author),
		Category: strings.TrimSpace(fm.Category),
		Content:  body,
	}, nil
}

// splitFrontMatter separates a leading YAML front matter block, delimited
// by "---" lines, from the markdown body.
func splitFrontMatter(input string) (front, body string) {
	input = strings.TrimPrefix(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			front = strings.Join(lines[1:i], "\n")
			body = strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n\r")
			return front, body
		}
	}
	return "", input
}

func parseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
