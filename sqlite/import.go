package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/sitemeta/sitemeta"
)

// Importer mirrors a loaded catalog into the content database. Each run
// replaces the previous contents wholesale, so the database always reflects
// exactly one catalog.
type Importer struct {
	db *DB
}

// NewImporter creates a new Importer.
func NewImporter(db *DB) *Importer {
	return &Importer{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// Import replaces the database contents with the given catalog inside a
// single transaction.
func (im *Importer) Import(ctx context.Context, catalog *sitemeta.Catalog) error {
	if catalog == nil {
		return sitemeta.Errorf(sitemeta.EINVALID, "catalog required")
	}

	tx, err := im.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Tools go first so the category delete does not trip their foreign
	// key. Child tables cascade from their parents.
	for _, stmt := range []string{
		"DELETE FROM tools",
		"DELETE FROM categories",
		"DELETE FROM posts",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	for i, cat := range catalog.Categories() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, description, position)
			VALUES (?, ?, ?, ?)
		`, cat.ID, cat.Name, cat.Description, i); err != nil {
			return err
		}
		for j, keyword := range cat.Keywords {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO category_keywords (category_id, keyword, position)
				VALUES (?, ?, ?)
			`, cat.ID, keyword, j); err != nil {
				return err
			}
		}
		for j, href := range cat.Tools {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO category_tools (category_id, href, position)
				VALUES (?, ?, ?)
			`, cat.ID, href, j); err != nil {
				return err
			}
		}
		for j, faq := range cat.FAQs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO faqs (category_id, question, answer, position)
				VALUES (?, ?, ?, ?)
			`, cat.ID, faq.Question, faq.Answer, j); err != nil {
				return err
			}
		}
	}

	for i, tool := range catalog.Tools() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO tools (href, title, description, category_id, icon, color, featured, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, tool.Href, tool.Title, tool.Description, tool.Category,
			tool.Icon, tool.Color, tool.Featured, i); err != nil {
			return err
		}
		for j, step := range tool.Steps {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO tool_steps (tool_href, name, step_text, position)
				VALUES (?, ?, ?, ?)
			`, tool.Href, step.Name, step.Text, j); err != nil {
				return err
			}
		}
	}

	importedAt := time.Now().UTC().Format(time.RFC3339)
	for _, post := range catalog.Posts() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO posts (slug, title, excerpt, date, author, category_id, content, content_hash, imported_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, post.Slug, post.Title, post.Excerpt, post.Date.UTC().Format(time.RFC3339),
			post.Author, post.Category, post.Content, hashContent(post.Content), importedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
