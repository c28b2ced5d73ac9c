// Package goldmark derives plain-text summaries from markdown content.
package goldmark

import (
	"bytes"
	"html"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sitemeta/sitemeta"
	"github.com/yuin/goldmark"
)

var _ sitemeta.Summarizer = (*Summarizer)(nil)

// Summarizer extracts the lead paragraph of a markdown document as plain
// text. It is safe for concurrent use.
type Summarizer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewSummarizer returns a Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{
		md:     goldmark.New(),
		policy: bluemonday.StrictPolicy(),
	}
}

// Summarize implements sitemeta.Summarizer. The first non-empty paragraph
// of the rendered document becomes the summary; documents without a
// paragraph fall back to their full text. A non-positive limit means no
// clipping.
func (s *Summarizer) Summarize(markdown string, limit int) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", sitemeta.Errorf(sitemeta.EINTERNAL, "render markdown: %s", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return "", sitemeta.Errorf(sitemeta.EINTERNAL, "parse rendered markdown: %s", err)
	}

	var lead string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}
		lead = text
		return false
	})
	if lead == "" {
		lead = strings.TrimSpace(doc.Text())
	}

	// Strip any markup that survived rendering, then restore entities.
	lead = html.UnescapeString(s.policy.Sanitize(lead))
	lead = strings.Join(strings.Fields(lead), " ")

	return clipWords(lead, limit), nil
}

// clipWords shortens text to at most limit runes, cutting at a word
// boundary and appending an ellipsis.
func clipWords(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}

	cut := limit - 1
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = limit - 1
	}
	return strings.TrimRight(string(runes[:cut]), " \t,.;:") + "…"
}
