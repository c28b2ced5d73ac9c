package sitemeta

// Summarizer derives a plain-text summary from markdown content. It backs
// the description fallback for blog posts that ship without an excerpt.
type Summarizer interface {
	// Summarize returns the document's lead text with markup stripped,
	// clipped at a word boundary to at most limit runes. Empty input
	// yields an empty summary, not an error.
	Summarize(markdown string, limit int) (string, error)
}
