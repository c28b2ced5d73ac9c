package mock

import (
	"github.com/sitemeta/sitemeta"
)

var _ sitemeta.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of sitemeta.Summarizer.
type Summarizer struct {
	SummarizeFn func(markdown string, limit int) (string, error)
}

func (s *Summarizer) Summarize(markdown string, limit int) (string, error) {
	return s.SummarizeFn(markdown, limit)
}
