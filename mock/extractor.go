package mock

import "github.com/fwojciec/blogscan"

var _ blogscan.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of blogscan.Extractor.
type Extractor struct {
	ExtractFn func(doc blogscan.Document) []blogscan.Article
}

func (e *Extractor) Extract(doc blogscan.Document) []blogscan.Article {
	return e.ExtractFn(doc)
}
