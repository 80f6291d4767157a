// Package analyze implements the heuristic article extraction engine.
//
// The engine runs five stages over a settled DOM snapshot, strictly in
// order and in a single pass:
//
//  1. Discover gathers candidate elements from specific selectors, falling
//     back to generic ones when nothing specific matches.
//  2. Hidden candidates are dropped during discovery.
//  3. Score weighs each candidate on fixed structural and textual signals.
//  4. Rank drops weak candidates and orders the rest by score.
//  5. Collect extracts fields from ranked candidates, rejects navigational
//     and duplicate entries, and stops after blogscan.MaxArticles.
package analyze

import "github.com/fwojciec/blogscan"

// Ensure Analyzer implements blogscan.Extractor at compile time.
var _ blogscan.Extractor = (*Analyzer)(nil)

// Analyzer extracts articles from blog homepages without site-specific
// configuration. Analyzer holds no state and is safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Extract returns at most blogscan.MaxArticles articles found in doc.
func (a *Analyzer) Extract(doc blogscan.Document) []blogscan.Article {
	return Collect(Rank(Discover(doc)))
}
