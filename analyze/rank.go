package analyze

import (
	"cmp"
	"slices"

	"github.com/fwojciec/blogscan"
)

// MinScore is the lowest score a candidate needs to be considered.
const MinScore = 3

// Candidate is a discovered element with its score.
type Candidate struct {
	Element blogscan.Element
	Score   int
}

// Rank scores elements, drops those below MinScore and orders the rest by
// descending score. Equal scores keep their discovery order.
func Rank(elems []blogscan.Element) []Candidate {
	var candidates []Candidate
	for _, el := range elems {
		if score := Score(el); score >= MinScore {
			candidates = append(candidates, Candidate{Element: el, Score: score})
		}
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return candidates
}
