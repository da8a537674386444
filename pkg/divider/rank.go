package divider

import (
	"cmp"
	"slices"

	"github.com/ja7ad/divider/pkg/catalog"
)

// FindChoices returns every ordered pair from set × set that meets the goals,
// sorted ascending by Deviance. R1 and R2 both range over the whole set in
// ascending order, R1 outermost; equal deviances keep that order.
//
// The result is never nil.
func FindChoices(g Goals, set catalog.Set) []Candidate {
	values := set.Values()
	choices := make([]Candidate, 0)
	for _, r1 := range values {
		for _, r2 := range values {
			if MeetsSpecs(g, r1, r2) {
				choices = append(choices, Build(g, r1, r2))
			}
		}
	}

	slices.SortStableFunc(choices, func(a, b Candidate) int {
		return cmp.Compare(a.Deviance, b.Deviance)
	})
	return choices
}

// Top returns the first n choices, or all of them when fewer exist.
func Top(choices []Candidate, n int) []Candidate {
	if n < 0 {
		n = 0
	}
	return slices.Clone(choices[:min(n, len(choices))])
}
