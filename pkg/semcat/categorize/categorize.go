// Package categorize joins a frequency list against the Inquirer
// dictionary to produce per-category token counts.
package categorize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/semcat/pkg/semcat/freq"
	"github.com/cognicore/semcat/pkg/semcat/inquirer"
)

// Record describes the categorization of one distinct lemma. Records
// are reporting output only; they carry no aggregation state.
type Record struct {
	Lemma       string
	Occurrences int
	Categories  []string
	Categorized bool
}

// String renders the record in the category-by-word report form.
func (r Record) String() string {
	if !r.Categorized {
		return fmt.Sprintf("%s cannot be categorized", r.Lemma)
	}
	return fmt.Sprintf("%s is categorized as: [%s]", r.Lemma, strings.Join(r.Categories, ", "))
}

// Result holds the aggregate of one categorization run.
//
// A lemma carrying N categories contributes its full occurrence count
// to each of the N category totals, so the totals are intentionally
// non-additive: summed across categories they can exceed the
// categorizable token count.
type Result struct {
	Categories            []string       // dictionary order
	Frequencies           map[string]int // category → token count
	Uncategorizable       []string       // distinct lemmas absent from the dictionary, sorted
	UncategorizableTokens int            // occurrence sum of the above
	TotalTokens           int
	DistinctLemmas        int
	Records               []Record // one per distinct lemma, sorted by lemma
}

// CategorizableTokens returns the token count covered by the dictionary.
func (r *Result) CategorizableTokens() int {
	return r.TotalTokens - r.UncategorizableTokens
}

// CategorizableLemmas returns the distinct-lemma count covered by the
// dictionary.
func (r *Result) CategorizableLemmas() int {
	return r.DistinctLemmas - len(r.Uncategorizable)
}

// Aggregate joins list against dict. It is a pure function of its
// inputs and its result does not depend on map iteration order.
//
// Categories attached to a dictionary entry that are not in the
// declared category list are re-checked here and skipped; the loader
// should never produce them, but a marker cell could carry a stray
// value.
func Aggregate(list *freq.List, dict *inquirer.Dictionary) *Result {
	res := &Result{
		Categories:     dict.Categories(),
		Frequencies:    make(map[string]int),
		TotalTokens:    list.Total(),
		DistinctLemmas: list.Distinct(),
	}
	for _, cat := range res.Categories {
		res.Frequencies[cat] = 0
	}

	for lemma, n := range list.Counts() {
		cats, ok := dict.Lookup(lemma)
		if !ok {
			res.Uncategorizable = append(res.Uncategorizable, lemma)
			res.UncategorizableTokens += n
			res.Records = append(res.Records, Record{
				Lemma:       lemma,
				Occurrences: n,
			})
			continue
		}

		for _, cat := range cats {
			if dict.IsCategory(cat) {
				res.Frequencies[cat] += n
			}
		}
		res.Records = append(res.Records, Record{
			Lemma:       lemma,
			Occurrences: n,
			Categories:  cats,
			Categorized: true,
		})
	}

	sort.Strings(res.Uncategorizable)
	sort.Slice(res.Records, func(i, j int) bool {
		return res.Records[i].Lemma < res.Records[j].Lemma
	})

	return res
}
