// Package freq accumulates lemma occurrence counts for a corpus run.
package freq

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Builder incrementally counts lemma occurrences. It is not safe for
// concurrent use; parallel tokenization should give each worker its
// own Builder and combine the finalized lists with Merge.
type Builder struct {
	counts map[string]int
	total  int
	lower  cases.Caser
}

// NewBuilder creates an empty frequency builder.
func NewBuilder() *Builder {
	return &Builder{
		counts: make(map[string]int),
		lower:  cases.Lower(language.Und),
	}
}

// Add records one occurrence of lemma. The lemma is lowercased with
// Unicode case mapping, which is idempotent with any lowercasing the
// tokenizer already performed. Blank lemmas are ignored.
func (b *Builder) Add(lemma string) {
	lemma = b.lower.String(strings.TrimSpace(lemma))
	if lemma == "" {
		return
	}
	b.counts[lemma]++
	b.total++
}

// AddAll records one occurrence of every lemma in order.
func (b *Builder) AddAll(lemmas []string) {
	for _, lemma := range lemmas {
		b.Add(lemma)
	}
}

// List finalizes the builder into an immutable frequency list. The
// builder may keep accumulating afterwards; the returned list is a
// snapshot.
func (b *Builder) List() *List {
	counts := make(map[string]int, len(b.counts))
	for lemma, n := range b.counts {
		counts[lemma] = n
	}
	return &List{counts: counts, total: b.total}
}

// List is a finalized lemma → occurrence-count mapping plus the total
// token count (every tokenized occurrence, categorizable or not).
type List struct {
	counts map[string]int
	total  int
}

// Count returns the occurrence count for lemma, zero if absent.
func (l *List) Count(lemma string) int {
	return l.counts[lemma]
}

// Total returns the total token count.
func (l *List) Total() int {
	return l.total
}

// Distinct returns the number of distinct lemmas.
func (l *List) Distinct() int {
	return len(l.counts)
}

// Counts returns a copy of the lemma → count mapping.
func (l *List) Counts() map[string]int {
	out := make(map[string]int, len(l.counts))
	for lemma, n := range l.counts {
		out[lemma] = n
	}
	return out
}

// Merge sums any number of frequency lists into a new one. This is
// the combination step for per-worker partial lists when tokenization
// runs in parallel; counters are summed here instead of being shared
// across goroutines.
func Merge(lists ...*List) *List {
	merged := &List{counts: make(map[string]int)}
	for _, l := range lists {
		if l == nil {
			continue
		}
		for lemma, n := range l.counts {
			merged.counts[lemma] += n
		}
		merged.total += l.total
	}
	return merged
}
