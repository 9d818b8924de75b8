// Package report renders categorization results into the two run
// reports: the per-word listing and the percentages/summary table.
package report

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/cognicore/semcat/pkg/semcat/categorize"
	"github.com/cognicore/semcat/pkg/semcat/internalerr"
)

// Share is one category's coverage of the corpus.
type Share struct {
	Category string
	Percent  float64
	Tokens   int
}

// Shares computes per-category coverage in dictionary order:
// 100 * categoryTokens / totalTokens. Because multi-category lemmas
// count toward every category they carry, the percentages are
// non-additive and will not sum to 100.
//
// A zero total token count fails with ErrEmptyCorpus instead of
// emitting NaN or Inf values.
func Shares(res *categorize.Result) ([]Share, error) {
	if res.TotalTokens == 0 {
		return nil, fmt.Errorf("cannot compute category percentages: %w", internalerr.ErrEmptyCorpus)
	}

	shares := make([]Share, 0, len(res.Categories))
	for _, cat := range res.Categories {
		n := res.Frequencies[cat]
		shares = append(shares, Share{
			Category: cat,
			Percent:  100 * float64(n) / float64(res.TotalTokens),
			Tokens:   n,
		})
	}
	return shares, nil
}

// Meta identifies a run in report headers.
type Meta struct {
	Label    string
	RunID    string
	Started  time.Time
	Duration time.Duration
}

// WriteByWord writes the category-by-word report: one line per
// distinct lemma, sorted.
func WriteByWord(w io.Writer, res *categorize.Result) error {
	bw := bufio.NewWriter(w)
	for _, rec := range res.Records {
		if _, err := fmt.Fprintln(bw, rec.String()); err != nil {
			return fmt.Errorf("write category-by-word report: %w", err)
		}
	}
	return bw.Flush()
}

// WriteSummary writes the percentages/summary report: a header block
// with token and lemma totals, then one "category, percentage, token
// count" row per category in dictionary order.
func WriteSummary(w io.Writer, res *categorize.Result, meta Meta) error {
	shares, err := Shares(res)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if meta.Label != "" {
		fmt.Fprintf(bw, "run: %s", meta.Label)
		if meta.RunID != "" {
			fmt.Fprintf(bw, " (%s)", meta.RunID)
		}
		fmt.Fprintln(bw)
	}
	if !meta.Started.IsZero() {
		fmt.Fprintf(bw, "started: %s, took: %s\n",
			meta.Started.Format(time.RFC3339), meta.Duration.Round(time.Millisecond))
	}

	fmt.Fprintf(bw, "total tokens: %d\n", res.TotalTokens)
	fmt.Fprintf(bw, "uncategorizable tokens: %d\n", res.UncategorizableTokens)
	fmt.Fprintf(bw, "categorizable tokens: %d\n", res.CategorizableTokens())
	fmt.Fprintf(bw, "distinct lemmas: %d\n", res.DistinctLemmas)
	fmt.Fprintf(bw, "uncategorizable lemmas: %d\n", len(res.Uncategorizable))
	fmt.Fprintf(bw, "categorizable lemmas: %d\n", res.CategorizableLemmas())

	mean, sigma := coverageSpread(shares)
	fmt.Fprintf(bw, "mean category coverage: %.2f%% (stddev %.2f)\n", mean, sigma)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "category, percentage, token count")
	for _, s := range shares {
		fmt.Fprintf(bw, "%s, %.2f%%, %d\n", s.Category, s.Percent, s.Tokens)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write summary report: %w", err)
	}
	return nil
}

// coverageSpread returns the mean and standard deviation of the
// category percentages.
func coverageSpread(shares []Share) (mean, sigma float64) {
	if len(shares) == 0 {
		return 0, 0
	}
	percents := make([]float64, len(shares))
	for i, s := range shares {
		percents[i] = s.Percent
	}
	mean = stat.Mean(percents, nil)
	if len(percents) > 1 {
		sigma = stat.StdDev(percents, nil)
	}
	return mean, sigma
}

// Paths derives the two report file names from the run label.
func Paths(outDir, label string) (byWord, summary string) {
	byWord = filepath.Join(outDir, label+"_category_by_word.txt")
	summary = filepath.Join(outDir, label+"_percentages.txt")
	return byWord, summary
}
