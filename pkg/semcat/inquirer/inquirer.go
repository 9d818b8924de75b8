// Package inquirer parses the Harvard General Inquirer category table
// into an immutable word → category-set dictionary.
//
// The raw table is a CSV spreadsheet: the first row names the columns
// (an "Entry" and a "Source" column, the category columns, and two
// trailing non-category columns, "Other tags" and "Defined"), the
// second row holds per-category occurrence totals, and every further
// row is a dictionary entry. A headword may appear several times with
// a numbered sense suffix ("ABOUT#1", "ABOUT#2"); senses are merged by
// set union, not disambiguated.
package inquirer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cognicore/semcat/pkg/semcat/internalerr"
)

// reservedLeading is the number of leading non-category columns
// ("Entry" and "Source"); reservedTrailing the number of trailing ones
// ("Other tags" and "Defined").
const (
	reservedLeading  = 2
	reservedTrailing = 2
)

// Dictionary is the loaded word → category-set mapping together with
// the ordered category list. It is read-only after construction.
type Dictionary struct {
	categories []string
	totals     []int
	catIndex   map[string]int
	entries    map[string][]string
}

// Load reads and parses the dictionary CSV at path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	return d, nil
}

// Parse reads the dictionary table from r.
//
// Rows with fewer columns than the category span fail the parse: a
// partially built dictionary is never returned. Duplicate headwords
// merge by set union regardless of where they appear in the file, so
// the input does not have to be sorted.
func Parse(r io.Reader) (*Dictionary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // span is validated per row below

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header row: %w", err)
	}
	if len(header) < reservedLeading+reservedTrailing+1 {
		return nil, fmt.Errorf("header has %d columns, need at least %d: %w",
			len(header), reservedLeading+reservedTrailing+1, internalerr.ErrMalformedDictionary)
	}

	categories := make([]string, 0, len(header)-reservedLeading-reservedTrailing)
	catIndex := make(map[string]int)
	for i, name := range header[reservedLeading : len(header)-reservedTrailing] {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("empty category name in header column %d: %w",
				reservedLeading+i, internalerr.ErrMalformedDictionary)
		}
		categories = append(categories, name)
		catIndex[name] = i
	}

	totals, err := parseTotals(cr, len(categories))
	if err != nil {
		return nil, err
	}

	d := &Dictionary{
		categories: categories,
		totals:     totals,
		catIndex:   catIndex,
		entries:    make(map[string][]string),
	}

	span := reservedLeading + len(categories)
	for row := 3; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		if len(rec) < span {
			return nil, fmt.Errorf("row %d has %d columns, category span requires %d: %w",
				row, len(rec), span, internalerr.ErrMalformedDictionary)
		}

		head := StripSense(strings.ToLower(strings.TrimSpace(rec[0])))
		if head == "" {
			return nil, fmt.Errorf("row %d has an empty headword: %w",
				row, internalerr.ErrMalformedDictionary)
		}

		// Only the category-column span counts; anything beyond it
		// ("Other tags", "Defined", stray cells) is discarded.
		var cats []string
		for _, cell := range rec[reservedLeading:span] {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cats = append(cats, cell)
			}
		}

		d.entries[head] = union(d.entries[head], cats)
	}

	return d, nil
}

// parseTotals consumes the second row: per-category occurrence counts,
// retained for future rarity weighting.
func parseTotals(cr *csv.Reader, n int) ([]int, error) {
	rec, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read category totals row: %w", err)
	}
	if len(rec) < reservedLeading+n {
		return nil, fmt.Errorf("totals row has %d columns, need %d: %w",
			len(rec), reservedLeading+n, internalerr.ErrMalformedDictionary)
	}

	totals := make([]int, n)
	for i, cell := range rec[reservedLeading : reservedLeading+n] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		v, err := strconv.Atoi(cell)
		if err != nil {
			return nil, fmt.Errorf("totals row column %d: %q is not a count: %w",
				reservedLeading+i, cell, internalerr.ErrMalformedDictionary)
		}
		totals[i] = v
	}
	return totals, nil
}

// union appends the members of add that existing does not already
// contain, preserving first-seen order.
func union(existing, add []string) []string {
	for _, c := range add {
		if !contains(existing, c) {
			existing = append(existing, c)
		}
	}
	return existing
}

func contains(slice []string, val string) bool {
	for _, ele := range slice {
		if ele == val {
			return true
		}
	}
	return false
}

// Categories returns the ordered category list.
func (d *Dictionary) Categories() []string {
	out := make([]string, len(d.categories))
	copy(out, d.categories)
	return out
}

// CategoryTotals returns the per-category occurrence counts from the
// second table row, aligned with Categories.
func (d *Dictionary) CategoryTotals() []int {
	out := make([]int, len(d.totals))
	copy(out, d.totals)
	return out
}

// Lookup returns the category set for word (lowercased before lookup)
// and whether the word is in the dictionary. A present word may carry
// an empty category set.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	cats, ok := d.entries[strings.ToLower(word)]
	if !ok {
		return nil, false
	}
	out := make([]string, len(cats))
	copy(out, cats)
	return out, true
}

// IsCategory reports whether name is one of the declared categories.
func (d *Dictionary) IsCategory(name string) bool {
	_, ok := d.catIndex[name]
	return ok
}

// Headwords returns all distinct headwords in unspecified order.
func (d *Dictionary) Headwords() []string {
	out := make([]string, 0, len(d.entries))
	for head := range d.entries {
		out = append(out, head)
	}
	return out
}

// Len returns the number of distinct headwords.
func (d *Dictionary) Len() int {
	return len(d.entries)
}
