// Package nlp provides the text-analysis side of the pipeline: the
// lemmatizer contract the categorizer core depends on, and a built-in
// English implementation.
//
// The contract is deliberately small: given one line of text, return
// the ordered sequence of lemmas. Tokens that cannot be resolved to a
// lemma (numbers, bare punctuation) are omitted from the sequence, not
// substituted.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Options configures the built-in English lemmatizer.
type Options struct {
	// StripStopwords drops stopwords from the lemma stream. Off by
	// default: filtering changes token totals and percentages.
	StripStopwords bool
	// Language is the ISO 639-1 code used for stopword filtering.
	// Defaults to "en".
	Language string
}

// English lemmatizes English text: Punkt sentence segmentation, word
// scanning, Unicode lowercasing, then an irregular-form table plus
// suffix rules. Safe for concurrent use once constructed.
type English struct {
	segmenter  *sentences.DefaultSentenceTokenizer
	stripStops bool
	lang       string
}

// NewEnglish builds the English lemmatizer.
func NewEnglish(opts Options) (*English, error) {
	seg, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("init sentence tokenizer: %w", err)
	}

	lang := opts.Language
	if lang == "" {
		lang = "en"
	}
	return &English{
		segmenter:  seg,
		stripStops: opts.StripStopwords,
		lang:       lang,
	}, nil
}

// Lemmatize returns the ordered lemma sequence for one line of text.
func (e *English) Lemmatize(line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	lower := cases.Lower(language.English)
	var lemmas []string
	for _, sentence := range e.segmenter.Tokenize(line) {
		for _, word := range scanWords(sentence.Text) {
			word = strings.Trim(lower.String(word), "'-")
			if word == "" {
				continue
			}
			if e.stripStops && isStopword(word, e.lang) {
				continue
			}
			if lemma := lemmaOf(word); lemma != "" {
				lemmas = append(lemmas, lemma)
			}
		}
	}
	return lemmas, nil
}

// scanWords splits a sentence into word candidates: maximal runs of
// letters and digits with internal apostrophes or hyphens.
func scanWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' {
			current.WriteRune(r)
		} else if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	return words
}

func isStopword(word, lang string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, lang, false)) == ""
}
