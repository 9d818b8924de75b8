package nlp

import (
	"reflect"
	"testing"
)

func newTestLemmatizer(t *testing.T, opts Options) *English {
	t.Helper()
	e, err := NewEnglish(opts)
	if err != nil {
		t.Fatalf("NewEnglish: %v", err)
	}
	return e
}

func TestLemmatizeBasic(t *testing.T) {
	e := newTestLemmatizer(t, Options{})

	got, err := e.Lemmatize("I am happy.")
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if want := []string{"i", "be", "happy"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lemmatize = %v, want %v", got, want)
	}
}

func TestLemmatizeInflections(t *testing.T) {
	e := newTestLemmatizer(t, Options{})

	tests := []struct {
		line string
		want []string
	}{
		{"The cats were running!", []string{"the", "cat", "be", "run"}},
		{"She studies hard.", []string{"she", "study", "hard"}},
		{"It jumped twice.", []string{"it", "jump", "twice"}},
		{"Three classes passed.", []string{"three", "class", "pass"}},
	}

	for _, tt := range tests {
		got, err := e.Lemmatize(tt.line)
		if err != nil {
			t.Fatalf("Lemmatize(%q): %v", tt.line, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lemmatize(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLemmatizeDropsUnresolvableTokens(t *testing.T) {
	e := newTestLemmatizer(t, Options{})

	// Numbers and bare punctuation yield no lemma and are omitted,
	// not substituted.
	got, err := e.Lemmatize("version 42 -- printed 2019!")
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if want := []string{"version", "print"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lemmatize = %v, want %v", got, want)
	}
}

func TestLemmatizeEmptyLine(t *testing.T) {
	e := newTestLemmatizer(t, Options{})

	for _, line := range []string{"", "   ", "\t"} {
		got, err := e.Lemmatize(line)
		if err != nil {
			t.Fatalf("Lemmatize(%q): %v", line, err)
		}
		if len(got) != 0 {
			t.Errorf("Lemmatize(%q) = %v, want empty", line, got)
		}
	}
}

func TestLemmatizeMultiSentenceLine(t *testing.T) {
	e := newTestLemmatizer(t, Options{})

	got, err := e.Lemmatize("It works. It helps.")
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	if want := []string{"it", "work", "it", "help"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lemmatize = %v, want %v", got, want)
	}
}

func TestLemmatizeStripStopwords(t *testing.T) {
	e := newTestLemmatizer(t, Options{StripStopwords: true})

	got, err := e.Lemmatize("the happy child")
	if err != nil {
		t.Fatalf("Lemmatize: %v", err)
	}
	for _, lemma := range got {
		if lemma == "the" {
			t.Errorf("stopword 'the' survived filtering: %v", got)
		}
	}
	if !contains(got, "happy") {
		t.Errorf("content word 'happy' missing: %v", got)
	}
}

func TestLemmaOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"am", "be"},
		{"children", "child"},
		{"running", "run"},
		{"studies", "study"},
		{"falling", "fall"},
		{"missed", "miss"},
		{"this", "this"},
		{"bus", "bus"},
		{"cats", "cat"},
		{"happy", "happy"},
		{"42", ""},
		{"--", ""},
	}

	for _, tt := range tests {
		if got := lemmaOf(tt.in); got != tt.want {
			t.Errorf("lemmaOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func contains(slice []string, val string) bool {
	for _, ele := range slice {
		if ele == val {
			return true
		}
	}
	return false
}
