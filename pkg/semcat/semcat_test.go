package semcat

import (
	"context"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/cognicore/semcat/pkg/semcat/inquirer"
	"github.com/cognicore/semcat/pkg/semcat/report"
)

// stubLemmatizer returns canned lemma sequences per line.
type stubLemmatizer struct {
	lemmas map[string][]string
}

func (s *stubLemmatizer) Lemmatize(line string) ([]string, error) {
	return s.lemmas[line], nil
}

// failingLemmatizer fails on every line.
type failingLemmatizer struct{}

func (failingLemmatizer) Lemmatize(string) ([]string, error) {
	return nil, errors.New("service unavailable")
}

const scenarioTable = `Entry,Source,Positiv,Emot,Other tags,Defined
,,1045,311,,
HAPPY,H4Lvd,Positiv,,Modif,|
HAPPY#2,H4Lvd,,Emot,,|
`

func scenarioSession(t *testing.T, workers int) *Session {
	t.Helper()
	dict, err := inquirer.Parse(strings.NewReader(scenarioTable))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	stub := &stubLemmatizer{lemmas: map[string][]string{
		"I am happy":  {"i", "be", "happy"},
		"happy happy": {"happy", "happy"},
	}}
	session, err := New(Options{Dictionary: dict, Lemmatizer: stub, Workers: workers})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return session
}

const scenarioCorpus = "I am happy\nhappy happy\n"

func TestCategorizeEndToEnd(t *testing.T) {
	session := scenarioSession(t, 1)

	run, err := session.Categorize(context.Background(), strings.NewReader(scenarioCorpus))
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if run.ID == "" {
		t.Error("run ID is empty")
	}

	// Frequency list: {i:1, be:1, happy:3}, 5 tokens.
	if got := run.Freq.Counts(); !reflect.DeepEqual(got, map[string]int{"i": 1, "be": 1, "happy": 3}) {
		t.Errorf("Freq.Counts() = %v", got)
	}
	if run.Freq.Total() != 5 {
		t.Errorf("Freq.Total() = %d, want 5", run.Freq.Total())
	}

	// happy merged across both sense rows: Positiv and Emot each get
	// all three occurrences.
	res := run.Result
	if got := res.Frequencies["Positiv"]; got != 3 {
		t.Errorf("Frequencies[Positiv] = %d, want 3", got)
	}
	if got := res.Frequencies["Emot"]; got != 3 {
		t.Errorf("Frequencies[Emot] = %d, want 3", got)
	}
	if want := []string{"be", "i"}; !reflect.DeepEqual(res.Uncategorizable, want) {
		t.Errorf("Uncategorizable = %v, want %v", res.Uncategorizable, want)
	}
	if res.UncategorizableTokens != 2 {
		t.Errorf("UncategorizableTokens = %d, want 2", res.UncategorizableTokens)
	}

	shares, err := report.Shares(res)
	if err != nil {
		t.Fatalf("Shares: %v", err)
	}
	for _, s := range shares {
		if s.Category == "Positiv" && math.Abs(s.Percent-60.0) > 1e-9 {
			t.Errorf("Positiv percent = %v, want 60.0", s.Percent)
		}
	}
}

func TestCategorizeParallelMatchesSequential(t *testing.T) {
	seq, err := scenarioSession(t, 1).Categorize(context.Background(), strings.NewReader(scenarioCorpus))
	if err != nil {
		t.Fatalf("sequential Categorize: %v", err)
	}
	par, err := scenarioSession(t, 4).Categorize(context.Background(), strings.NewReader(scenarioCorpus))
	if err != nil {
		t.Fatalf("parallel Categorize: %v", err)
	}

	if !reflect.DeepEqual(seq.Freq.Counts(), par.Freq.Counts()) {
		t.Errorf("frequency lists differ: %v vs %v", seq.Freq.Counts(), par.Freq.Counts())
	}
	if !reflect.DeepEqual(seq.Result.Frequencies, par.Result.Frequencies) {
		t.Errorf("category frequencies differ: %v vs %v",
			seq.Result.Frequencies, par.Result.Frequencies)
	}
	if !reflect.DeepEqual(seq.Result.Records, par.Result.Records) {
		t.Errorf("records differ")
	}
}

func TestCategorizeLemmatizerFailureAborts(t *testing.T) {
	dict, err := inquirer.Parse(strings.NewReader(scenarioTable))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	session, err := New(Options{Dictionary: dict, Lemmatizer: failingLemmatizer{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := session.Categorize(context.Background(), strings.NewReader("some text\n")); err == nil {
		t.Fatal("Categorize succeeded despite lemmatizer failure")
	}
}

func TestCategorizeContextCancellation(t *testing.T) {
	session := scenarioSession(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := session.Categorize(ctx, strings.NewReader(scenarioCorpus)); !errors.Is(err, context.Canceled) {
		t.Errorf("Categorize with cancelled context: err = %v, want context.Canceled", err)
	}
}

func TestNewValidation(t *testing.T) {
	dict, _ := inquirer.Parse(strings.NewReader(scenarioTable))

	if _, err := New(Options{Lemmatizer: failingLemmatizer{}}); err == nil {
		t.Error("New without dictionary succeeded")
	}
	if _, err := New(Options{Dictionary: dict}); err == nil {
		t.Error("New without lemmatizer succeeded")
	}
}

func TestRunIDsUnique(t *testing.T) {
	session := scenarioSession(t, 1)

	seen := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		run, err := session.Categorize(context.Background(), strings.NewReader(scenarioCorpus))
		if err != nil {
			t.Fatalf("Categorize: %v", err)
		}
		if _, dup := seen[run.ID]; dup {
			t.Fatalf("duplicate run ID %s", run.ID)
		}
		seen[run.ID] = struct{}{}
	}
}
