// Package semcat wires the categorization pipeline together: corpus
// lines are lemmatized, counted into a frequency list, and joined
// against the Harvard Inquirer dictionary.
package semcat

import (
	"bufio"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/semcat/pkg/semcat/categorize"
	"github.com/cognicore/semcat/pkg/semcat/freq"
	"github.com/cognicore/semcat/pkg/semcat/inquirer"
)

// Lemmatizer is the contract for the external text-analysis service:
// one line of text in, the ordered lemma sequence out. Tokens that
// cannot be resolved to a lemma are omitted from the sequence; an
// error aborts the run. Implementations must be safe for concurrent
// use when the session runs with more than one worker.
type Lemmatizer interface {
	Lemmatize(line string) ([]string, error)
}

// Options configures a Session.
type Options struct {
	Dictionary *inquirer.Dictionary
	Lemmatizer Lemmatizer
	// Workers is the number of concurrent tokenization workers.
	// Values below 1 mean sequential processing. Each worker keeps
	// its own partial frequency list; the partials are merged after
	// all workers finish.
	Workers int
}

// Session runs categorization over corpora with a fixed dictionary
// and lemmatizer.
type Session struct {
	dict       *inquirer.Dictionary
	lemmatizer Lemmatizer
	workers    int

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a Session.
func New(opts Options) (*Session, error) {
	if opts.Dictionary == nil {
		return nil, errors.New("semcat: dictionary is required")
	}
	if opts.Lemmatizer == nil {
		return nil, errors.New("semcat: lemmatizer is required")
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Session{
		dict:       opts.Dictionary,
		lemmatizer: opts.Lemmatizer,
		workers:    workers,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Run is the outcome of one corpus categorization.
type Run struct {
	ID       string
	Freq     *freq.List
	Result   *categorize.Result
	Started  time.Time
	Duration time.Duration
}

// Categorize consumes the corpus line-by-line, builds the frequency
// list, and aggregates it against the dictionary. A lemmatizer error
// aborts the run; there is no retry or partial-line salvage.
func (s *Session) Categorize(ctx context.Context, input io.Reader) (*Run, error) {
	started := time.Now()

	var list *freq.List
	var err error
	if s.workers > 1 {
		list, err = s.buildParallel(ctx, input)
	} else {
		list, err = s.buildSequential(ctx, input)
	}
	if err != nil {
		return nil, err
	}

	return &Run{
		ID:       s.newRunID(started),
		Freq:     list,
		Result:   categorize.Aggregate(list, s.dict),
		Started:  started,
		Duration: time.Since(started),
	}, nil
}

func (s *Session) buildSequential(ctx context.Context, input io.Reader) (*freq.List, error) {
	builder := freq.NewBuilder()
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lemmas, err := s.lemmatizer.Lemmatize(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("lemmatize line %d: %w", line, err)
		}
		builder.AddAll(lemmas)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return builder.List(), nil
}

// buildParallel fans corpus lines out to workers. Each worker owns a
// private frequency builder; the finalized partial lists are summed
// with freq.Merge so no counter is ever shared between goroutines.
func (s *Session) buildParallel(ctx context.Context, input io.Reader) (*freq.List, error) {
	lines := make(chan string)
	partials := make([]*freq.List, s.workers)
	errs := make([]error, s.workers)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			builder := freq.NewBuilder()
			for line := range lines {
				if errs[i] != nil {
					continue // drain after failure
				}
				lemmas, err := s.lemmatizer.Lemmatize(line)
				if err != nil {
					errs[i] = fmt.Errorf("lemmatize: %w", err)
					continue
				}
				builder.AddAll(lemmas)
			}
			partials[i] = builder.List()
		}(i)
	}

	var scanErr error
	scanner := bufio.NewScanner(input)
scan:
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			scanErr = ctx.Err()
			break scan
		}
	}
	if scanErr == nil {
		if err := scanner.Err(); err != nil {
			scanErr = fmt.Errorf("read corpus: %w", err)
		}
	}
	close(lines)
	wg.Wait()

	if scanErr != nil {
		return nil, scanErr
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return freq.Merge(partials...), nil
}

func (s *Session) newRunID(at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), s.entropy).String()
}
