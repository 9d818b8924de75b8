// Command semcat categorizes the words of a corpus file against the
// Harvard Inquirer dictionary and writes two reports: a per-word
// categorization listing and a percentages/summary table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/semcat/internal/nlp"
	"github.com/cognicore/semcat/pkg/semcat"
	"github.com/cognicore/semcat/pkg/semcat/config"
	"github.com/cognicore/semcat/pkg/semcat/inquirer"
	"github.com/cognicore/semcat/pkg/semcat/report"
)

func main() {
	var (
		configPath = flag.String("config", "", "Optional YAML config file")
		dictPath   = flag.String("dict", "", "Harvard Inquirer CSV file")
		inputPath  = flag.String("input", "", "Corpus file, one unit per line")
		outDir     = flag.String("out", "", "Output directory (default .)")
		label      = flag.String("label", "", "Run label used in report file names (default run)")
		workers    = flag.Int("workers", 0, "Tokenization workers (default 1)")
		stripStops = flag.Bool("strip-stopwords", false, "Drop stopwords before counting")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *dictPath != "" {
		cfg.Dictionary = *dictPath
	}
	if *inputPath != "" {
		cfg.Input = *inputPath
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *label != "" {
		cfg.RunLabel = *label
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *stripStops {
		cfg.Tokenizer.StripStopwords = true
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("configuration: %v", err)
	}

	dict, err := inquirer.Load(cfg.Dictionary)
	if err != nil {
		log.Fatalf("load dictionary: %v", err)
	}

	lemmatizer, err := nlp.NewEnglish(nlp.Options{
		StripStopwords: cfg.Tokenizer.StripStopwords,
		Language:       cfg.Tokenizer.Language,
	})
	if err != nil {
		log.Fatalf("init lemmatizer: %v", err)
	}

	session, err := semcat.New(semcat.Options{
		Dictionary: dict,
		Lemmatizer: lemmatizer,
		Workers:    cfg.Workers,
	})
	if err != nil {
		log.Fatalf("init session: %v", err)
	}

	corpus, err := os.Open(cfg.Input)
	if err != nil {
		log.Fatalf("open corpus: %v", err)
	}
	defer corpus.Close()

	run, err := session.Categorize(context.Background(), corpus)
	if err != nil {
		log.Fatalf("categorize: %v", err)
	}

	byWordPath, summaryPath := report.Paths(cfg.OutputDir, cfg.RunLabel)
	if err := writeReport(byWordPath, func(f *os.File) error {
		return report.WriteByWord(f, run.Result)
	}); err != nil {
		log.Fatalf("write %s: %v", byWordPath, err)
	}

	meta := report.Meta{
		Label:    cfg.RunLabel,
		RunID:    run.ID,
		Started:  run.Started,
		Duration: run.Duration,
	}
	if err := writeReport(summaryPath, func(f *os.File) error {
		return report.WriteSummary(f, run.Result, meta)
	}); err != nil {
		log.Fatalf("write %s: %v", summaryPath, err)
	}

	fmt.Printf("run %s: %d tokens, %d distinct lemmas, %d uncategorizable lemmas\n",
		run.ID, run.Result.TotalTokens, run.Result.DistinctLemmas, len(run.Result.Uncategorizable))
	fmt.Printf("reports: %s, %s\n", byWordPath, summaryPath)
}

func writeReport(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
