// Command semcat-dict inspects a parsed Harvard Inquirer dictionary:
// category list, entry count, single-word lookups, or a full dump.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/cognicore/semcat/pkg/semcat/inquirer"
)

func main() {
	var (
		dictPath = flag.String("dict", "", "Harvard Inquirer CSV file (required)")
		word     = flag.String("word", "", "Look up a single word")
		dump     = flag.Bool("dump", false, "Print every entry")
	)
	flag.Parse()

	if *dictPath == "" {
		log.Fatal("--dict required")
	}

	dict, err := inquirer.Load(*dictPath)
	if err != nil {
		log.Fatalf("load dictionary: %v", err)
	}

	categories := dict.Categories()
	fmt.Printf("%d categories, %d entries\n", len(categories), dict.Len())
	fmt.Printf("categories: %s\n", strings.Join(categories, ", "))

	if *word != "" {
		cats, ok := dict.Lookup(*word)
		if !ok {
			fmt.Printf("%s: not in dictionary\n", *word)
			return
		}
		fmt.Printf("%s : [%s]\n", strings.ToLower(*word), strings.Join(cats, ", "))
		return
	}

	if *dump {
		words := dict.Headwords()
		sort.Strings(words)
		for _, w := range words {
			cats, _ := dict.Lookup(w)
			fmt.Printf("%s : [%s]\n", w, strings.Join(cats, ", "))
		}
	}
}
