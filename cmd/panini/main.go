// Command panini is a small driver over the engine: join words through
// sandhi, scan meter, run the validator pipeline, or exercise the
// corpus store.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kittclouds/panini/internal/corpus"
	"github.com/kittclouds/panini/pkg/chandas"
	"github.com/kittclouds/panini/pkg/dhatu"
	"github.com/kittclouds/panini/pkg/sandhi"
	"github.com/kittclouds/panini/pkg/validator"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "sandhi":
		runSandhi(os.Args[2:])
	case "meter":
		runMeter(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "corpus":
		runCorpus()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  panini sandhi <left> <right>   join two words at the boundary
  panini meter <text>            syllable weights and meter
  panini validate <text>         full analysis pipeline
  panini corpus                  seed and query the record store`)
}

func runSandhi(args []string) {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	engine, err := sandhi.New()
	if err != nil {
		log.Fatalf("sandhi: %v", err)
	}
	r, err := engine.Apply(args[0], args[1])
	if err != nil {
		log.Fatalf("sandhi: %v", err)
	}
	fmt.Printf("%s + %s = %s\n", args[0], args[1], r.Merged)
	for _, step := range r.Trace {
		fmt.Printf("  [%s] %s -> %s (%s)\n", step.Rule, step.Before, step.After, step.Justification)
	}
}

func runMeter(args []string) {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	r := chandas.New().Analyze(strings.Join(args, " "))
	fmt.Printf("syllables: %d\npattern:   %s\nmeter:     %s\n",
		r.SyllableCount, r.Pattern, r.Meter)
}

func runValidate(args []string) {
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	v, err := validator.New()
	if err != nil {
		log.Fatalf("validate: %v", err)
	}
	r := v.Validate(strings.Join(args, " "))
	fmt.Printf("valid: %v\n", r.Valid)
	for _, e := range r.Errors {
		fmt.Printf("error: %s\n", e)
	}
	for _, s := range r.Suggestions {
		fmt.Println(s)
	}
	fmt.Printf("patterns: sandhi=%d samasa=%d vibhakti=%d dhatu=%d\n",
		r.Patterns["sandhi"], r.Patterns["samasa"], r.Patterns["vibhakti"], r.Patterns["dhatu"])
}

func runCorpus() {
	s, err := corpus.New()
	if err != nil {
		log.Fatalf("corpus: %v", err)
	}
	defer s.Close()

	if err := s.SeedSutras(sandhi.Records()); err != nil {
		log.Fatalf("seed sutras: %v", err)
	}
	if err := s.SeedDhatus(dhatu.Canonical()); err != nil {
		log.Fatalf("seed dhatus: %v", err)
	}
	sutras, _ := s.CountSutras()
	roots, _ := s.CountDhatus()
	fmt.Printf("seeded %d sutras, %d roots\n", sutras, roots)

	if row, err := s.GetSutra("1.1.1"); err == nil && row != nil {
		fmt.Printf("1.1.1: %s (%s)\n", row.Text, row.Kind)
	}
	reg, err := s.LoadRegistry()
	if err != nil {
		log.Fatalf("load registry: %v", err)
	}
	fmt.Printf("registry: %d roots across %d ganas\n", reg.Len(), len(reg.Ganas()))
}
