package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/archer884/coherity/internal/metrics"
	"github.com/archer884/coherity/internal/output"
)

// runScore implements the "score" subcommand: every formula plus the
// word, sentence and syllable counts of each document.
func runScore(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var (
		configPath  string
		format      string
		noColor     bool
		verbose     bool
		noGitignore bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Show config and files on stderr")
	fs.BoolVar(&noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: coherity score [flags] [files...]\n\n"+
			"Print readability scores for documents. Only paragraph prose is\n"+
			"scored; headings, code, HTML and tables are left out.\n\n"+
			"With no file arguments, reads from stdin if piped, otherwise scores\n"+
			"the files matched by the config.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	_, formatter, ok := output.New(format, !noColor)
	if !ok {
		fmt.Fprintf(os.Stderr, "coherity: unknown format %q (supported: text, json)\n", format)
		return 2
	}

	logger := newLogger(verbose)
	analyzer, err := newAnalyzer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
		return 2
	}

	var docs []*metrics.Document
	if fs.NArg() == 0 && isStdinPipe() {
		source, err := readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
			return 2
		}
		docs = append(docs, metrics.NewDocument("<stdin>", source, analyzer))
	} else {
		cfg, cfgPath, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
			return 2
		}
		if cfgPath != "" {
			logger.Printf("config: %s", cfgPath)
		}
		files, err := resolveFiles(ctx, cfg, fs.Args(), noGitignore)
		if err != nil {
			fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
			return 2
		}
		for _, path := range files {
			source, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "coherity: reading %q: %v\n", path, err)
				return 2
			}
			docs = append(docs, metrics.NewDocument(path, source, analyzer))
		}
	}

	reports := make([]output.ScoreReport, 0, len(docs))
	for _, doc := range docs {
		logger.Printf("file: %s", doc.Path)
		c, err := doc.Characterization()
		if err != nil {
			fmt.Fprintf(os.Stderr, "coherity: %s: %v\n", doc.Path, err)
			return 2
		}
		reports = append(reports, output.NewScoreReport(doc.Path, c))
	}

	if err := formatter.FormatScores(os.Stdout, reports); err != nil {
		fmt.Fprintf(os.Stderr, "coherity: writing output: %v\n", err)
		return 2
	}
	return 0
}
