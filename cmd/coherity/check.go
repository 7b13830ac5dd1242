package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/archer884/coherity/internal/engine"
	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/output"
	"github.com/archer884/coherity/internal/rule"
)

type checkOptions struct {
	configPath  string
	format      string
	noColor     bool
	quiet       bool
	verbose     bool
	noGitignore bool
}

// runCheck implements the "check" subcommand.
func runCheck(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var opts checkOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-error output")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config, files, and rules on stderr")
	fs.BoolVar(&opts.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: coherity check [flags] [files...]\n\n"+
			"Check documents against the readability rules.\n\n"+
			"Files can be paths, directories (walked recursively for .md, .markdown\n"+
			"and .txt), or glob patterns. With no file arguments, reads from stdin\n"+
			"if piped, otherwise checks the files matched by the config.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if opts.quiet {
		opts.verbose = false
	}
	if _, _, ok := output.New(opts.format, false); !ok {
		fmt.Fprintf(os.Stderr, "coherity: unknown format %q (supported: text, json)\n", opts.format)
		return 2
	}

	logger := newLogger(opts.verbose)
	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	runner := &engine.Runner{
		Config:           cfg,
		Rules:            rule.All(),
		StripFrontMatter: cfg.StripFrontMatter(),
		Logger:           logger,
	}
	for _, rl := range runner.Rules {
		logger.Debug("rule", "id", rl.ID(), "name", rl.Name(), "category", rl.Category())
	}

	var (
		result *engine.Result
		count  int
	)
	if fs.NArg() == 0 && isStdinPipe() {
		source, err := readStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
			return 2
		}
		result, count = runner.RunSource("<stdin>", source), 1
	} else {
		files, err := resolveFiles(ctx, cfg, fs.Args(), opts.noGitignore)
		if err != nil {
			fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
			return 2
		}
		if len(files) == 0 {
			return 0
		}
		result, count = runner.Run(files), len(files)
	}

	return reportCheck(result, count, opts, logger.Printf)
}

func reportCheck(result *engine.Result, count int, opts checkOptions, logf func(string, ...any)) int {
	printErrors(result.Errors)

	if len(result.Errors) > 0 && len(result.Diagnostics) == 0 {
		return 2
	}
	if !opts.quiet && len(result.Diagnostics) > 0 {
		if code := formatDiagnostics(result.Diagnostics, opts.format, opts.noColor); code != 0 {
			return code
		}
	}
	logf("checked %d files, %d skipped, %d issues found",
		count, len(result.Skipped), len(result.Diagnostics))

	if len(result.Diagnostics) > 0 {
		return 1
	}
	return 0
}

// formatDiagnostics writes diagnostics to stderr using the specified format.
// Returns a non-zero exit code on write error, or 0 on success.
func formatDiagnostics(diags []lint.Diagnostic, format string, noColor bool) int {
	formatter, _, _ := output.New(format, !noColor)
	if err := formatter.Format(os.Stderr, diags); err != nil {
		fmt.Fprintf(os.Stderr, "coherity: error writing output: %v\n", err)
		return 2
	}
	return 0
}
