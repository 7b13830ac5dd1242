// Command coherity scores the readability of prose documents and checks
// them against configurable readability rules.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/archer884/coherity/internal/config"
	"github.com/archer884/coherity/internal/discovery"
	"github.com/archer884/coherity/internal/lint"
	vlog "github.com/archer884/coherity/internal/log"
	"github.com/archer884/coherity/internal/readability"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/archer884/coherity/internal/rules/documentreadability"
	_ "github.com/archer884/coherity/internal/rules/paragraphreadability"
	_ "github.com/archer884/coherity/internal/rules/paragraphstructure"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: coherity <command> [flags] [files...]

Commands:
  score     Print readability scores for documents
  check     Check documents against readability rules
  metrics   List metrics or rank documents by them
  help      Show help for rules, metrics and formulas
  init      Generate a default .coherity.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'coherity <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	first := os.Args[1]
	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "score":
		return runScore(ctx, os.Args[2:])
	case "check":
		return runCheck(ctx, os.Args[2:])
	case "metrics":
		return runMetrics(ctx, os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "coherity: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("coherity %s\n", version)
}

// runInit implements the "init" subcommand: generate .coherity.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: coherity init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "coherity: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "coherity: %s already exists\n", config.FileName)
		return 2
	}

	cfg := config.DumpDefaults()
	fm := true
	cfg.FrontMatter = &fm

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "coherity: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "coherity: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "coherity: created %s\n", config.FileName)
	return 0
}

// printErrors writes runtime errors to stderr.
func printErrors(errs []error) {
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "coherity: %v\n", e)
	}
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func readStdin() ([]byte, error) {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return source, nil
}

// loadConfig resolves the run's configuration from an explicit path or
// from the current directory.
func loadConfig(configPath string) (*config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return config.Resolve(configPath, cwd)
}

// resolveFiles expands file arguments, or discovers the configured file
// patterns from the current directory when there are none.
func resolveFiles(ctx context.Context, cfg *config.Config, args []string, noGitignore bool) ([]string, error) {
	useGitignore := !noGitignore
	if len(args) > 0 {
		return lint.Expand(args, useGitignore)
	}
	return discovery.Discover(ctx, discovery.Options{
		Patterns:     cfg.FilePatterns(),
		Ignore:       cfg.Ignore,
		UseGitignore: useGitignore,
	})
}

// newAnalyzer builds the characterizer shared by every file of a command.
func newAnalyzer() (readability.Analyzer, error) {
	c, err := readability.New()
	if err != nil {
		return nil, fmt.Errorf("loading sentence model: %w", err)
	}
	return readability.NewCache(c, 0)
}

func newLogger(verbose bool) *vlog.Logger {
	return &vlog.Logger{Enabled: verbose, W: os.Stderr}
}
