package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/archer884/coherity/internal/config"
	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/log"
	"github.com/archer884/coherity/internal/readability"
	"github.com/archer884/coherity/internal/rule"
	"github.com/gobwas/glob"
)

// Runner checks files against the configured rules. Each file is read,
// skipped when its front matter opts out, parsed once and handed to a
// Checker with the rules in effect for its path.
type Runner struct {
	Config           *config.Config
	Rules            []rule.Rule
	StripFrontMatter bool

	// Analyzer is shared by every file of the run. When nil, a cached
	// Characterizer is built on first use.
	Analyzer readability.Analyzer
	Logger   *log.Logger

	once    sync.Once
	checker *Checker
	initErr error
}

// Result holds the output of a run.
type Result struct {
	Diagnostics []lint.Diagnostic
	Errors      []error
	// Skipped lists files that opted out of analysis in front matter.
	Skipped []string
}

// Run checks the files at paths. Diagnostics come back sorted by
// position; unreadable files are reported in Errors.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}
	for _, path := range paths {
		if r.isIgnored(path) {
			r.Logger.Debug("ignored", "path", path)
			continue
		}
		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}
		r.check(res, path, source)
	}
	lint.SortDiagnostics(res.Diagnostics)
	return res
}

// RunSource checks source as if it had been read from path. Ignore
// patterns are not consulted.
func (r *Runner) RunSource(path string, source []byte) *Result {
	res := &Result{}
	r.check(res, path, source)
	lint.SortDiagnostics(res.Diagnostics)
	return res
}

func (r *Runner) check(res *Result, path string, source []byte) {
	checker, err := r.init()
	if err != nil {
		res.Errors = append(res.Errors, err)
		return
	}

	meta, err := lint.ParseFrontMatter(source)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("parsing front matter of %q: %w", path, err))
		return
	}
	if !lint.AnalysisEnabled(meta) {
		r.Logger.Printf("skip: %s (readability: false)", path)
		res.Skipped = append(res.Skipped, path)
		return
	}

	f, err := lint.NewFileFromSource(path, source, r.StripFrontMatter)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("parsing %q: %w", path, err))
		return
	}

	r.Logger.Printf("file: %s", path)
	diags, errs := checker.Check(f, r.Config.RulesFor(path, r.categoryOf))
	res.Diagnostics = append(res.Diagnostics, diags...)
	res.Errors = append(res.Errors, errs...)
}

func (r *Runner) categoryOf(name string) string {
	for _, rl := range r.Rules {
		if rl.Name() == name {
			return rl.Category()
		}
	}
	return ""
}

// init builds the run's Checker, loading the sentence model unless an
// Analyzer was supplied.
func (r *Runner) init() (*Checker, error) {
	r.once.Do(func() {
		if r.Analyzer == nil {
			c, err := readability.New()
			if err != nil {
				r.initErr = fmt.Errorf("loading sentence model: %w", err)
				return
			}
			cache, err := readability.NewCache(c, 0)
			if err != nil {
				r.initErr = err
				return
			}
			r.Analyzer = cache
		}
		r.checker = &Checker{Rules: r.Rules, Analyzer: r.Analyzer, Logger: r.Logger}
	})
	return r.checker, r.initErr
}

// isIgnored returns true if the file path matches any of the configured
// ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	cleanPath := filepath.Clean(path)

	for _, pattern := range r.Config.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(cleanPath) || g.Match(filepath.Base(path)) {
			return true
		}
	}
	return false
}
