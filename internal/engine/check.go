package engine

import (
	"github.com/archer884/coherity/internal/config"
	"github.com/archer884/coherity/internal/lint"
	"github.com/archer884/coherity/internal/log"
	"github.com/archer884/coherity/internal/readability"
	"github.com/archer884/coherity/internal/rule"
)

// Checker runs a set of rules over parsed files. Every file it checks
// shares Analyzer, so a paragraph scored by one rule is not scored again
// by the next.
type Checker struct {
	Rules    []rule.Rule
	Analyzer readability.Analyzer
	Logger   *log.Logger
}

// Check runs each rule enabled in effective against f. Rules with
// settings run as a configured copy; a copy that rejects its settings is
// reported as an error and skipped. Diagnostics are shifted past any
// stripped front matter.
func (c *Checker) Check(f *lint.File, effective map[string]config.RuleCfg) ([]lint.Diagnostic, []error) {
	if f.Analyzer == nil {
		f.Analyzer = c.Analyzer
	}

	var (
		diags []lint.Diagnostic
		errs  []error
	)
	for _, rl := range c.Rules {
		cfg, ok := effective[rl.Name()]
		if !ok || !cfg.Enabled {
			continue
		}
		configured, err := rule.Configure(rl, cfg.Settings)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		found := configured.Check(f)
		c.Logger.Debug("rule", "id", rl.ID(), "file", f.Path, "found", len(found))
		diags = append(diags, found...)
	}

	f.AdjustDiagnostics(diags)
	return diags, errs
}
