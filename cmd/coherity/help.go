package main

import (
	"fmt"
	"os"
	"strings"

	metricspkg "github.com/archer884/coherity/internal/metrics"
	"github.com/archer884/coherity/internal/readability"
	"github.com/archer884/coherity/internal/rules"
)

const helpUsageText = `Usage: coherity help <topic>

Topics:
  rule [id|name]     Show rule documentation
  metric [id|name]   Show metric documentation
  formula            List readability formulas
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "rule":
		if len(args) == 1 {
			return listAllRules()
		}
		return showDoc(rules.LookupRule, args[1])
	case "metric", "metrics":
		if len(args) == 1 {
			return listAllMetrics()
		}
		return showDoc(metricspkg.LookupDoc, args[1])
	case "formula", "formulas":
		return listFormulas()
	default:
		fmt.Fprintf(os.Stderr, "coherity: help: unknown topic %q\n", args[0])
		return 2
	}
}

func listAllRules() int {
	all, err := rules.ListRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
		return 2
	}
	for _, r := range all {
		fmt.Printf("%-6s %-24s %s\n", r.ID, r.Name, r.Description)
	}
	return 0
}

func listAllMetrics() int {
	docs, err := metricspkg.ListDocs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
		return 2
	}
	for _, m := range docs {
		fmt.Printf("%-6s %-20s %s\n", m.ID, m.Name, m.Description)
	}
	return 0
}

func listFormulas() int {
	for _, f := range readability.Formulas() {
		scale := "grade"
		if f.HigherIsEasier {
			scale = "ease"
		}
		fmt.Printf("%-16s %-4s %-6s %s\n", f.Name, f.Abbrev, scale, f.Title)
	}
	return 0
}

func showDoc(lookup func(string) (string, error), query string) int {
	content, err := lookup(strings.TrimSpace(query))
	if err != nil {
		fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}
