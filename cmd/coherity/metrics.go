package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	metricspkg "github.com/archer884/coherity/internal/metrics"
)

const metricsUsageText = `Usage: coherity metrics <command> [flags] [files...]

Commands:
  list     List available metrics from the shared registry
  rank     Rank files by selected metrics
`

func runMetrics(ctx context.Context, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, metricsUsageText)
		return 0
	}
	switch sub, rest := args[0], args[1:]; sub {
	case "list":
		return runMetricsList(rest)
	case "rank":
		return runMetricsRank(ctx, rest)
	default:
		fmt.Fprintf(os.Stderr, "coherity: metrics: unknown command %q\n", sub)
		return 2
	}
}

// metricInfo is one entry of "metrics list --format json".
type metricInfo struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Kind         metricspkg.ValueKind `json:"kind"`
	Default      bool                 `json:"default"`
	DefaultOrder metricspkg.Order     `json:"default_order"`
}

func runMetricsList(args []string) int {
	fs := flag.NewFlagSet("metrics list", flag.ContinueOnError)
	format := fs.StringP("format", "f", "text", "Output format: text, json")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: coherity metrics list [flags]\n\n"+
			"List available metrics in the shared registry.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		return fail(errors.New("metrics list takes no file arguments"))
	}
	if err := checkFormat(*format); err != nil {
		return fail(err)
	}

	defs := metricspkg.All()
	var err error
	if *format == "json" {
		infos := make([]metricInfo, len(defs))
		for i, d := range defs {
			infos[i] = metricInfo{d.ID, d.Name, d.Description, d.Kind, d.Default, d.DefaultOrder}
		}
		err = writeJSON(infos)
	} else {
		table := [][]string{{"ID", "NAME", "ORDER", "DEFAULT", "DESCRIPTION"}}
		for _, d := range defs {
			table = append(table, []string{
				d.ID, d.Name, string(d.DefaultOrder), fmt.Sprint(d.Default), d.Description,
			})
		}
		err = writeTable(table)
	}
	if err != nil {
		return fail(fmt.Errorf("writing output: %w", err))
	}
	return 0
}

// rankRequest holds the parsed flags of "metrics rank".
type rankRequest struct {
	configPath  string
	metrics     string
	by          string
	order       string
	top         int
	jobs        int
	format      string
	verbose     bool
	noGitignore bool
	files       []string
}

func parseRankRequest(args []string) (*rankRequest, error) {
	req := &rankRequest{}
	fs := flag.NewFlagSet("metrics rank", flag.ContinueOnError)
	fs.StringVarP(&req.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&req.metrics, "metrics", "", "Comma-separated metrics (defaults to registry defaults)")
	fs.StringVar(&req.by, "by", "", "Metric to sort by")
	fs.StringVar(&req.order, "order", "", "Sort order: asc or desc (defaults by metric)")
	fs.IntVar(&req.top, "top", 0, "Limit results to top N files (0 = all)")
	fs.IntVarP(&req.jobs, "jobs", "j", 0, "Files processed in parallel (0 = number of CPUs)")
	fs.StringVarP(&req.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVarP(&req.verbose, "verbose", "v", false, "Show config and file count on stderr")
	fs.BoolVar(&req.noGitignore, "no-gitignore", false, "Disable .gitignore filtering when walking directories")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: coherity metrics rank [flags] [files...]\n\n"+
			"Compute selected metrics and rank documents.\n"+
			"With no file arguments, ranks the files matched by the config.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch {
	case req.top < 0:
		return nil, errors.New("--top must be >= 0")
	case req.jobs < 0:
		return nil, errors.New("--jobs must be >= 0")
	}
	if err := checkFormat(req.format); err != nil {
		return nil, err
	}
	req.files = fs.Args()
	return req, nil
}

// selection resolves the metrics to compute, the sort metric and its order.
// The sort metric is always computed: it is appended to the registry
// defaults, but an explicit --metrics list has to name it.
func (req *rankRequest) selection() ([]metricspkg.Definition, metricspkg.Definition, metricspkg.Order, error) {
	var none metricspkg.Definition
	named := metricspkg.SplitList(req.metrics)
	defs, err := metricspkg.Resolve(named)
	if err != nil {
		return nil, none, "", err
	}

	by := defs[0]
	if strings.TrimSpace(req.by) != "" {
		found, err := metricspkg.Resolve([]string{req.by})
		if err != nil {
			return nil, none, "", err
		}
		by = found[0]
	}
	if !slices.ContainsFunc(defs, func(d metricspkg.Definition) bool { return d.ID == by.ID }) {
		if len(named) > 0 {
			return nil, none, "", fmt.Errorf("--by metric %q must be included in --metrics", by.Name)
		}
		defs = append(defs, by)
	}

	order, err := metricspkg.ParseOrder(req.order, by.DefaultOrder)
	if err != nil {
		return nil, none, "", err
	}
	return defs, by, order, nil
}

func runMetricsRank(ctx context.Context, args []string) int {
	req, err := parseRankRequest(args)
	if err != nil {
		return fail(err)
	}
	defs, by, order, err := req.selection()
	if err != nil {
		return fail(err)
	}

	logger := newLogger(req.verbose)
	cfg, cfgPath, err := loadConfig(req.configPath)
	if err != nil {
		return fail(err)
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}
	files, err := resolveFiles(ctx, cfg, req.files, req.noGitignore)
	if err != nil {
		return fail(err)
	}
	logger.Debug("ranking", "files", len(files), "by", by.Name, "order", order)

	analyzer, err := newAnalyzer()
	if err != nil {
		return fail(err)
	}
	rows, err := metricspkg.Collect(ctx, files, defs, metricspkg.CollectOptions{
		Analyzer: analyzer,
		Workers:  req.jobs,
	})
	if err != nil {
		return fail(err)
	}
	metricspkg.SortRows(rows, by, order)
	rows = metricspkg.LimitRows(rows, req.top)

	if req.format == "json" {
		err = writeJSON(rankRecords(rows, defs))
	} else {
		err = writeTable(rankTable(rows, defs))
	}
	if err != nil {
		return fail(fmt.Errorf("writing output: %w", err))
	}
	return 0
}

// rankRecords keys each row's values by metric name next to its path.
func rankRecords(rows []metricspkg.Row, defs []metricspkg.Definition) []map[string]any {
	records := make([]map[string]any, len(rows))
	for i, row := range rows {
		rec := map[string]any{"path": row.Path}
		for _, d := range defs {
			rec[d.Name] = metricspkg.JSONValue(d, row.Metrics[d.Name])
		}
		records[i] = rec
	}
	return records
}

// rankTable puts one column per metric, then the path.
func rankTable(rows []metricspkg.Row, defs []metricspkg.Definition) [][]string {
	header := make([]string, 0, len(defs)+1)
	for _, d := range defs {
		header = append(header, strings.ToUpper(d.Name))
	}
	table := [][]string{append(header, "PATH")}
	for _, row := range rows {
		line := make([]string, 0, len(defs)+1)
		for _, d := range defs {
			line = append(line, metricspkg.FormatValue(d, row.Metrics[d.Name]))
		}
		table = append(table, append(line, row.Path))
	}
	return table
}

func checkFormat(format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
	return nil
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "coherity: %v\n", err)
	return 2
}

func writeTable(table [][]string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, cells := range table {
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
