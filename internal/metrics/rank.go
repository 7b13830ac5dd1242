package metrics

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/archer884/coherity/internal/readability"
	"golang.org/x/sync/errgroup"
)

// Row holds computed metric values for a single file.
type Row struct {
	Path    string
	Metrics map[string]Value
}

// CollectOptions tunes Collect.
type CollectOptions struct {
	// Analyzer is shared by every file. When nil, a cached Characterizer
	// is built for the call.
	Analyzer readability.Analyzer
	// Workers bounds the number of files processed at once. Zero uses
	// GOMAXPROCS.
	Workers int
}

// Collect computes all selected metrics for each file path. Files are
// processed concurrently; rows keep the order of paths. The first error
// cancels the remaining work.
func Collect(ctx context.Context, paths []string, defs []Definition, opts CollectOptions) ([]Row, error) {
	analyzer := opts.Analyzer
	if analyzer == nil {
		c, err := readability.New()
		if err != nil {
			return nil, fmt.Errorf("loading sentence model: %w", err)
		}
		cache, err := readability.NewCache(c, 0)
		if err != nil {
			return nil, err
		}
		analyzer = cache
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make([]Row, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := collectRow(path, defs, analyzer)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func collectRow(path string, defs []Definition, analyzer readability.Analyzer) (Row, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Row{}, fmt.Errorf("reading %q: %w", path, err)
	}

	doc := NewDocument(path, source, analyzer)
	values := make(map[string]Value, len(defs))
	for _, def := range defs {
		v, err := def.Compute(doc)
		if err != nil {
			return Row{}, fmt.Errorf("computing %q for %q: %w", def.Name, path, err)
		}
		values[def.Name] = v
	}
	return Row{Path: path, Metrics: values}, nil
}

// SortRows orders rows by the by metric in the given direction. Rows
// missing the metric sink to the bottom and ties fall back to path order.
func SortRows(rows []Row, by Definition, order Order) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		x, y := a.Metrics[by.Name], b.Metrics[by.Name]
		switch {
		case x.Available && !y.Available:
			return -1
		case !x.Available && y.Available:
			return 1
		case x.Available && math.Abs(x.Number-y.Number) > 1e-9:
			c := cmp.Compare(x.Number, y.Number)
			if order == OrderDesc {
				c = -c
			}
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
}

// LimitRows keeps the first top rows. Zero keeps them all.
func LimitRows(rows []Row, top int) []Row {
	if top > 0 && top < len(rows) {
		return rows[:top]
	}
	return rows
}

// FormatValue renders a value for the text table, "-" when unavailable.
func FormatValue(def Definition, value Value) string {
	v := JSONValue(def, value)
	if v == nil {
		return "-"
	}
	if n, ok := v.(int64); ok {
		return strconv.FormatInt(n, 10)
	}
	return strconv.FormatFloat(v.(float64), 'f', def.Precision, 64)
}

// JSONValue rounds a value the way its kind renders: int64 for integers,
// float64 cut to Precision decimals for floats, nil when unavailable.
func JSONValue(def Definition, value Value) any {
	switch {
	case !value.Available:
		return nil
	case def.Kind == KindInteger:
		return int64(math.Round(value.Number))
	case def.Kind == KindFloat:
		scale := math.Pow10(def.Precision)
		return math.Round(value.Number*scale) / scale
	}
	return value.Number
}
