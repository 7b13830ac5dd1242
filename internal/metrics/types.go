package metrics

import (
	"fmt"
	"math"
	"strings"
)

// Order is the direction a ranking sorts in.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder reads an --order value. A blank value means fallback.
func ParseOrder(raw string, fallback Order) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(raw))); o {
	case "":
		return fallback, nil
	case OrderAsc, OrderDesc:
		return o, nil
	}
	return "", fmt.Errorf("unknown order %q (supported: asc, desc)", raw)
}

// ValueKind selects between integer and fixed-precision rendering.
type ValueKind string

const (
	KindInteger ValueKind = "integer"
	KindFloat   ValueKind = "float"
)

// Value is one computed metric. The zero Value is unavailable.
type Value struct {
	Number    float64
	Available bool
}

func AvailableValue(n float64) Value { return Value{Number: n, Available: true} }

func UnavailableValue() Value { return Value{} }

// ScoreValue wraps a formula result. Prose without words or sentences
// scores NaN or an infinity, which is reported as unavailable.
func ScoreValue(n float64) Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return UnavailableValue()
	}
	return AvailableValue(n)
}

// Definition is one registered metric.
type Definition struct {
	ID          string
	Name        string
	Description string
	Kind        ValueKind
	// Precision is the number of decimals shown for KindFloat.
	Precision int
	// Default marks the metrics ranked when none are named.
	Default bool
	// DefaultOrder puts the hardest or largest documents first.
	DefaultOrder Order
	Compute      func(doc *Document) (Value, error)
}
