// Package settings converts loosely typed YAML rule settings.
package settings

import "fmt"

// Float accepts any YAML number.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Int accepts integers and whole floats.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

// String accepts only strings.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// TypeError reports a setting of the wrong type.
func TypeError(rule, key, want string, got any) error {
	return fmt.Errorf("%s: %s must be %s, got %T", rule, key, want, got)
}

// UnknownError reports a setting the rule does not know.
func UnknownError(rule, key string) error {
	return fmt.Errorf("%s: unknown setting %q", rule, key)
}
