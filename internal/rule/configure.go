package rule

import (
	"fmt"
	"reflect"
)

// Configure returns a fresh instance of r with settings applied on top of
// its defaults. The registered rule is never modified, so per-file
// overrides cannot leak between files. A rule that is not Configurable, or
// an empty settings map, yields r itself.
func Configure(r Rule, settings map[string]any) (Rule, error) {
	c, ok := r.(Configurable)
	if !ok || len(settings) == 0 {
		return r, nil
	}

	t := reflect.TypeOf(r)
	if t.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%s: configurable rule %T must be a pointer", r.Name(), r)
	}
	fresh, ok := reflect.New(t.Elem()).Interface().(Configurable)
	if !ok {
		return nil, fmt.Errorf("%s: cannot copy %T", r.Name(), r)
	}

	if err := fresh.ApplySettings(c.DefaultSettings()); err != nil {
		return nil, fmt.Errorf("%s: restoring defaults: %w", r.Name(), err)
	}
	if err := fresh.ApplySettings(settings); err != nil {
		return nil, fmt.Errorf("applying settings for %s: %w", r.Name(), err)
	}
	return fresh.(Rule), nil
}
