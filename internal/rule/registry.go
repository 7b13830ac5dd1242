package rule

import (
	"fmt"
	"sort"
	"strings"
)

var registry = map[string]Rule{}

// Register adds r to the registry. Rules register themselves from init, so
// a duplicate ID is a programming error and panics.
func Register(r Rule) {
	if _, dup := registry[r.ID()]; dup {
		panic(fmt.Sprintf("rule %s registered twice", r.ID()))
	}
	registry[r.ID()] = r
}

// All returns the registered rules ordered by ID.
func All() []Rule {
	rules := make([]Rule, 0, len(registry))
	for _, r := range registry {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// ByID returns the rule registered under id, or nil.
func ByID(id string) Rule {
	return registry[id]
}

// Lookup finds a rule by ID, ignoring case, or by name.
func Lookup(query string) Rule {
	if r := ByID(strings.ToUpper(query)); r != nil {
		return r
	}
	for _, r := range registry {
		if r.Name() == query {
			return r
		}
	}
	return nil
}

// InCategory returns the registered rules of one category, ordered by ID.
func InCategory(category string) []Rule {
	var rules []Rule
	for _, r := range All() {
		if r.Category() == category {
			rules = append(rules, r)
		}
	}
	return rules
}
