// Package filter matches resource type names against include and exclude
// glob patterns.
package filter

import (
	"fmt"
	"path"
)

// Filter selects resource type names by glob patterns. Matching is
// case-sensitive; `*` matches any run of characters. An exclude match always
// wins over an include match. With no include patterns, every type passes
// except excluded ones.
type Filter struct {
	include []string
	exclude []string
}

// New creates a Filter, validating all patterns up front.
func New(include, exclude []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// Match reports whether the given resource type name passes the filter.
func (f *Filter) Match(resourceType string) bool {
	if matchAny(f.exclude, resourceType) {
		return false
	}
	if len(f.include) == 0 {
		return true
	}
	return matchAny(f.include, resourceType)
}

// Apply returns the type names that pass the filter, preserving input order.
func (f *Filter) Apply(resourceTypes []string) []string {
	if f.IsEmpty() {
		return resourceTypes
	}

	filtered := make([]string, 0, len(resourceTypes))
	for _, resourceType := range resourceTypes {
		if f.Match(resourceType) {
			filtered = append(filtered, resourceType)
		}
	}
	return filtered
}

// IsEmpty returns true if no patterns are configured.
func (f *Filter) IsEmpty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		// Patterns are validated at construction; Match cannot fail here.
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
