// Package exclusions maintains the table of provider-created default
// resources that exist in every fresh account regardless of user activity.
//
// The table is an explicit, externally editable list, not derived
// heuristically. It is expected to under- or over-exclude as AWS adds new
// default resources; that is a documented limitation, not a bug.
package exclusions

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule matches default resources by resource type and identifier shape.
// Both fields are glob patterns where `*` matches any run of characters,
// including slashes (identifiers are often ARNs or paths).
type Rule struct {
	ResourceType string `yaml:"resource_type"`
	Identifier   string `yaml:"identifier"`
	Note         string `yaml:"note,omitempty"`

	typeRE *regexp.Regexp
	idRE   *regexp.Regexp
}

// Table is an ordered set of exclusion rules.
type Table struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads a rule table from a YAML file, replacing the built-in table.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return Table{}, fmt.Errorf("failed to read exclusions file: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return Table{}, fmt.Errorf("failed to parse exclusions file: %w", err)
	}

	if err := table.compile(); err != nil {
		return Table{}, err
	}
	return table, nil
}

// Builtin returns the built-in default-resource table.
func Builtin() Table {
	table := Table{Rules: builtinRules}
	// The built-in patterns are static; compilation cannot fail.
	if err := table.compile(); err != nil {
		panic(err)
	}
	return table
}

func (t *Table) compile() error {
	for i := range t.Rules {
		rule := &t.Rules[i]
		if rule.ResourceType == "" || rule.Identifier == "" {
			return fmt.Errorf("exclusion rule %d: resource_type and identifier are required", i)
		}
		var err error
		if rule.typeRE, err = compileGlob(rule.ResourceType); err != nil {
			return fmt.Errorf("exclusion rule %d: %w", i, err)
		}
		if rule.idRE, err = compileGlob(rule.Identifier); err != nil {
			return fmt.Errorf("exclusion rule %d: %w", i, err)
		}
	}
	return nil
}

// Matches reports whether the identifier is a known provider default for the
// given resource type.
func (t Table) Matches(resourceType, identifier string) bool {
	for _, rule := range t.Rules {
		if rule.typeRE.MatchString(resourceType) && rule.idRE.MatchString(identifier) {
			return true
		}
	}
	return false
}

// Apply removes identifiers matching the table. Applying the result again is
// a no-op.
func (t Table) Apply(resourceType string, identifiers []string) []string {
	kept := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		if !t.Matches(resourceType, identifier) {
			kept = append(kept, identifier)
		}
	}
	return kept
}

// compileGlob translates a glob pattern into an anchored regexp. Unlike
// path.Match, `*` crosses slashes, matching fnmatch semantics.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			sb.WriteString(".*")
		case '?':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}
