// Package resolver joins declared dependency names with the documentation
// catalog. Everything here is pure.
package resolver

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

// Resolvable returns the names that have a catalog entry, in input order
func Resolvable(names []string, catalog domain.Catalog) []string {
	out := []string{}
	for _, name := range names {
		if catalog.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// Statuses reports availability for every declared name, in input order.
// resolvable is the result of Resolvable for the same names; the catalog is
// not consulted again.
func Statuses(names, resolvable []string) []domain.DependencyStatus {
	available := make(map[string]bool, len(resolvable))
	for _, name := range resolvable {
		available[name] = true
	}

	out := make([]domain.DependencyStatus, 0, len(names))
	for _, name := range names {
		out = append(out, domain.DependencyStatus{
			Name:      name,
			Available: available[name],
		})
	}
	return out
}

// Filter keeps the names matching at least one glob pattern, in input order.
// With no patterns every name is kept.
func Filter(names []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return names, nil
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid package pattern %q", p)
		}
	}

	out := []string{}
	for _, name := range names {
		for _, p := range patterns {
			if match, _ := doublestar.Match(p, name); match {
				out = append(out, name)
				break
			}
		}
	}
	return out, nil
}
