package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/llmdocs/internal/catalog"
	"github.com/quantmind-br/llmdocs/internal/domain"
)

func testCatalog(names ...string) *catalog.Catalog {
	entries := make(map[string]domain.CatalogEntry, len(names))
	for _, n := range names {
		entries[n] = domain.CatalogEntry{Full: n + "-full.txt", Tiny: n + "-tiny.txt"}
	}
	return catalog.New(entries)
}

func TestResolvable(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		catalog  *catalog.Catalog
		expected []string
	}{
		{
			name:     "scenario zod and left-pad",
			names:    []string{"zod", "left-pad"},
			catalog:  testCatalog("zod"),
			expected: []string{"zod"},
		},
		{
			name:     "preserves input order",
			names:    []string{"vitest", "react", "zod"},
			catalog:  testCatalog("zod", "react", "vitest"),
			expected: []string{"vitest", "react", "zod"},
		},
		{
			name:     "empty catalog",
			names:    []string{"zod", "react"},
			catalog:  catalog.Empty(),
			expected: []string{},
		},
		{
			name:     "no names",
			names:    nil,
			catalog:  testCatalog("zod"),
			expected: []string{},
		},
		{
			name:     "scoped names",
			names:    []string{"@tanstack/react-query", "@types/node"},
			catalog:  testCatalog("@tanstack/react-query"),
			expected: []string{"@tanstack/react-query"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolvable(tt.names, tt.catalog)
			assert.Equal(t, tt.expected, got)

			for _, n := range got {
				assert.Contains(t, tt.names, n)
				assert.True(t, tt.catalog.Has(n))
			}

			assert.Equal(t, got, Resolvable(got, tt.catalog), "not idempotent")
		})
	}
}

func TestStatuses(t *testing.T) {
	got := Statuses([]string{"zod", "left-pad"}, []string{"zod"})

	assert.Equal(t, []domain.DependencyStatus{
		{Name: "zod", Available: true},
		{Name: "left-pad", Available: false},
	}, got)
}

func TestStatuses_AgreeWithResolvable(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	c := testCatalog("b", "d", "x")

	resolvable := Resolvable(names, c)

	var available []string
	for _, s := range Statuses(names, resolvable) {
		if s.Available {
			available = append(available, s.Name)
		}
	}

	assert.Equal(t, resolvable, available)
}

// countingCatalog counts lookups so tests can check the join runs once
type countingCatalog struct {
	*catalog.Catalog
	has int
}

func (c *countingCatalog) Has(name string) bool {
	c.has++
	return c.Catalog.Has(name)
}

func TestStatuses_DoesNotConsultCatalog(t *testing.T) {
	names := []string{"zod", "react", "left-pad"}
	c := &countingCatalog{Catalog: testCatalog("zod", "react")}

	resolvable := Resolvable(names, c)
	require.Equal(t, len(names), c.has)

	statuses := Statuses(names, resolvable)
	assert.Equal(t, len(names), c.has)
	assert.Len(t, statuses, len(names))
}

func TestFilter(t *testing.T) {
	names := []string{"react", "react-dom", "@tanstack/react-query", "@tanstack/router", "zod"}

	tests := []struct {
		name     string
		patterns []string
		expected []string
	}{
		{name: "no patterns keeps all", patterns: nil, expected: names},
		{name: "exact", patterns: []string{"zod"}, expected: []string{"zod"}},
		{name: "prefix glob", patterns: []string{"react*"}, expected: []string{"react", "react-dom"}},
		{name: "scope glob", patterns: []string{"@tanstack/*"}, expected: []string{"@tanstack/react-query", "@tanstack/router"}},
		{name: "several patterns keep input order", patterns: []string{"zod", "react"}, expected: []string{"react", "zod"}},
		{name: "no match", patterns: []string{"vue"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(names, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	_, err := Filter([]string{"zod"}, []string{"[z"})
	assert.Error(t, err)
}
