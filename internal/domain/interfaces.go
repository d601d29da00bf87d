package domain

import "context"

//go:generate mockgen -destination=mocks/prompter.go -package=mocks . Prompter

// Prompter asks the user which dependencies and variants to copy
type Prompter interface {
	// ChooseMany returns the chosen subset of candidates, preserving order
	ChooseMany(ctx context.Context, candidates []string) ([]string, error)
	// ChooseOne returns exactly one variant for the named dependency
	ChooseOne(ctx context.Context, name string, options []Variant) (Variant, error)
}

// Catalog is the read-only mapping from dependency name to documentation files
type Catalog interface {
	// Lookup returns the entry for a dependency
	Lookup(name string) (CatalogEntry, bool)
	// Has reports whether a dependency has an entry
	Has(name string) bool
	// Len returns the number of entries
	Len() int
}
