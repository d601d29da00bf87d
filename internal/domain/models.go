package domain

import "fmt"

// Variant is a documentation granularity
type Variant string

const (
	VariantFull Variant = "full"
	VariantTiny Variant = "tiny"
)

// Variants lists every variant in prompt order
var Variants = []Variant{VariantFull, VariantTiny}

// ParseVariant converts a string into a Variant
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantFull, VariantTiny:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("%w: %q (use full or tiny)", ErrInvalidVariant, s)
	}
}

// String implements fmt.Stringer
func (v Variant) String() string {
	return string(v)
}

// CatalogEntry holds the documentation filenames available for one dependency
type CatalogEntry struct {
	Full string `json:"full" yaml:"full" validate:"required,docfile"`
	Tiny string `json:"tiny" yaml:"tiny" validate:"required,docfile"`
}

// File returns the filename for the given variant
func (e CatalogEntry) File(v Variant) (string, error) {
	switch v {
	case VariantFull:
		return e.Full, nil
	case VariantTiny:
		return e.Tiny, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, string(v))
	}
}

// Selection is one (dependency, variant) pair chosen by the user
type Selection struct {
	Name    string
	Variant Variant
}

// CopyOutcome classifies the result of copying one selection
type CopyOutcome int

const (
	CopySuccess CopyOutcome = iota
	CopyCatalogMiss
	CopyFileSystemError
)

// String implements fmt.Stringer
func (o CopyOutcome) String() string {
	switch o {
	case CopySuccess:
		return "success"
	case CopyCatalogMiss:
		return "catalog miss"
	case CopyFileSystemError:
		return "filesystem error"
	default:
		return "unknown"
	}
}

// CopyResult is the tagged outcome for one selection
type CopyResult struct {
	Selection
	Filename    string
	Destination string
	Outcome     CopyOutcome
	Err         error
}

// OK reports whether the copy succeeded
func (r CopyResult) OK() bool {
	return r.Outcome == CopySuccess
}

// DependencyStatus reports whether a declared dependency has documentation
type DependencyStatus struct {
	Name      string
	Available bool
	// Source is the manifest section that declared the dependency, if known
	Source string
}

// CopySummary aggregates a batch of copy results for display
type CopySummary struct {
	Copied    int
	Failed    int
	OutputDir string
}

// Summarize counts successes and failures
func Summarize(results []CopyResult, outputDir string) CopySummary {
	s := CopySummary{OutputDir: outputDir}
	for _, r := range results {
		if r.OK() {
			s.Copied++
		} else {
			s.Failed++
		}
	}
	return s
}
