package tui

import (
	"context"
	"fmt"
	"slices"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

// AutoPrompter answers every prompt without user input: all candidates are
// chosen, each with the same variant.
type AutoPrompter struct {
	variant domain.Variant
}

var _ domain.Prompter = (*AutoPrompter)(nil)

// NewAutoPrompter creates a prompter that always picks variant
func NewAutoPrompter(variant domain.Variant) *AutoPrompter {
	return &AutoPrompter{variant: variant}
}

// ChooseMany returns every candidate
func (a *AutoPrompter) ChooseMany(ctx context.Context, candidates []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ErrAborted
	}
	return append([]string{}, candidates...), nil
}

// ChooseOne returns the configured variant, or the first option when it is not offered
func (a *AutoPrompter) ChooseOne(ctx context.Context, name string, options []domain.Variant) (domain.Variant, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.ErrAborted
	}
	if len(options) == 0 {
		return "", fmt.Errorf("%w: no variants offered for %s", domain.ErrInvalidVariant, name)
	}
	if slices.Contains(options, a.variant) {
		return a.variant, nil
	}
	return options[0], nil
}
