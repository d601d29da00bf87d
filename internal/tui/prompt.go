package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

var variantLabels = map[domain.Variant]string{
	domain.VariantFull: "full (complete reference)",
	domain.VariantTiny: "tiny (condensed cheat sheet)",
}

// Prompter asks the user through huh forms
type Prompter struct {
	theme      *huh.Theme
	accessible bool
	input      io.Reader
	output     io.Writer
}

var _ domain.Prompter = (*Prompter)(nil)

// PrompterOptions contains options for the interactive prompter
type PrompterOptions struct {
	Theme      string
	Accessible bool
	// Input and Output override the terminal, mainly for tests
	Input  io.Reader
	Output io.Writer
}

// NewPrompter creates an interactive prompter
func NewPrompter(opts PrompterOptions) *Prompter {
	theme := GetTheme(opts.Theme)
	if opts.Accessible {
		theme = GetAccessibleTheme()
	}
	return &Prompter{
		theme:      theme,
		accessible: opts.Accessible,
		input:      opts.Input,
		output:     opts.Output,
	}
}

// ChooseMany shows a multi-select with every candidate checked
func (p *Prompter) ChooseMany(ctx context.Context, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return []string{}, nil
	}

	chosen := append([]string(nil), candidates...)
	options := make([]huh.Option[string], 0, len(candidates))
	for _, c := range candidates {
		options = append(options, huh.NewOption(c, c).Selected(true))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("packages").
				Title("Packages").
				Description("Choose the packages to copy documentation for").
				Value(&chosen).
				Options(options...),
		),
	)

	if err := p.run(ctx, form); err != nil {
		return nil, err
	}

	return inOrder(candidates, chosen), nil
}

// ChooseOne asks which variant to copy for name. There is no skip option.
func (p *Prompter) ChooseOne(ctx context.Context, name string, options []domain.Variant) (domain.Variant, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("%w: no variants offered for %s", domain.ErrInvalidVariant, name)
	}

	choice := options[0]
	opts := make([]huh.Option[domain.Variant], 0, len(options))
	for _, v := range options {
		label, ok := variantLabels[v]
		if !ok {
			label = v.String()
		}
		opts = append(opts, huh.NewOption(label, v))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Variant]().
				Key("variant").
				Title(fmt.Sprintf("Documentation for %s", name)).
				Options(opts...).
				Value(&choice),
		),
	)

	if err := p.run(ctx, form); err != nil {
		return "", err
	}
	return choice, nil
}

func (p *Prompter) run(ctx context.Context, form *huh.Form) error {
	form = form.WithTheme(p.theme).WithAccessible(p.accessible).WithShowHelp(true)
	if p.input != nil {
		form = form.WithInput(p.input)
	}
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		return domain.ErrAborted
	default:
		return fmt.Errorf("prompt failed: %w", err)
	}
}

// inOrder returns the members of chosen in the order they appear in candidates
func inOrder(candidates, chosen []string) []string {
	picked := make(map[string]bool, len(chosen))
	for _, c := range chosen {
		picked[c] = true
	}
	out := []string{}
	for _, c := range candidates {
		if picked[c] {
			out = append(out, c)
			delete(picked, c)
		}
	}
	return out
}
