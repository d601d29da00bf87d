package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

// Reporter renders the human-readable progress lines of a run
type Reporter struct {
	out    io.Writer
	styles styles
}

// NewReporter creates a reporter writing to out. Colors are used only when
// out is a terminal.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Writer returns the underlying writer
func (r *Reporter) Writer() io.Writer {
	return r.out
}

// Title prints a section header
func (r *Reporter) Title(text string) {
	fmt.Fprintln(r.out, r.styles.title.Render(text))
}

// Info prints a plain message
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// Warn prints a warning
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.warn.Render("! "+fmt.Sprintf(format, args...)))
}

// Status prints the availability line of one declared dependency
func (r *Reporter) Status(s domain.DependencyStatus) {
	mark, note := r.styles.success.Render("✓"), "documentation available"
	if !s.Available {
		mark, note = r.styles.muted.Render("✗"), "no documentation"
	}
	if s.Source != "" {
		note += " (" + s.Source + ")"
	}
	fmt.Fprintf(r.out, "  %s %s %s\n", mark, r.styles.name.Render(s.Name), r.styles.muted.Render(note))
}

// Result prints the outcome of one copy
func (r *Reporter) Result(res domain.CopyResult) {
	switch res.Outcome {
	case domain.CopySuccess:
		fmt.Fprintf(r.out, "  %s %s (%s) -> %s\n",
			r.styles.success.Render("✓"),
			r.styles.name.Render(res.Name),
			res.Variant,
			res.Destination)
	case domain.CopyCatalogMiss:
		fmt.Fprintf(r.out, "  %s %s %s\n",
			r.styles.err.Render("✗"),
			r.styles.name.Render(res.Name),
			r.styles.err.Render("not in catalog"))
	default:
		fmt.Fprintf(r.out, "  %s %s %s\n",
			r.styles.err.Render("✗"),
			r.styles.name.Render(res.Name),
			r.styles.err.Render(fmt.Sprintf("failed: %v", errorCause(res.Err))))
	}
}

// Summary prints the final line naming the output directory
func (r *Reporter) Summary(s domain.CopySummary) {
	fmt.Fprintln(r.out)
	line := fmt.Sprintf("%d copied, %d failed. Documentation is in %s", s.Copied, s.Failed, s.OutputDir)
	if s.Failed > 0 {
		fmt.Fprintln(r.out, r.styles.warn.Render(line))
		return
	}
	fmt.Fprintln(r.out, r.styles.success.Render(line))
}

// errorCause drops the CopyError prefix, which repeats the package name
func errorCause(err error) error {
	var ce *domain.CopyError
	if errors.As(err, &ce) {
		return ce.Err
	}
	return err
}
