package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

func TestReporter_Status(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Status(domain.DependencyStatus{Name: "zod", Available: true})
	r.Status(domain.DependencyStatus{Name: "left-pad", Available: false})

	out := buf.String()
	assert.Contains(t, out, "✓ zod documentation available")
	assert.Contains(t, out, "✗ left-pad no documentation")
}

func TestReporter_Result(t *testing.T) {
	tests := []struct {
		name     string
		result   domain.CopyResult
		contains string
	}{
		{
			name: "success",
			result: domain.CopyResult{
				Selection:   domain.Selection{Name: "zod", Variant: domain.VariantTiny},
				Destination: ".llm-docs/zod-tiny.txt",
				Outcome:     domain.CopySuccess,
			},
			contains: "✓ zod (tiny) -> .llm-docs/zod-tiny.txt",
		},
		{
			name: "catalog miss",
			result: domain.CopyResult{
				Selection: domain.Selection{Name: "ghost", Variant: domain.VariantFull},
				Outcome:   domain.CopyCatalogMiss,
				Err:       domain.ErrCatalogMiss,
			},
			contains: "✗ ghost not in catalog",
		},
		{
			name: "filesystem error",
			result: domain.CopyResult{
				Selection: domain.Selection{Name: "react", Variant: domain.VariantFull},
				Outcome:   domain.CopyFileSystemError,
				Err:       domain.NewCopyError("react", ".llm-docs/react-full.txt", errors.New("permission denied")),
			},
			contains: "✗ react failed: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf).Result(tt.result)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Summary(domain.CopySummary{Copied: 2, Failed: 1, OutputDir: ".llm-docs"})

	assert.Contains(t, buf.String(), "2 copied, 1 failed. Documentation is in .llm-docs")
}

func TestReporter_Messages(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Title("Dependencies")
	r.Info("%d packages", 3)
	r.Warn("catalog %s", "unreadable")

	out := buf.String()
	assert.Contains(t, out, "Dependencies")
	assert.Contains(t, out, "3 packages")
	assert.Contains(t, out, "! catalog unreadable")
	assert.Same(t, &buf, r.Writer())
}

func TestReporter_StatusWithSource(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Status(domain.DependencyStatus{Name: "vitest", Available: true, Source: "devDependencies"})

	assert.Contains(t, buf.String(), "✓ vitest documentation available (devDependencies)")
}
