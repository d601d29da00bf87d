package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		expected bool
	}{
		{
			name:     "valid filename",
			filename: "zod-full.txt",
			expected: true,
		},
		{
			name:     "scoped package style name",
			filename: "tanstack__query-tiny.txt",
			expected: true,
		},
		{
			name:     "path separator",
			filename: "docs/zod.txt",
			expected: false,
		},
		{
			name:     "parent traversal",
			filename: "../secret.txt",
			expected: false,
		},
		{
			name:     "backslash",
			filename: `..\secret.txt`,
			expected: false,
		},
		{
			name:     "empty string",
			filename: "",
			expected: false,
		},
		{
			name:     "dot",
			filename: ".",
			expected: false,
		},
		{
			name:     "double dot",
			filename: "..",
			expected: false,
		},
		{
			name:     "Windows reserved name",
			filename: "CON.txt",
			expected: false,
		},
		{
			name:     "control character",
			filename: "zod\x00.txt",
			expected: false,
		},
		{
			name:     "valid with spaces",
			filename: "zod full.txt",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidFilename(tt.filename))
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "home directory with slash",
			input:    "~/catalog.json",
			expected: filepath.Join(home, "catalog.json"),
		},
		{
			name:     "home directory only",
			input:    "~",
			expected: home,
		},
		{
			name:     "absolute path",
			input:    "/tmp/catalog.json",
			expected: "/tmp/catalog.json",
		},
		{
			name:     "relative path",
			input:    "./catalog.json",
			expected: "./catalog.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		path     string
		expected string
	}{
		{name: "relative joined", base: "/work", path: "package.json", expected: "/work/package.json"},
		{name: "absolute kept", base: "/work", path: "/etc/catalog.json", expected: "/etc/catalog.json"},
		{name: "empty path", base: "/work", path: "", expected: ""},
		{name: "empty base", base: "", path: ".llm-docs", expected: ".llm-docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.expected), ResolvePath(tt.base, tt.path))
		})
	}
}
