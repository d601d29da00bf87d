package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/llmdocs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeManifest(t, `{
		"name": "my-app",
		"version": "1.0.0",
		"dependencies": {"zod": "^3.0.0", "react": "^18.2.0"},
		"devDependencies": {"left-pad": "^1.0.0"},
		"peerDependencies": {"react-dom": ">=18"}
	}`)

	m, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"zod", "react"}, m.Dependencies.Names())
	assert.Equal(t, []string{"left-pad"}, m.DevDependencies.Names())
	assert.Equal(t, []string{"react-dom"}, m.PeerDependencies.Names())

	v, ok := m.Dependencies.Version("react")
	assert.True(t, ok)
	assert.Equal(t, "^18.2.0", v)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrManifestUnreadable)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "malformed json", input: `{"dependencies": {`, wantErr: ErrInvalidFormat},
		{name: "empty file", input: ``, wantErr: ErrInvalidFormat},
		{name: "null document", input: `null`, wantErr: ErrInvalidFormat},
		{name: "array document", input: `["zod"]`, wantErr: ErrInvalidFormat},
		{name: "section is an array", input: `{"dependencies": ["zod"]}`, wantErr: ErrInvalidSection},
		{name: "version is a number", input: `{"devDependencies": {"zod": 3}}`, wantErr: ErrInvalidSection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrManifestUnreadable)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFromBytes_NullSection(t *testing.T) {
	m, err := LoadFromBytes([]byte(`{"dependencies": null, "devDependencies": {"zod": "^3"}}`))
	require.NoError(t, err)

	assert.Zero(t, m.Dependencies.Len())
	assert.Equal(t, []string{"zod"}, m.AllNames())
}

func TestAllNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty manifest",
			input:    `{}`,
			expected: []string{},
		},
		{
			name:     "runtime then dev then peer",
			input:    `{"peerDependencies": {"c": "1"}, "devDependencies": {"b": "1"}, "dependencies": {"a": "1"}}`,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "file order within a section",
			input:    `{"dependencies": {"zod": "1", "axios": "1", "moment": "1"}}`,
			expected: []string{"zod", "axios", "moment"},
		},
		{
			name:     "duplicates across sections counted once at first occurrence",
			input:    `{"dependencies": {"react": "18"}, "devDependencies": {"vitest": "1", "react": "18"}, "peerDependencies": {"react": ">=17", "vitest": "1"}}`,
			expected: []string{"react", "vitest"},
		},
		{
			name:     "duplicate key inside a section",
			input:    `{"dependencies": {"zod": "1", "zod": "2"}}`,
			expected: []string{"zod"},
		},
		{
			name:     "runtime and dev sections",
			input:    `{"dependencies":{"zod":"^3.0.0"},"devDependencies":{"left-pad":"^1.0.0"}}`,
			expected: []string{"zod", "left-pad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadFromBytes([]byte(tt.input))
			require.NoError(t, err)

			names := m.AllNames()
			assert.Equal(t, tt.expected, names)

			seen := make(map[string]bool)
			for _, n := range names {
				assert.False(t, seen[n], "duplicate name %s", n)
				seen[n] = true
				_, declared := m.ClassOf(n)
				assert.True(t, declared, "name %s not in any section", n)
			}
		})
	}
}

func TestClassOf(t *testing.T) {
	m, err := LoadFromBytes([]byte(`{"devDependencies": {"react": "18"}, "peerDependencies": {"react": "18", "vue": "3"}}`))
	require.NoError(t, err)

	c, ok := m.ClassOf("react")
	assert.True(t, ok)
	assert.Equal(t, ClassDevelopment, c)

	c, ok = m.ClassOf("vue")
	assert.True(t, ok)
	assert.Equal(t, ClassPeer, c)

	_, ok = m.ClassOf("svelte")
	assert.False(t, ok)
}

func TestNewSection(t *testing.T) {
	s := NewSection("zod", "^3", "react", "^18", "zod", "^4")

	assert.Equal(t, []string{"zod", "react"}, s.Names())
	v, _ := s.Version("zod")
	assert.Equal(t, "^4", v)

	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "zod", s.Names()[0])
}
