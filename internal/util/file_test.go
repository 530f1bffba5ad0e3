package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Python (Basic)", "Python (Basic)"},
		{"CI/CD", "CI-CD"},
		{`a\b:c*d`, "a-b-c-d"},
		{`what?"x"<y>`, "what'x'y"},
		{"  ..hidden.. ", "hidden"},
		{"", "certificate"},
		{"../..", "-"},
		{"line\nbreak", "line break"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeFilename(tt.in), "input %q", tt.in)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
}
