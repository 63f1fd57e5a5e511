package guard_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corrector/pkg/guard"
)

func writeProtectedFile(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "protected.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProtectedSetDualInsertion(t *testing.T) {
	path := writeProtectedFile(t, "New York", "# a comment", "", "IL-6")
	g, err := guard.Build(path, nil, guard.SkipFlags{})
	require.NoError(t, err)

	assert.True(t, g.IsProtected("New York"))
	assert.True(t, g.IsProtected("new york"))
	assert.True(t, g.IsProtected("newyork"))
	assert.True(t, g.IsProtected("IL-6"))
	assert.True(t, g.IsProtected("il-6"))
}

func TestCallerPattern(t *testing.T) {
	g, err := guard.Build("", []guard.PatternSpec{
		{Source: `^[A-Z]{3,4}\d+$`},
	}, guard.SkipFlags{})
	require.NoError(t, err)

	assert.True(t, g.IsProtected("CDK10"))
	assert.False(t, g.IsProtected("cdk10"))
}

func TestSkipURLs(t *testing.T) {
	g, err := guard.Build("", nil, guard.SkipFlags{URLs: true})
	require.NoError(t, err)

	assert.True(t, g.IsProtected("https://example.com"))
	assert.True(t, g.IsProtected("www.example.com"))
	assert.False(t, g.IsProtected("helo"))
}

func TestSkipCodePatterns(t *testing.T) {
	g, err := guard.Build("", nil, guard.SkipFlags{CodePatterns: true})
	require.NoError(t, err)

	assert.True(t, g.IsProtected("someCamelCase"))
	assert.True(t, g.IsProtected("SOME_SCREAMING_SNAKE"))
	assert.True(t, g.IsProtected("my.dotted.path"))
}

func TestMalformedPatternFailsBuild(t *testing.T) {
	_, err := guard.Build("", []guard.PatternSpec{{Source: `(`}}, guard.SkipFlags{})
	assert.Error(t, err)
}

func TestMissingProtectedFileFailsBuild(t *testing.T) {
	_, err := guard.Build("/nonexistent/protected.txt", nil, guard.SkipFlags{})
	assert.Error(t, err)
}
