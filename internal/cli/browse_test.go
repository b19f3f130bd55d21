package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowse_PlainSequence(t *testing.T) {
	setupCLITest(t)

	out, err := executeCLI(t, "browse", "--plain", "--total", "23", "--page", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "21. item 21")
	assert.Contains(t, out, "23. item 23")
	assert.NotContains(t, out, "20. item 20")
	assert.Contains(t, out, "21-23 of 23 items")
	assert.Contains(t, out, "3 of 3 pages")
}

func TestBrowse_PlainItemsFile(t *testing.T) {
	setupCLITest(t)

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbravo\ncharlie\ndelta\n"), 0o600))

	out, err := executeCLI(t, "browse", "--plain", "--items", path, "--page-sizes", "3", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "4. delta")
	assert.NotContains(t, out, "alpha")
	assert.Contains(t, out, "4-4 of 4 items")
	assert.Contains(t, out, "2 of 2 pages")
}

func TestBrowse_PlainStream(t *testing.T) {
	setupCLITest(t)

	out, err := executeCLI(t, "browse", "--plain", "--total", "25", "--stream", "--page", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "25. item 25")
	assert.Contains(t, out, "page 3")
	assert.NotContains(t, out, "of")
}

func TestBrowse_MissingItemsFile(t *testing.T) {
	setupCLITest(t)

	_, err := executeCLI(t, "browse", "--plain", "--items", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening items file")
}

func TestBrowse_UsesConfigFile(t *testing.T) {
	home := setupCLITest(t)

	dir := filepath.Join(home, ".pagectl")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	cfg := strings.Join([]string{
		`version: "1.0"`,
		"pagination:",
		"  page_sizes: [5, 15]",
		"  total_items: 12",
		"labels:",
		"  locale: en",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o600))

	out, err := executeCLI(t, "browse", "--plain", "--page", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "11-12 of 12 items")
	assert.Contains(t, out, "3 of 3 pages")
}

func TestBrowse_ExplicitConfigMissing(t *testing.T) {
	setupCLITest(t)

	_, err := executeCLI(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "browse", "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}
