package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osgames/curator/internal/fileutil"
	"github.com/osgames/curator/internal/gen"
)

func TestNewTocCommand(t *testing.T) {
	cmd := NewTocCommand()

	assert.Equal(t, "toc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.RunE)
}

func TestTocCommandRegeneratesListings(t *testing.T) {
	root := catalogFixture(t)

	output, err := runCurator(t, "toc", "--dir", root)
	require.NoError(t, err)

	assert.Contains(t, output, "generate toc for action")
	assert.Contains(t, output, "generate toc for strategy")

	want := "# Action\n\n" +
		gen.StartMarker + "\n" +
		"- **[Alpha Strike](alpha.md)** (C, MIT, beta)\n" +
		"- **[Zelda Classic](zelda.md)** (C++, GPL-3.0, mature)\n" +
		"\n" +
		gen.EndMarker + "\n"
	assert.Equal(t, want, readFile(t, filepath.Join(root, "games", "action", "_toc.md")))

	assert.Contains(t, readFile(t, filepath.Join(root, "games", "strategy", "_toc.md")),
		"- **[Widelands](widelands.md)** (C++, GPL-2.0, mature)\n")
}

func TestTocCommandFailsWhenLocked(t *testing.T) {
	root := catalogFixture(t)

	lock := fileutil.NewLock(filepath.Join(root, ".curator.lock"))
	acquired, err := lock.TryLock()
	require.NoError(t, err)
	require.True(t, acquired)
	defer lock.Unlock()

	output, err := runCurator(t, "toc", "--dir", root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked by another process")
	assert.Contains(t, output, "catalog is locked")
}
