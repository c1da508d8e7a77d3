package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resxcheck/internal/grouping"
)

func TestAffectedGroupsMatchesRelativeChanges(t *testing.T) {
	root := t.TempDir()
	prevDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prevDir))
	})

	groups := []grouping.Group{
		{
			Name:     "Strings",
			BasePath: filepath.Join(root, "res", "Strings.resx"),
			Satellites: []grouping.Satellite{
				{Path: filepath.Join(root, "res", "Strings.fr.resx"), Culture: "fr"},
			},
		},
		{
			Name:     "Errors",
			BasePath: filepath.Join(root, "res", "Errors.resx"),
		},
	}

	// Event paths arrive relative to the watched directory; group paths are
	// absolute. Both spellings must select the same group.
	affected := affectedGroups(groups, []string{filepath.Join("res", "Strings.resx")})
	require.Len(t, affected, 1)
	assert.Equal(t, "Strings", affected[0].Name)

	affected = affectedGroups(groups, []string{filepath.Join(root, "res", "Strings.fr.resx")})
	require.Len(t, affected, 1)
	assert.Equal(t, "Strings", affected[0].Name)

	affected = affectedGroups(groups, []string{filepath.Join("res", "Other.resx")})
	assert.Empty(t, affected)
}
