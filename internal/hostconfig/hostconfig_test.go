package hostconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing.toml"))
	s, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)
}

func TestLoadParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
method = "vni"
enabled = true
modern_tone = false
autocorrect_mode = "both"
`), 0o644))

	l := NewLoader(path)
	s, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, "vni", s.Method)
	require.False(t, s.ModernTone)
	require.Equal(t, "both", s.AutocorrectMode)
}

func TestImportLegacyINI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toggle.ini")
	require.NoError(t, os.WriteFile(path, []byte("[general]\nlayout = telex\nenabled = true\n"), 0o644))

	s, err := ImportLegacyINI(path)
	require.NoError(t, err)
	require.Equal(t, "telex", s.Method)
	require.True(t, s.Enabled)
}
