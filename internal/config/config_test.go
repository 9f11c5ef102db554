package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesper-lang/vesper/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "", cfg.StdlibPath)
	require.Equal(t, filepath.Join(dir, "stdlib"), cfg.ResolvedStdlibPath(dir))
}

func TestLoad_ParsesFile(t *testing.T) {
	dir := t.TempDir()
	contents := "stdlib_path: /opt/vesper/stdlib\nsearch_paths:\n  - /extra/a\n  - /extra/b\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vesper.yaml"), []byte(contents), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "/opt/vesper/stdlib", cfg.StdlibPath)
	require.Equal(t, []string{"/extra/a", "/extra/b"}, cfg.SearchPaths)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	contents := "stdlib_path: /opt/vesper/stdlib\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vesper.yaml"), []byte(contents), 0o644))

	t.Setenv("VESPER_STDLIB", "/env/stdlib")
	t.Setenv("VESPER_PATH", "/env/a"+string(os.PathListSeparator)+"/env/b")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "/env/stdlib", cfg.StdlibPath)
	require.Equal(t, []string{"/env/a", "/env/b"}, cfg.SearchPaths)
}

func TestIsCaseSensitive_ExplicitOverride(t *testing.T) {
	yes := true
	cfg := &config.Config{CaseSensitive: &yes}
	require.True(t, cfg.IsCaseSensitive())

	no := false
	cfg = &config.Config{CaseSensitive: &no}
	require.False(t, cfg.IsCaseSensitive())
}
