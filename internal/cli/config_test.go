package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourtree/internal/bench"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tourbench.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
size = 2048
procs = 8
nearest = "rtree"
two_opt = true
time_limit = "250ms"
max_y = 2.5
`)

	cfg, err := loadConfig(path, bench.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.Size)
	assert.Equal(t, 8, cfg.Procs)
	assert.Equal(t, "rtree", cfg.Nearest)
	assert.True(t, cfg.TwoOpt)
	assert.Equal(t, 250*time.Millisecond, cfg.TimeLimit)
	assert.Equal(t, 2.5, cfg.MaxY)

	// Untouched keys keep their defaults.
	assert.Equal(t, 150, cfg.MinSize)
	assert.True(t, cfg.GuardRing)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeConfig(t, "size = 10\nthreads = 3\n")

	_, err := loadConfig(path, bench.DefaultConfig())
	require.ErrorIs(t, err, errUnknownKeys)
	assert.Contains(t, err.Error(), "threads")
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), bench.DefaultConfig())
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "size = \"many\"\n"), bench.DefaultConfig())
	assert.Error(t, err)
}
