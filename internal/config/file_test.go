package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileEmptyPathReturnsZeroValue(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func TestLoadFileMissingPathReturnsZeroValue(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func TestLoadFileParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	contents := `
log_level = "debug"
default_chunk_len_s = 30.0
default_vad_preset = "aggressive"
worker_pool_size = 2
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30.0, cfg.DefaultChunkLenS)
	assert.Equal(t, "aggressive", cfg.DefaultVADPreset)
	assert.Equal(t, 2, cfg.WorkerPoolSize)
}

func TestLoadFileRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
