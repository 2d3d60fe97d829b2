package enginelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithNoneLevelSkipsFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New("testengine", ELevel.None(), dir)
	require.NoError(t, err)
	defer log.Close()

	assert.False(t, log.ShouldLog(ELevel.Error()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	log, err := New("testengine", ELevel.Info(), dir)
	require.NoError(t, err)

	log.Log(ELevel.Info(), "hello world")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(filepath.Join(dir, "testengine.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello world")
	assert.Contains(t, string(data), "[Info]")
}

func TestShouldLogRespectsMinLevel(t *testing.T) {
	dir := t.TempDir()
	log, err := New("testengine", ELevel.Warn(), dir)
	require.NoError(t, err)
	defer log.Close()

	assert.True(t, log.ShouldLog(ELevel.Error()))
	assert.True(t, log.ShouldLog(ELevel.Warn()))
	assert.False(t, log.ShouldLog(ELevel.Info()))
	assert.False(t, log.ShouldLog(ELevel.Debug()))
}

func TestLogSanitizesSecretsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	log, err := New("testengine", ELevel.Info(), dir)
	require.NoError(t, err)

	log.Logf(ELevel.Info(), "loading with hf_token=%s", "hf_supersecret")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(filepath.Join(dir, "testengine.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hf_supersecret")
	assert.Contains(t, string(data), "REDACTED")
}

func TestPanicLogsThenPanics(t *testing.T) {
	dir := t.TempDir()
	log, err := New("testengine", ELevel.Info(), dir)
	require.NoError(t, err)
	defer log.Close()

	assert.Panics(t, func() {
		log.Panic(assert.AnError)
	})
}
