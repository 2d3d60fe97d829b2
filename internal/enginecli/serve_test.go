package enginecli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishikanthc/scriberr-engine/internal/audio"
	"github.com/rishikanthc/scriberr-engine/internal/jobrunner"
	"github.com/rishikanthc/scriberr-engine/internal/modelmanager"
)

func TestNewServeCommandRegistersExpectedFlags(t *testing.T) {
	cmd := NewServeCommand(Options{
		EngineName: "test-engine",
		NewPipeline: func(manager *modelmanager.Manager, decoder audio.Decoder) jobrunner.Pipeline {
			return nil
		},
	})

	for _, name := range []string{"socket", "host", "port", "log-level", "config", "backend-command", "log-dir"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "expected --%s to be registered", name)
	}
}

func TestListenRequiresSocketOrHostPort(t *testing.T) {
	flagSocket, flagHost, flagPort = "", "", 0
	_, err := listen()
	require.Error(t, err)
}

func TestListenOverUnixSocket(t *testing.T) {
	flagSocket = t.TempDir() + "/engine.sock"
	flagHost, flagPort = "", 0
	lis, err := listen()
	require.NoError(t, err)
	defer lis.Close()
	assert.Equal(t, "unix", lis.Addr().Network())
}

func TestListenOverTCP(t *testing.T) {
	flagSocket = ""
	flagHost, flagPort = "127.0.0.1", 0
	lis, err := listen()
	require.NoError(t, err)
	defer lis.Close()
	assert.Equal(t, "tcp", lis.Addr().Network())
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "info", orDefault("", "info"))
	assert.Equal(t, "debug", orDefault("debug", "info"))
}
