package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"roundtimer/internal/sound"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceOverrideCreatesAppDir(t *testing.T) {
	root := t.TempDir()
	service := NewService(root)

	configDir, err := service.GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, root, configDir)

	dir, err := service.AppDir("roundtimer")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "roundtimer"), dir)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSingleInstance(t *testing.T) {
	name := "roundtimer-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("port unavailable: %v", err)
	}

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestPortFromNameIsStable(t *testing.T) {
	port := portFromName("RoundTimer")
	assert.Equal(t, port, portFromName("RoundTimer"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestCommandBackendWithoutCommands(t *testing.T) {
	backend := &commandBackend{}
	assert.ErrorIs(t, backend.Play(context.Background(), "x.wav"), sound.ErrBackendUnavailable)
	assert.ErrorIs(t, backend.Speak(context.Background(), "Round 2"), sound.ErrBackendUnavailable)
}
