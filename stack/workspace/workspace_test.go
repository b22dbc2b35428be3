package workspace_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codebrew-ai/devstack/stack/workspace"
)

func TestBaseDirIsAbsolute(t *testing.T) {
	dir, err := workspace.BaseDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}

func TestServicesAnchoredAtBaseDir(t *testing.T) {
	base := filepath.Join("/home", "dev", "voice-ai")
	services := workspace.Services(base)
	require.Len(t, services, 3)

	assert.Equal(t, base, services[0].Dir)
	assert.Equal(t, filepath.Join(base, "backend"), services[1].Dir)
	assert.Equal(t, filepath.Join(base, "frontend"), services[2].Dir)
}

func TestServicesDescriptors(t *testing.T) {
	base := t.TempDir()
	services := workspace.Services(base)
	require.Len(t, services, 3)

	media := services[0]
	assert.Equal(t, "media server", media.Name)
	assert.Equal(t, filepath.Join(base, "livekit-server"), media.Command)
	assert.Equal(t, []string{"--dev"}, media.Args)
	assert.False(t, media.KeepShellOpen)

	backend := services[1]
	assert.Equal(t, "backend agent", backend.Name)
	assert.Equal(t, "uv", backend.Command)
	assert.Equal(t, []string{"run", "python", "src/agent.py", "dev"}, backend.Args)
	assert.True(t, backend.KeepShellOpen)

	frontend := services[2]
	assert.Equal(t, "frontend", frontend.Name)
	assert.Equal(t, "npx", frontend.Command)
	assert.Equal(t, []string{"pnpm", "dev"}, frontend.Args)
	assert.True(t, frontend.KeepShellOpen)
}
