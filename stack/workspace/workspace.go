// Package workspace locates the development workspace and describes the
// services that make up the stack.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codebrew-ai/devstack/stack/launcher"
)

// BaseDir returns the absolute directory containing the running
// executable. The workspace layout (livekit-server binary, backend/ and
// frontend/ subdirectories) is anchored here.
func BaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("workspace: resolve executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("workspace: resolve symlinks: %w", err)
	}
	return filepath.Dir(resolved), nil
}

// Services returns the launch descriptors for the three stack services,
// anchored at baseDir. Order matters: it is the order the launcher
// spawns them in.
func Services(baseDir string) []launcher.Descriptor {
	return []launcher.Descriptor{
		{
			Name:    "media server",
			Command: filepath.Join(baseDir, "livekit-server"),
			Args:    []string{"--dev"},
			Dir:     baseDir,
		},
		{
			Name:          "backend agent",
			Command:       "uv",
			Args:          []string{"run", "python", "src/agent.py", "dev"},
			Dir:           filepath.Join(baseDir, "backend"),
			KeepShellOpen: true,
		},
		{
			Name:          "frontend",
			Command:       "npx",
			Args:          []string{"pnpm", "dev"},
			Dir:           filepath.Join(baseDir, "frontend"),
			KeepShellOpen: true,
		},
	}
}
