package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codebrew-ai/devstack/stack/launcher"
	"github.com/codebrew-ai/devstack/stack/workspace"
)

var baseDir string

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Start the media server, backend agent and frontend dev server",
	Long: `Start the three stack services as detached processes:

  livekit-server --dev          in the workspace directory
  uv run python src/agent.py dev  in backend/
  npx pnpm dev                    in frontend/

All three are spawned in order and left running; devstack returns
immediately and does not supervise them.`,
	Args: cobra.NoArgs,
	RunE: runUp,
}

func runUp(cmd *cobra.Command, args []string) error {
	dir := baseDir
	if dir == "" {
		var err error
		dir, err = workspace.BaseDir()
		if err != nil {
			return err
		}
	}

	launcherInstance := launcher.NewLauncher(nil)
	return launcherInstance.Up(workspace.Services(dir))
}

func init() {
	rootCmd.AddCommand(upCmd)
	rootCmd.PersistentFlags().StringVarP(&baseDir, "base-dir", "b", "", "Workspace directory (defaults to the directory containing devstack)")
}
