package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codebrew-ai/devstack/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "devstack",
	Short: "devstack starts the local voice-AI development stack",
	Long: `devstack starts the three components of the local voice-AI development
stack (LiveKit media server, backend agent, frontend dev server) as detached
processes sharing this console. Running devstack with no arguments is the
same as running devstack up.`,
	RunE: runUp,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := &logger.Config{}
		if debug {
			cfg.Level = "debug"
		}
		logger.SetGlobalLogger(logger.New(cfg, "devstack"))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
