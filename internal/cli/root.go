package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	serverAddr string
	configPath string
	debug      bool
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envServer := os.Getenv("LAUNCHPAD_SERVER")
	envConfig := os.Getenv("LAUNCHPAD_CONFIG")

	cmd := &cobra.Command{
		Use:   "launchpad",
		Short: "Terminal client for the Logic Launchpad weekly quiz",
	}

	cmd.PersistentFlags().StringVar(&serverAddr, "server", envServer, "quiz server address (host:port)")
	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log next to the binary")
	cmd.AddCommand(NewRunCmd(&configPath, &serverAddr, &debug))
	return cmd
}
