package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"launchpad-client/internal/config"
	"launchpad-client/internal/tui"
)

// NewRunCmd builds the CLI subcommand that starts the quiz session.
func NewRunCmd(configPath, serverAddr *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Log in and work through this week's questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(*configPath, *serverAddr, *debug)
		},
	}
}

func runClient(configPath, serverFlag string, debug bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		if err == nil {
			cfg = loaded
		}
	}
	if serverFlag != "" {
		cfg.Server.Addr = serverFlag
	}

	// The TUI owns the terminal, so debug output goes to a file or nowhere.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if debug || cfg.Debug.LogFile != "" {
		logPath := cfg.Debug.LogFile
		if logPath == "" {
			logPath = "launchpad-debug.log"
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
	}

	timeout := config.Timeout(cfg.Server.Timeout, 30*time.Second)
	model := tui.NewModel(cfg.Server.Addr, timeout, logger)

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok {
		if ferr := m.FatalErr(); ferr != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to server.")
			return ferr
		}
	}
	return nil
}
