package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"helpize/internal/tui"
	"helpize/pkg/logger"
)

var (
	darkMode bool
	logFile  string
	logLevel string
)

// rootCmd runs the interactive volunteer app in the terminal.
var rootCmd = &cobra.Command{
	Use:   "volunteer",
	Short: "Community volunteering app for the terminal",
	Long: `Browse your profile, review event posts and, once a post is accepted,
submit and view volunteering activities from the dashboard.`,
	SilenceUsage: true,
	RunE:         runVolunteer,
}

func init() {
	rootCmd.Flags().BoolVar(&darkMode, "dark", false, "Start in dark mode")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level when --log-file is set")
}

func runVolunteer(cmd *cobra.Command, args []string) error {
	output := "discard"
	if logFile != "" {
		output = logFile
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(logLevel),
		Format:  "json",
		Output:  output,
		AppName: "helpize-volunteer",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	program := tea.NewProgram(tui.New(tui.Config{
		Dark:   darkMode,
		Logger: log,
	}), tea.WithAltScreen())

	_, err = program.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
