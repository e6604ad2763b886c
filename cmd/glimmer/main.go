// glimmer is a terminal page that reveals a hidden message over a drifting
// particle field.
//
// Usage:
//
//	glimmer show [preset]       - Run the page
//	glimmer list                - List available presets
//	glimmer config [preset]     - Print the effective configuration
//	glimmer messages [preset]   - Print the message list
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for a reproducible field
//	--log-file <path>   - Append logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-glimmer/internal/config"
	"github.com/vovakirdan/tui-glimmer/internal/presets"
	"github.com/vovakirdan/tui-glimmer/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glimmer",
	Short: "Glimmer - a hidden message under a particle field",
	Long: `Glimmer shows a drifting particle field with a hidden message.
Press space or click anywhere to reveal it, and again to cycle through
the configured messages.

Available commands:
  show      - Run the page
  list      - Show all presets
  config    - Print the effective configuration as YAML
  messages  - Print the configured messages

Examples:
  glimmer show
  glimmer show ripple --title "Happy birthday"
  glimmer show --config ./my-glimmer.yaml
  glimmer config calm > my-glimmer.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(messagesCmd)
}

// newLogger opens the log destination. Logs never go to the terminal the
// page is drawn on; without --log-file they are discarded.
func newLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "glimmer",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

// presetArg returns the preset named on the command line, or the default.
func presetArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return presets.DefaultID
}

// loadConfig loads the configuration from path (or the search order) and
// applies the preset on top of it.
func loadConfig(presetID, path string) (config.Config, error) {
	if !registry.Exists(presetID) {
		return config.Config{}, fmt.Errorf("unknown preset %q (run 'glimmer list')", presetID)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := registry.Apply(presetID, &cfg); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
