package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-glimmer/internal/config"
)

var flagPrintConfig string

var configCmd = &cobra.Command{
	Use:   "config [preset]",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a preset would run with, as YAML.
The output is a valid config file and can be edited and passed back
with --config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagPrintConfig, "config", "", "Path to custom config YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(presetArg(args), flagPrintConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
