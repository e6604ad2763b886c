package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagMessagesConfig string

var messagesCmd = &cobra.Command{
	Use:   "messages [preset]",
	Short: "Print the configured messages",
	Long:  `Prints the messages in the order presses cycle through them.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMessages,
}

func init() {
	messagesCmd.Flags().StringVar(&flagMessagesConfig, "config", "", "Path to custom config YAML")
}

func runMessages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(presetArg(args), flagMessagesConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, m := range cfg.Messages {
		fmt.Fprintf(out, "%2d  %s\n", i, m.Title)
		if m.Subtitle != "" {
			fmt.Fprintf(out, "    %s\n", m.Subtitle)
		}
	}
	return nil
}
