package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-glimmer/internal/config"
	"github.com/vovakirdan/tui-glimmer/internal/core"
	"github.com/vovakirdan/tui-glimmer/internal/host"
	"github.com/vovakirdan/tui-glimmer/internal/platform/tui"
)

var (
	flagConfig   string
	flagNoHost   bool
	flagTitle    string
	flagSubtitle string
)

var showCmd = &cobra.Command{
	Use:   "show [preset]",
	Short: "Run the page",
	Long: `Run the page with the given preset (default: classic).

Controls:
  Space/Enter/Click  - Reveal, then cycle messages
  :                  - Command bar
  ?                  - Toggle help
  Q/Ctrl+C           - Quit

Command bar:
  message <title> [subtitle]  - Replace the displayed text
  color <#hex|name>           - Change the particle color
  add <count>                 - Add ambient particles

Examples:
  glimmer show
  glimmer show calm
  glimmer show ripple --title "Welcome" --subtitle "Glad you made it"
  glimmer show --config ./my-glimmer.yaml --no-host`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	showCmd.Flags().BoolVar(&flagNoHost, "no-host", false, "Do not take over the terminal window (no alt screen, title or background)")
	showCmd.Flags().StringVar(&flagTitle, "title", "", "Override the first message title")
	showCmd.Flags().StringVar(&flagSubtitle, "subtitle", "", "Override the first message subtitle")
}

func runShow(cmd *cobra.Command, args []string) error {
	presetID := presetArg(args)

	cfg, err := loadConfig(presetID, flagConfig)
	if err != nil {
		return err
	}
	overrideFirstMessage(&cfg, flagTitle, flagSubtitle)

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size; the first WindowSizeMsg corrects it anyway
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	h := host.Probe(os.Stdout, flagNoHost)
	logger.Info("starting", "preset", presetID, "host", h.Name(), "cols", width, "rows", height)

	err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Host:   h,
		Logger: logger,
	})
	if err != nil {
		logger.Error("page stopped", "error", err)
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}

// overrideFirstMessage replaces the first message's non-empty fields.
func overrideFirstMessage(cfg *config.Config, title, subtitle string) {
	if len(cfg.Messages) == 0 {
		return
	}
	if title != "" {
		cfg.Messages[0].Title = title
	}
	if subtitle != "" {
		cfg.Messages[0].Subtitle = subtitle
	}
}
