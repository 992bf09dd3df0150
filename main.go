package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/config"
	"github.com/qyinm/shoptui/logging"
	"github.com/qyinm/shoptui/types"
	"github.com/qyinm/shoptui/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "shoptui",
	Short: "Master-detail shopping list for the terminal",
	Long: `shoptui shows a shopping catalog as a list with a detail pane.

Wide terminals get both panes side by side; narrow terminals show the list
and open the detail screen on selection. Esc returns to the list.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shoptui/config.yaml)")
	flags.String("layout", config.LayoutAuto, "layout: auto, wide or narrow")
	flags.Int("wide-threshold", config.DefaultWideThreshold, "terminal width at which the auto layout turns wide")
	flags.Bool("mouse", true, "enable mouse clicks on rows and the back control")
	flags.String("catalog", "", "YAML catalog file (default: built-in catalog)")
	flags.String("log-file", "", "write JSON logs to this file")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
}

func run(cfg config.Config) error {
	logger, err := logging.New(logging.Options{Path: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	opts := []ui.Option{
		ui.WithLogger(logger),
		ui.WithWideThreshold(cfg.UI.WideThreshold),
	}
	if cfg.UI.Layout != config.LayoutAuto {
		mode, err := types.ParseLayoutMode(cfg.UI.Layout)
		if err != nil {
			return err
		}
		opts = append(opts, ui.WithForcedLayout(mode))
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	logger.Info("starting shoptui",
		zap.Int("products", cat.Len()),
		zap.String("layout", cfg.UI.Layout),
		zap.Int("wide_threshold", cfg.UI.WideThreshold),
	)

	p := tea.NewProgram(ui.NewModel(cat, opts...), programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
