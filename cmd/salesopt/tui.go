package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
	"github.com/tyrone-yanaga/product-launcher/internal/optimizer"
	"github.com/tyrone-yanaga/product-launcher/internal/session"
	"github.com/tyrone-yanaga/product-launcher/internal/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal UI",
		Long:  "Fill in the sales data file and pricing bounds interactively and browse the projected results. Logs go to a file (logging.output_file, default salesopt-tui.log).",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	addRequestFlags(cmd)
	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg, true)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	filePath, inputs, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	client := optimizer.NewClient(cfg.Optimizer, logger)
	model := tui.NewModel(tui.Options{
		Session:   session.New(logger),
		Optimizer: client,
		Projector: display.NewProjector(cfg.Display.LanguageTag()),
		Logger:    logger,
		Context:   cmd.Context(),
		FilePath:  filePath,
		Inputs:    inputs,
		Endpoint:  client.Endpoint(),
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if ctx := cmd.Context(); ctx != nil {
		opts = append(opts, tea.WithContext(ctx))
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return err
	}
	return nil
}
