package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tyrone-yanaga/product-launcher/internal/config"
	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"github.com/tyrone-yanaga/product-launcher/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "salesopt %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				if info := buildInfo(); info != "" {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "salesopt",
		Short:         "Sales price optimizer client",
		Long:          "Submit historical sales data with pricing bounds to the sales price optimizer and review the projected optimum",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")
	root.PersistentFlags().String("base-url", "", "Optimizer base URL (overrides optimizer.base_url)")

	verCmd := versionCmd()
	verCmd.Flags().BoolP("verbose", "v", false, "Include Go build information")

	root.AddCommand(optimizeCmd())
	root.AddCommand(tuiCmd())
	root.AddCommand(verCmd)
	return root
}

// addRequestFlags registers the flags shared by optimize and tui
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "i", "", "Sales data file (.csv, .xlsx, .xls)")
	cmd.Flags().String("production-cost", "", "Production cost per unit")
	cmd.Flags().String("viable-sales-price", "", "Minimum viable sales price")
	cmd.Flags().String("max-sales-price", "", "Maximum sales price")
	cmd.Flags().StringP("request", "r", "", "YAML request preset naming the file and pricing parameters")
}

// requestFromFlags combines an optional preset with explicit flags; flags win
func requestFromFlags(cmd *cobra.Command) (string, domain.FormInputs, error) {
	var (
		filePath string
		inputs   domain.FormInputs
	)

	if presetPath, _ := cmd.Flags().GetString("request"); presetPath != "" {
		preset, err := config.NewInputParser().LoadFromFile(presetPath)
		if err != nil {
			return "", inputs, err
		}
		filePath = preset.FilePath()
		inputs = preset.Inputs
	}

	if cmd.Flags().Changed("file") {
		filePath, _ = cmd.Flags().GetString("file")
	}
	for flag, field := range map[string]string{
		"production-cost":    domain.FieldProductionCost,
		"viable-sales-price": domain.FieldViableSalesPrice,
		"max-sales-price":    domain.FieldMaxSalesPrice,
	} {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			inputs.Set(field, value)
		}
	}
	return filePath, inputs, nil
}

// loadConfig reads app configuration with the persistent flags bound on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	if err := v.BindPFlag("optimizer.base_url", cmd.Flags().Lookup("base-url")); err != nil {
		return nil, fmt.Errorf("failed to bind base-url flag: %w", err)
	}
	path, _ := cmd.Flags().GetString("config")
	return config.LoadWithViper(v, path)
}

// newLogger builds the command's logger; tui logs to a file instead of stderr
func newLogger(cmd *cobra.Command, cfg *config.Config, forTUI bool) (*zap.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if forTUI {
		return logging.ForTUI(cfg.Logging, level)
	}
	return logging.New(cfg.Logging, level)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
