package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tyrone-yanaga/product-launcher/internal/config"
	"github.com/tyrone-yanaga/product-launcher/internal/display"
	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"github.com/tyrone-yanaga/product-launcher/internal/optimizer"
	"github.com/tyrone-yanaga/product-launcher/internal/output"
	"github.com/tyrone-yanaga/product-launcher/internal/session"
)

func optimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Submit sales data and print the optimal price",
		Example: `  salesopt optimize --file sales.csv --production-cost 10 --viable-sales-price 15 --max-sales-price 30
  salesopt optimize --request launch.yaml --format json --save`,
		Args: cobra.NoArgs,
		RunE: runOptimize,
	}

	addRequestFlags(cmd)
	cmd.Flags().StringP("format", "f", "table", "Output format ("+strings.Join(output.FormatNames(), ", ")+")")
	cmd.Flags().Bool("save", false, "Also write the output to a timestamped file")
	cmd.Flags().Duration("timeout", 0, "Abandon the request after this long (0 waits indefinitely)")
	return cmd
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.FormatNames(), ", "))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	filePath, inputs, err := requestFromFlags(cmd)
	if err != nil {
		return err
	}

	var file *domain.SelectedFile
	if filePath != "" {
		if file, err = config.LoadSelectedFile(filePath); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	client := optimizer.NewClient(cfg.Optimizer, logger)
	logger.Debug("submitting", zap.Stringer("client", client), zap.String("file", filePath))

	start := time.Now()
	state := session.New(logger).Submit(ctx, client, file, inputs)
	if state.Kind != session.Success {
		return errors.New(state.Message)
	}
	logger.Info("optimization complete",
		zap.String("request_id", state.RequestID),
		zap.Duration("elapsed", time.Since(start)))

	model := display.NewProjector(cfg.Display.LanguageTag()).Project(state.Result)
	data, err := formatter.Format(model)
	if err != nil {
		return fmt.Errorf("failed to format %s output: %w", formatter.Name(), err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		filename, err := output.WriteFormatted(formatter, model, saveExtension(formatter.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved results to %s\n", filename)
	}
	return nil
}

func saveExtension(format string) string {
	if format == "table" {
		return "txt"
	}
	return format
}
