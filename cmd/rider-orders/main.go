package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/joseph-ayodele/rider-orders/internal/common"
	"github.com/joseph-ayodele/rider-orders/internal/export"
	"github.com/joseph-ayodele/rider-orders/internal/ingest"
	"github.com/joseph-ayodele/rider-orders/internal/llm/openai"
	"github.com/joseph-ayodele/rider-orders/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(os.Stderr, cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = common.WithRunID(ctx, uuid.New().String())

	if err := run(ctx, afero.NewOsFs(), cfg, logger, os.Stdout); err != nil {
		stop()
		os.Exit(1)
	}
}

// run lists the input folder, extracts every entry and writes the report.
// A missing input folder returns before anything is written.
func run(ctx context.Context, fs afero.Fs, cfg *common.Config, logger *slog.Logger, out io.Writer) error {
	files, err := ingest.ListDirectory(fs, cfg.Batch.InputDir, cfg.Batch.OutputPath)
	if err != nil {
		if errors.Is(err, common.ErrDirNotFound) {
			logger.Error("input folder not found", "dir", cfg.Batch.InputDir)
		} else {
			logger.Error("failed to list input folder", "dir", cfg.Batch.InputDir, "error", err)
		}
		return err
	}
	logger.Info("starting batch",
		"run_id", common.RunIDFromContext(ctx),
		"dir", cfg.Batch.InputDir,
		"files", len(files),
		"model", cfg.LLM.Model,
	)

	client := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	processor := pipeline.NewProcessor(
		logger,
		fs,
		ingest.NewValidator(fs, cfg.Batch.MaxImageBytes, logger),
		client,
		pipeline.NewThrottle(cfg.Batch.CallDelay),
	)
	results, stats := processor.Run(ctx, files)

	// The report must still be written if the run was interrupted mid-way.
	exportService := export.NewService(logger)
	if err := exportService.WriteReport(context.WithoutCancel(ctx), fs, cfg.Batch.OutputPath, results); err != nil {
		logger.Error("failed to write report", "output", cfg.Batch.OutputPath, "error", err)
		return err
	}

	output := cfg.Batch.OutputPath
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}

	fmt.Fprintf(out, "Batch processing complete!\n")
	fmt.Fprintf(out, "- Files: %d\n", stats.Total)
	fmt.Fprintf(out, "- Recognized: %d\n", stats.Recognized)
	fmt.Fprintf(out, "- Incomplete: %d\n", stats.Partial)
	fmt.Fprintf(out, "- Unparsable: %d\n", stats.Unparsable)
	fmt.Fprintf(out, "- Call errors: %d\n", stats.CallErrors)
	fmt.Fprintf(out, "- Skipped: %d\n", stats.Skipped)
	fmt.Fprintf(out, "- Output: %s\n", output)
	return nil
}
