package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapScope/internal/aggregate"
	"swapScope/internal/config"
	"swapScope/internal/model"
	"swapScope/internal/registry"
	"swapScope/internal/report"
	"swapScope/internal/storage"
	"swapScope/internal/storage/postgres"
)

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadAnalyze(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Input == "" {
		return fmt.Errorf("input path is required")
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := storage.ReadLogRecords(cfg.Input)
	if err != nil {
		return err
	}

	logger.Info("analyze start",
		zap.String("in", cfg.Input),
		zap.Int("records", len(records)),
	)

	analysis := aggregate.Analyze(records, reg)

	if err := writeReport(cfg, analysis, reg); err != nil {
		return err
	}

	if cfg.JSONOut != "" {
		if err := writeAnalysisJSON(cfg.JSONOut, analysis); err != nil {
			return err
		}
	}

	if cfg.PGDSN != "" {
		txRef := cfg.TxRef
		if txRef == "" {
			txRef = filepath.Base(cfg.Input)
		}

		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()

		if err := store.SaveAnalysis(ctx, txRef, analysis); err != nil {
			return fmt.Errorf("save analysis: %w", err)
		}

		logger.Info("analysis archived",
			zap.String("tx_ref", txRef),
			zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		)
	}

	logger.Info("analyze complete",
		zap.Int("swaps", analysis.Summary.TotalSwaps),
		zap.Int("transfers", analysis.Summary.TotalTransfers),
		zap.Int("tokens", len(analysis.Summary.TokensInvolved)),
		zap.Int("paths", len(analysis.Summary.PotentialSwapPaths)),
	)

	return nil
}

func buildRegistry(cfg config.AnalyzeConfig) (*registry.Registry, error) {
	signatures, err := config.ParseKeyValues(cfg.Signatures)
	if err != nil {
		return nil, fmt.Errorf("parse signature map: %w", err)
	}

	tokens, err := config.ParseKeyValues(cfg.Tokens)
	if err != nil {
		return nil, fmt.Errorf("parse token map: %w", err)
	}

	decimals, err := config.ParseDecimals(cfg.Decimals)
	if err != nil {
		return nil, fmt.Errorf("parse decimals map: %w", err)
	}

	return registry.Default().Extend(registry.Config{
		Signatures: signatures,
		Tokens:     tokens,
		Decimals:   decimals,
	})
}

func writeReport(cfg config.AnalyzeConfig, analysis *model.Analysis, reg *registry.Registry) error {
	renderer := report.Renderer{MaxTransferRows: cfg.MaxTransferRows}

	if cfg.ReportOut == "" {
		return renderer.Render(os.Stdout, analysis, reg)
	}

	if dir := filepath.Dir(cfg.ReportOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	file, err := os.Create(cfg.ReportOut)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if err := renderer.Render(file, analysis, reg); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func writeAnalysisJSON(path string, analysis *model.Analysis) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create json dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}

	return nil
}

// redactDSN keeps connection strings out of log output.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}

	return "***"
}
