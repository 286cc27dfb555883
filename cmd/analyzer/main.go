package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "analyzer",
		Short:        "Transaction swap analyzer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one transaction's receipt logs over RPC",
		RunE:  runFetch,
	}

	fetchCmd.Flags().String("rpc", "", "RPC URL")
	fetchCmd.Flags().String("tx", "", "transaction hash")
	fetchCmd.Flags().String("out", "./data/tx_logs.jsonl", "output JSONL path")
	fetchCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	fetchCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	fetchCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(fetchCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a records file and render the swap report",
		RunE:  runAnalyze,
	}

	analyzeCmd.Flags().String("in", "", "input records file (JSONL or JSON array)")
	analyzeCmd.Flags().String("report", "", "report output path, stdout when empty")
	analyzeCmd.Flags().String("json", "", "optional analysis JSON output path")
	analyzeCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for archiving")
	analyzeCmd.Flags().String("tx", "", "transaction reference for the archive row")
	analyzeCmd.Flags().StringSlice("signature", nil, "extra topic0=kind mappings (comma-separated key=value)")
	analyzeCmd.Flags().StringSlice("token", nil, "extra address=symbol mappings (comma-separated key=value)")
	analyzeCmd.Flags().StringSlice("decimals", nil, "extra symbol=decimals mappings (comma-separated key=value)")
	analyzeCmd.Flags().Int("max-transfer-rows", 15, "transfer rows shown before truncation")
	analyzeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(analyzeCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
