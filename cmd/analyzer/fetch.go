package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"swapScope/internal/chain"
	"swapScope/internal/config"
	"swapScope/internal/storage"
)

func runFetch(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadFetch(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}
	if cfg.TxHash == "" {
		return fmt.Errorf("tx hash is required")
	}

	txHash, err := parseTxHash(cfg.TxHash)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	chainID, err := chainClient.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("chain id: %w", err)
	}

	logger.Info("fetch start",
		zap.String("chain_id", chainID.String()),
		zap.String("tx", txHash.Hex()),
		zap.String("out", cfg.Out),
		zap.Int("max_retries", cfg.MaxRetries),
	)

	var receipt *types.Receipt
	err = chain.WithRetry(ctx, cfg.MaxRetries, cfg.RetryBackoff, func(ctx context.Context) error {
		var fetchErr error
		receipt, fetchErr = chainClient.TransactionReceipt(ctx, txHash)
		return fetchErr
	})
	if err != nil {
		return fmt.Errorf("fetch receipt: %w", err)
	}

	records := chain.RecordsFromLogs(receipt.Logs)

	var sink storage.RecordSink = storage.NewJsonlStore(cfg.Out)
	if err := sink.PutLogBatch(records); err != nil {
		return err
	}

	logger.Info("fetch complete",
		zap.String("tx", txHash.Hex()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
		zap.Int("records", len(records)),
		zap.String("out", cfg.Out),
	)

	return nil
}

func parseTxHash(raw string) (common.Hash, error) {
	data, err := hexutil.Decode(strings.TrimSpace(raw))
	if err != nil {
		return common.Hash{}, fmt.Errorf("invalid tx hash: %s", raw)
	}
	if len(data) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid tx hash length: %s", raw)
	}

	return common.BytesToHash(data), nil
}
