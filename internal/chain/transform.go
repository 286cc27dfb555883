package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"swapScope/internal/model"
)

// RecordsFromLogs converts receipt logs into the analyzer's record form,
// hex-encoded the way log-dump files store them. Addresses are lowered
// from their checksummed form; receipt order is preserved.
func RecordsFromLogs(logs []*types.Log) []model.LogRecord {
	records := make([]model.LogRecord, 0, len(logs))
	for _, log := range logs {
		if log == nil {
			continue
		}

		topics := make([]string, 0, len(log.Topics))
		for _, topic := range log.Topics {
			topics = append(topics, topic.Hex())
		}

		records = append(records, model.LogRecord{
			Index:   uint64(log.Index),
			Address: strings.ToLower(log.Address.Hex()),
			Topics:  topics,
			Data:    hexutil.Encode(log.Data),
		})
	}
	return records
}
