package classify

import (
	"strings"

	"swapScope/internal/amount"
	"swapScope/internal/model"
	"swapScope/internal/registry"
)

// Classifier walks a transaction's logs in emission order and reconstructs
// the events it recognizes.
type Classifier struct {
	registry *registry.Registry
}

// New returns a Classifier backed by reg.
func New(reg *registry.Registry) *Classifier {
	return &Classifier{registry: reg}
}

// Classify splits records into swap and transfer events, preserving input
// order. Records with no topics or an unregistered signature are dropped,
// as are transfers that do not index both parties; swap fields whose topics
// are absent degrade to empty strings.
func (c *Classifier) Classify(records []model.LogRecord) ([]model.SwapEvent, []model.TransferEvent) {
	swaps := make([]model.SwapEvent, 0)
	transfers := make([]model.TransferEvent, 0)

	for _, record := range records {
		if len(record.Topics) == 0 {
			continue
		}
		sig, ok := c.registry.Signature(record.Topics[0])
		if !ok {
			continue
		}

		switch sig.Kind {
		case registry.KindTransfer:
			if event, ok := c.transferEvent(record); ok {
				transfers = append(transfers, event)
			}
		case registry.KindPoolSwap:
			swaps = append(swaps, c.poolSwapEvent(record, sig.Label))
		case registry.KindAssetPairSwap:
			swaps = append(swaps, c.pairSwapEvent(record, sig.Label))
		}
	}

	return swaps, transfers
}

// transferEvent drops records that do not index both parties.
func (c *Classifier) transferEvent(record model.LogRecord) (model.TransferEvent, bool) {
	if len(record.Topics) < 3 {
		return model.TransferEvent{}, false
	}

	token := strings.ToLower(record.Address)
	symbol := c.registry.SymbolFor(token)
	raw := parseAmount(record.Data)

	return model.TransferEvent{
		LogIndex:        record.Index,
		Token:           symbol,
		TokenAddress:    token,
		From:            addressFromTopic(record.Topics[1]),
		To:              addressFromTopic(record.Topics[2]),
		Amount:          raw.String(),
		AmountFormatted: amount.Format(raw, c.registry.DecimalsFor(symbol)),
	}, true
}

// poolSwapEvent keeps the packed data payload verbatim; sender and
// recipient are filled only when the pool indexed them.
func (c *Classifier) poolSwapEvent(record model.LogRecord, label string) model.SwapEvent {
	detail := model.PoolSwapData{Data: record.Data}
	if len(record.Topics) > 1 {
		detail.Sender = addressFromTopic(record.Topics[1])
	}
	if len(record.Topics) > 2 {
		detail.Recipient = addressFromTopic(record.Topics[2])
	}

	return model.SwapEvent{
		LogIndex:    record.Index,
		PoolAddress: strings.ToLower(record.Address),
		EventType:   label,
		Detail:      detail,
	}
}

// pairSwapEvent fills the pool id and asset addresses only when their
// topics exist; the pool id stays verbatim, never address-truncated.
func (c *Classifier) pairSwapEvent(record model.LogRecord, label string) model.SwapEvent {
	detail := model.PairSwapData{}
	if len(record.Topics) > 1 {
		detail.PoolID = record.Topics[1]
	}
	if len(record.Topics) > 2 {
		detail.TokenIn = addressFromTopic(record.Topics[2])
	}
	if len(record.Topics) > 3 {
		detail.TokenOut = addressFromTopic(record.Topics[3])
	}

	return model.SwapEvent{
		LogIndex:    record.Index,
		PoolAddress: strings.ToLower(record.Address),
		EventType:   label,
		Detail:      detail,
	}
}
