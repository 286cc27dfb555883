package aggregate

import (
	"swapScope/internal/classify"
	"swapScope/internal/model"
	"swapScope/internal/registry"
)

// Analyze runs the single pass over one transaction's logs: classify every
// record, then summarize what was recognized.
func Analyze(records []model.LogRecord, reg *registry.Registry) *model.Analysis {
	swaps, transfers := classify.New(reg).Classify(records)

	return &model.Analysis{
		Swaps:     swaps,
		Transfers: transfers,
		Summary:   Summarize(swaps, transfers, reg),
	}
}
