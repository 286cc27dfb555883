package aggregate

import (
	"swapScope/internal/model"
	"swapScope/internal/registry"
)

// maxSwapPaths caps the heuristic path list.
const maxSwapPaths = 5

// Summarize folds classified events into the per-transaction summary.
// Counts and involved tokens cover every reconstructed transfer; only the
// flow table applies the mint and position-token exclusions.
func Summarize(swaps []model.SwapEvent, transfers []model.TransferEvent, reg *registry.Registry) *model.AnalysisSummary {
	tokens := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	for _, transfer := range transfers {
		if _, dup := seen[transfer.Token]; dup {
			continue
		}
		seen[transfer.Token] = struct{}{}
		tokens = append(tokens, transfer.Token)
	}

	return &model.AnalysisSummary{
		TotalSwaps:         len(swaps),
		TotalTransfers:     len(transfers),
		TokensInvolved:     tokens,
		TokenFlows:         Flows(transfers, reg),
		PotentialSwapPaths: swapPaths(transfers),
	}
}

// swapPaths records every adjacent pair of differing-token transfers. The
// pairing is heuristic; false positives are expected.
func swapPaths(transfers []model.TransferEvent) []model.SwapPath {
	paths := make([]model.SwapPath, 0, maxSwapPaths)
	for i := 0; i+1 < len(transfers) && len(paths) < maxSwapPaths; i++ {
		current, next := transfers[i], transfers[i+1]
		if current.Token == next.Token {
			continue
		}
		paths = append(paths, model.SwapPath{
			FromToken:  current.Token,
			ToToken:    next.Token,
			FromAmount: current.AmountFormatted,
			ToAmount:   next.AmountFormatted,
		})
	}

	return paths
}
