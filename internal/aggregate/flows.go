package aggregate

import (
	"math/big"
	"strings"

	"swapScope/internal/amount"
	"swapScope/internal/model"
	"swapScope/internal/registry"
)

// excludedFlowAddresses are the designated mint and burn parties.
var excludedFlowAddresses = map[string]struct{}{
	"0x0000000000000000000000000000000000000000": {},
	"0x000000000000000000000000000000000000dead": {},
}

// Flows tallies traded volume per token symbol. Every counted transfer
// credits both total_in and total_out, so net flow stays structurally zero.
// Position-token transfers and mint or burn parties are skipped; zero
// amounts still count toward transfer totals.
func Flows(transfers []model.TransferEvent, reg *registry.Registry) map[string]*model.TokenFlowStat {
	flows := make(map[string]*model.TokenFlowStat)

	for _, transfer := range transfers {
		if reg.IsNonFungible(transfer.Token) {
			continue
		}
		if isExcluded(transfer.From) || isExcluded(transfer.To) {
			continue
		}

		decimals := reg.DecimalsFor(transfer.Token)
		value := amount.Scale(parseDecimal(transfer.Amount), decimals)

		stat, ok := flows[transfer.Token]
		if !ok {
			stat = &model.TokenFlowStat{Decimals: decimals}
			flows[transfer.Token] = stat
		}
		stat.TotalIn += value
		stat.TotalOut += value
		stat.NetFlow = stat.TotalIn - stat.TotalOut
		stat.TransferCount++
	}

	return flows
}

func isExcluded(address string) bool {
	_, ok := excludedFlowAddresses[strings.ToLower(address)]
	return ok
}

func parseDecimal(s string) *big.Int {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return value
}
