package aggregate

import (
	"reflect"
	"strings"
	"testing"

	"swapScope/internal/model"
	"swapScope/internal/registry"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
	addrC = "0x3333333333333333333333333333333333333333"
)

func TestFlowsDoubleCountsBothDirections(t *testing.T) {
	reg := registry.Default()
	transfers := []model.TransferEvent{
		{Token: "USDC", From: addrA, To: addrB, Amount: "1250000", AmountFormatted: "1.25"},
		{Token: "USDC", From: addrB, To: addrC, Amount: "250000", AmountFormatted: "0.2500"},
	}

	flows := Flows(transfers, reg)

	stat := flows["USDC"]
	if stat == nil {
		t.Fatal("missing USDC stat")
	}
	if stat.TotalIn != 1.5 || stat.TotalOut != 1.5 {
		t.Fatalf("totals: in=%v out=%v", stat.TotalIn, stat.TotalOut)
	}
	if stat.NetFlow != 0 {
		t.Fatalf("net flow: %v", stat.NetFlow)
	}
	if stat.TransferCount != 2 {
		t.Fatalf("count: %d", stat.TransferCount)
	}
	if stat.Decimals != 6 {
		t.Fatalf("decimals: %d", stat.Decimals)
	}
}

func TestFlowsSkipsExcludedParties(t *testing.T) {
	reg := registry.Default()
	transfers := []model.TransferEvent{
		{Token: "USDC", From: "0x0000000000000000000000000000000000000000", To: addrA, Amount: "1000000"},
		{Token: "USDC", From: addrA, To: "0x000000000000000000000000000000000000dEaD", Amount: "1000000"},
		{Token: "Uniswap V3 NFT", From: addrA, To: addrB, Amount: "12345"},
		{Token: "WETH", From: addrA, To: addrB, Amount: "0"},
	}

	flows := Flows(transfers, reg)

	if _, ok := flows["USDC"]; ok {
		t.Fatal("mint and burn transfers should not produce USDC flows")
	}
	if _, ok := flows["Uniswap V3 NFT"]; ok {
		t.Fatal("position token should not produce flows")
	}

	weth := flows["WETH"]
	if weth == nil {
		t.Fatal("missing WETH stat")
	}
	if weth.TransferCount != 1 || weth.TotalIn != 0 || weth.TotalOut != 0 {
		t.Fatalf("zero amount should count without volume: %+v", weth)
	}
}

func TestFlowsDefaultsUnknownTokenTo18Decimals(t *testing.T) {
	reg := registry.Default()
	transfers := []model.TransferEvent{
		{Token: "Token(0xabcdef01...)", From: addrA, To: addrB, Amount: "500000000000000000"},
	}

	flows := Flows(transfers, reg)

	stat := flows["Token(0xabcdef01...)"]
	if stat == nil {
		t.Fatal("missing stat")
	}
	if stat.TotalIn != 0.5 {
		t.Fatalf("total in: %v", stat.TotalIn)
	}
	if stat.Decimals != 18 {
		t.Fatalf("decimals: %d", stat.Decimals)
	}
}

func TestSwapPathsAdjacentTokenChanges(t *testing.T) {
	// Paths pair every adjacent transfer, so position tokens and zero
	// amounts participate even though flows exclude them.
	transfers := []model.TransferEvent{
		{Token: "WETH", Amount: "1000000000000000000", AmountFormatted: "1.00"},
		{Token: "Uniswap V3 NFT", Amount: "7", AmountFormatted: "7"},
		{Token: "USDC", Amount: "0", AmountFormatted: "0"},
		{Token: "USDC", Amount: "2500000000", AmountFormatted: "2.50K"},
		{Token: "USDC", Amount: "100000", AmountFormatted: "0.1000"},
		{Token: "cbBTC", Amount: "5000000", AmountFormatted: "0.0500"},
	}

	paths := swapPaths(transfers)

	want := []model.SwapPath{
		{FromToken: "WETH", ToToken: "Uniswap V3 NFT", FromAmount: "1.00", ToAmount: "7"},
		{FromToken: "Uniswap V3 NFT", ToToken: "USDC", FromAmount: "7", ToAmount: "0"},
		{FromToken: "USDC", ToToken: "cbBTC", FromAmount: "0.1000", ToAmount: "0.0500"},
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("paths mismatch:\n got %+v\nwant %+v", paths, want)
	}
}

func TestSwapPathsCappedAtFive(t *testing.T) {
	transfers := make([]model.TransferEvent, 0, 12)
	for i := 0; i < 12; i++ {
		token := "USDC"
		if i%2 == 1 {
			token = "WETH"
		}
		transfers = append(transfers, model.TransferEvent{Token: token, Amount: "1", AmountFormatted: "0.000001"})
	}

	paths := swapPaths(transfers)
	if len(paths) != 5 {
		t.Fatalf("expected five paths, got %d", len(paths))
	}
}

func TestSummarize(t *testing.T) {
	reg := registry.Default()
	swaps := []model.SwapEvent{{LogIndex: 1, EventType: "Uniswap V3 Swap"}}
	transfers := []model.TransferEvent{
		{Token: "WETH", From: addrA, To: addrB, Amount: "1000000000000000000", AmountFormatted: "1.00"},
		{Token: "Uniswap V3 NFT", From: addrA, To: addrB, Amount: "7", AmountFormatted: "7"},
		{Token: "USDC", From: "0x0000000000000000000000000000000000000000", To: addrB, Amount: "5", AmountFormatted: "0.000005"},
		{Token: "USDC", From: addrB, To: addrC, Amount: "2500000000", AmountFormatted: "2.50K"},
	}

	summary := Summarize(swaps, transfers, reg)

	if summary.TotalSwaps != 1 || summary.TotalTransfers != 4 {
		t.Fatalf("counts: swaps=%d transfers=%d", summary.TotalSwaps, summary.TotalTransfers)
	}

	// Involved tokens span every transfer; the flow table stays narrower
	// because the position token and the mint are excluded from it.
	if !reflect.DeepEqual(summary.TokensInvolved, []string{"WETH", "Uniswap V3 NFT", "USDC"}) {
		t.Fatalf("tokens involved: %v", summary.TokensInvolved)
	}
	if len(summary.TokenFlows) != 2 {
		t.Fatalf("token flows: %v", summary.TokenFlows)
	}
	if summary.TokenFlows["USDC"].TransferCount != 1 {
		t.Fatalf("USDC flow count: %d", summary.TokenFlows["USDC"].TransferCount)
	}

	wantPaths := []model.SwapPath{
		{FromToken: "WETH", ToToken: "Uniswap V3 NFT", FromAmount: "1.00", ToAmount: "7"},
		{FromToken: "Uniswap V3 NFT", ToToken: "USDC", FromAmount: "7", ToAmount: "0.000005"},
	}
	if !reflect.DeepEqual(summary.PotentialSwapPaths, wantPaths) {
		t.Fatalf("paths mismatch:\n got %+v\nwant %+v", summary.PotentialSwapPaths, wantPaths)
	}
}

func indexedAddress(address string) string {
	return "0x000000000000000000000000" + strings.TrimPrefix(strings.ToLower(address), "0x")
}

func dataWord(hexDigits string) string {
	return "0x" + strings.Repeat("0", 64-len(hexDigits)) + hexDigits
}

func TestAnalyzeFullPass(t *testing.T) {
	reg := registry.Default()
	pool := "0x72ab388e2e2f6facef59e3c3fa2c4e29011c2d38"

	records := []model.LogRecord{
		{
			Index:   0,
			Address: pool,
			Topics: []string{
				"0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67",
				indexedAddress(addrA),
				indexedAddress(addrA),
			},
			Data: dataWord("0aa"),
		},
		{
			Index:   1,
			Address: "0x4200000000000000000000000000000000000006",
			Topics: []string{
				"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
				indexedAddress(addrA),
				indexedAddress(pool),
			},
			Data: dataWord("de0b6b3a7640000"),
		},
		{
			Index:   2,
			Address: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913",
			Topics: []string{
				"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
				indexedAddress(pool),
				indexedAddress(addrA),
			},
			Data: dataWord("9502f900"),
		},
	}

	analysis := Analyze(records, reg)

	if len(analysis.Swaps) != 1 || len(analysis.Transfers) != 2 {
		t.Fatalf("event counts: swaps=%d transfers=%d", len(analysis.Swaps), len(analysis.Transfers))
	}
	if analysis.Swaps[0].EventType != "Uniswap V3 Swap" {
		t.Fatalf("swap label: %s", analysis.Swaps[0].EventType)
	}

	summary := analysis.Summary
	if summary.TotalSwaps != 1 || summary.TotalTransfers != 2 {
		t.Fatalf("summary counts: %+v", summary)
	}
	if !reflect.DeepEqual(summary.TokensInvolved, []string{"WETH", "USDC"}) {
		t.Fatalf("tokens involved: %v", summary.TokensInvolved)
	}
	if summary.TokenFlows["WETH"].TotalIn != 1 {
		t.Fatalf("WETH volume: %v", summary.TokenFlows["WETH"].TotalIn)
	}
	if summary.TokenFlows["USDC"].TotalIn != 2500 {
		t.Fatalf("USDC volume: %v", summary.TokenFlows["USDC"].TotalIn)
	}

	wantPaths := []model.SwapPath{
		{FromToken: "WETH", ToToken: "USDC", FromAmount: "1.00", ToAmount: "2.50K"},
	}
	if !reflect.DeepEqual(summary.PotentialSwapPaths, wantPaths) {
		t.Fatalf("paths mismatch:\n got %+v\nwant %+v", summary.PotentialSwapPaths, wantPaths)
	}
}
