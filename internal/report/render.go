package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"swapScope/internal/model"
	"swapScope/internal/registry"
)

const defaultMaxTransferRows = 15

// Renderer writes the human-readable analysis report.
type Renderer struct {
	// MaxTransferRows bounds the transfer detail section; zero means the
	// default of 15. Rows past the bound collapse into a count footer.
	MaxTransferRows int
}

// Render writes the full report for one analysis. The registry resolves
// asset symbols in the swap detail section.
func (r Renderer) Render(w io.Writer, analysis *model.Analysis, reg *registry.Registry) error {
	if analysis == nil || analysis.Summary == nil {
		return errors.New("analysis is required")
	}

	maxRows := r.MaxTransferRows
	if maxRows <= 0 {
		maxRows = defaultMaxTransferRows
	}

	var b strings.Builder
	writeOverview(&b, analysis.Summary)
	writeVolumes(&b, analysis.Summary)
	writeSwaps(&b, analysis.Swaps, reg)
	writeTransfers(&b, analysis.Transfers, reg, maxRows)
	writePaths(&b, analysis.Summary.PotentialSwapPaths)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeOverview(b *strings.Builder, summary *model.AnalysisSummary) {
	b.WriteString("=== Transaction Swap Analysis ===\n\n")
	b.WriteString("Overview:\n")
	fmt.Fprintf(b, "   Swap events:     %d\n", summary.TotalSwaps)
	fmt.Fprintf(b, "   Transfer events: %d\n", summary.TotalTransfers)
	fmt.Fprintf(b, "   Tokens involved: %s\n", strings.Join(summary.TokensInvolved, ", "))
}

// writeVolumes renders the flow table in first-seen token order.
func writeVolumes(b *strings.Builder, summary *model.AnalysisSummary) {
	if len(summary.TokenFlows) == 0 {
		return
	}

	b.WriteString("\nToken volume:\n")
	fmt.Fprintf(b, "%-15s %-15s %-10s %-5s\n", "Token", "Volume", "Transfers", "Decimals")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteByte('\n')

	for _, token := range summary.TokensInvolved {
		stat, ok := summary.TokenFlows[token]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "%-15s %-15.2f %-10d %-5d\n", token, stat.TotalIn, stat.TransferCount, stat.Decimals)
	}
}

func writeSwaps(b *strings.Builder, swaps []model.SwapEvent, reg *registry.Registry) {
	if len(swaps) == 0 {
		return
	}

	b.WriteString("\nSwap events:\n")
	for _, swap := range swaps {
		fmt.Fprintf(b, "   [%d] %s\n", swap.LogIndex, swap.EventType)
		fmt.Fprintf(b, "       Pool: %s\n", swap.PoolAddress)

		switch detail := swap.Detail.(type) {
		case model.PoolSwapData:
			fmt.Fprintf(b, "       Sender: %s\n", detail.Sender)
			fmt.Fprintf(b, "       Recipient: %s\n", detail.Recipient)
		case model.PairSwapData:
			fmt.Fprintf(b, "       Pool ID: %s\n", detail.PoolID)
			fmt.Fprintf(b, "       Token In: %s\n", displaySymbol(reg, detail.TokenIn))
			fmt.Fprintf(b, "       Token Out: %s\n", displaySymbol(reg, detail.TokenOut))
		}
		b.WriteByte('\n')
	}
}

func writeTransfers(b *strings.Builder, transfers []model.TransferEvent, reg *registry.Registry, maxRows int) {
	visible := 0
	for _, transfer := range transfers {
		if !reg.IsNonFungible(transfer.Token) {
			visible++
		}
	}
	if visible == 0 {
		return
	}

	b.WriteString("\nTransfers:\n")
	shown := 0
	currentToken := ""
	for _, transfer := range transfers {
		if reg.IsNonFungible(transfer.Token) {
			continue
		}
		if shown >= maxRows {
			break
		}
		if transfer.Token != currentToken {
			fmt.Fprintf(b, "\n   %s (%s):\n", transfer.Token, transfer.TokenAddress)
			currentToken = transfer.Token
		}
		fmt.Fprintf(b, "     [%d] %s -> %s: %s\n",
			transfer.LogIndex, shortAddress(transfer.From), shortAddress(transfer.To), transfer.AmountFormatted)
		shown++
	}

	if remaining := visible - shown; remaining > 0 {
		fmt.Fprintf(b, "     ... and %d more transfers\n", remaining)
	}
}

func writePaths(b *strings.Builder, paths []model.SwapPath) {
	if len(paths) == 0 {
		return
	}

	b.WriteString("\nPotential swap paths:\n")
	for _, path := range paths {
		fmt.Fprintf(b, "   %s -> %s (%s -> %s)\n", path.FromToken, path.ToToken, path.FromAmount, path.ToAmount)
	}
}

func displaySymbol(reg *registry.Registry, address string) string {
	if symbol, ok := reg.TokenSymbol(address); ok {
		return symbol
	}
	if len(address) > 10 {
		return address[:10]
	}
	return address
}

func shortAddress(address string) string {
	if len(address) > 10 {
		return address[:10] + "..."
	}
	return address
}
