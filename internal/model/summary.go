package model

// TokenFlowStat accumulates per-token transfer statistics. Every internal
// transfer is counted into both sides, so NetFlow stays structurally zero.
type TokenFlowStat struct {
	TotalIn       float64 `json:"total_in"`
	TotalOut      float64 `json:"total_out"`
	NetFlow       float64 `json:"net_flow"`
	TransferCount int     `json:"transfer_count"`
	Decimals      uint8   `json:"decimals"`
}

// SwapPath is a heuristic pairing of two adjacent differing-token
// transfers, suggestive of but not proof of an exchange.
type SwapPath struct {
	FromToken  string `json:"from_token"`
	ToToken    string `json:"to_token"`
	FromAmount string `json:"from_amount"`
	ToAmount   string `json:"to_amount"`
}

// AnalysisSummary aggregates one transaction's swap and transfer events.
// TokensInvolved is emitted in first-seen order but is semantically a set;
// consumers must not rely on its ordering.
type AnalysisSummary struct {
	TotalSwaps         int                       `json:"total_swaps"`
	TotalTransfers     int                       `json:"total_transfers"`
	TokensInvolved     []string                  `json:"tokens_involved"`
	TokenFlows         map[string]*TokenFlowStat `json:"token_flows"`
	PotentialSwapPaths []SwapPath                `json:"potential_swap_paths"`
}

// Analysis is the complete result of one analyzer run.
type Analysis struct {
	Swaps     []SwapEvent      `json:"swaps"`
	Transfers []TransferEvent  `json:"transfers"`
	Summary   *AnalysisSummary `json:"summary"`
}
