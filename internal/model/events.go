package model

// TransferEvent is a decoded token transfer. Raw amounts are decimal
// strings so arbitrarily large values survive JSON round trips.
type TransferEvent struct {
	LogIndex        uint64 `json:"log_index"`
	Token           string `json:"token"`
	TokenAddress    string `json:"token_address"`
	From            string `json:"from"`
	To              string `json:"to"`
	Amount          string `json:"amount"`
	AmountFormatted string `json:"amount_formatted"`
}

// SwapEvent is a decoded pool swap. Detail carries the kind-specific
// payload (PoolSwapData or PairSwapData) selected by the matched signature.
type SwapEvent struct {
	LogIndex    uint64      `json:"log_index"`
	PoolAddress string      `json:"pool_address"`
	EventType   string      `json:"event_type"`
	Detail      interface{} `json:"detail"`
}

// PoolSwapData is the payload of a sender/recipient style pool swap.
type PoolSwapData struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Data      string `json:"data"`
}

// PairSwapData is the payload of an asset-pair swap keyed by pool id.
type PairSwapData struct {
	PoolID   string `json:"pool_id"`
	TokenIn  string `json:"token_in"`
	TokenOut string `json:"token_out"`
}
