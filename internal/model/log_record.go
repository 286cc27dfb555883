package model

// LogRecord is one raw event log of a transaction, in emission order.
// Field names are the wire contract with the log-dump JSON files the
// analyzer consumes; unknown keys in input files are ignored.
type LogRecord struct {
	Index   uint64   `json:"index"`
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}
