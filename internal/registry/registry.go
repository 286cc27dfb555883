package registry

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EventKind identifies the semantic class a log signature maps to.
type EventKind int

const (
	KindUnrecognized EventKind = iota
	KindTransfer
	KindPoolSwap
	KindAssetPairSwap
)

// Signature describes one registered event signature.
type Signature struct {
	Kind  EventKind
	Label string
}

// Config seeds a Registry. Address and topic keys are matched
// case-insensitively; symbols are case-sensitive display strings.
type Config struct {
	// Signatures maps topic0 hashes to event kind names
	// ("transfer", "pool-swap", "pair-swap").
	Signatures map[string]string
	// Tokens maps contract addresses to display symbols.
	Tokens map[string]string
	// Decimals maps symbols to their precision.
	Decimals map[string]uint8
	// NonFungible lists symbols excluded from flow aggregation.
	NonFungible []string
}

// Registry resolves event signatures, token symbols, and decimal precision
// for the classifier. It is immutable after construction and safe for
// concurrent readers.
type Registry struct {
	signatures  map[string]Signature
	tokens      map[string]string
	decimals    map[string]uint8
	nonFungible map[string]struct{}
}

// New builds a Registry from cfg.
func New(cfg Config) (*Registry, error) {
	r := &Registry{
		signatures:  make(map[string]Signature),
		tokens:      make(map[string]string),
		decimals:    make(map[string]uint8),
		nonFungible: make(map[string]struct{}),
	}
	if err := r.apply(cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// Extend returns a copy of the registry with cfg merged in. The receiver is
// left untouched.
func (r *Registry) Extend(cfg Config) (*Registry, error) {
	merged := &Registry{
		signatures:  make(map[string]Signature, len(r.signatures)),
		tokens:      make(map[string]string, len(r.tokens)),
		decimals:    make(map[string]uint8, len(r.decimals)),
		nonFungible: make(map[string]struct{}, len(r.nonFungible)),
	}
	for topic0, sig := range r.signatures {
		merged.signatures[topic0] = sig
	}
	for address, symbol := range r.tokens {
		merged.tokens[address] = symbol
	}
	for symbol, decimals := range r.decimals {
		merged.decimals[symbol] = decimals
	}
	for symbol := range r.nonFungible {
		merged.nonFungible[symbol] = struct{}{}
	}
	if err := merged.apply(cfg); err != nil {
		return nil, err
	}
	return merged, nil
}

func (r *Registry) apply(cfg Config) error {
	for topic0, kindName := range cfg.Signatures {
		sig, err := signatureFromKindName(kindName)
		if err != nil {
			return err
		}
		normalized, err := normalizeTopic(topic0)
		if err != nil {
			return err
		}
		r.signatures[normalized] = sig
	}

	for address, symbol := range cfg.Tokens {
		symbol = strings.TrimSpace(symbol)
		if !common.IsHexAddress(address) {
			return fmt.Errorf("invalid token address: %s", address)
		}
		if symbol == "" {
			return fmt.Errorf("empty symbol for token %s", address)
		}
		r.tokens[strings.ToLower(address)] = symbol
	}

	for symbol, decimals := range cfg.Decimals {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			return fmt.Errorf("empty symbol in decimals map")
		}
		r.decimals[symbol] = decimals
	}

	for _, symbol := range cfg.NonFungible {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}
		r.nonFungible[symbol] = struct{}{}
	}

	return nil
}

// Signature resolves a topic0 hash to its registered signature.
func (r *Registry) Signature(topic0 string) (Signature, bool) {
	sig, ok := r.signatures[strings.ToLower(topic0)]
	return sig, ok
}

// TokenSymbol resolves a contract address to its registered symbol.
func (r *Registry) TokenSymbol(address string) (string, bool) {
	symbol, ok := r.tokens[strings.ToLower(address)]
	return symbol, ok
}

// SymbolFor resolves a contract address to its registered symbol, or
// synthesizes a placeholder embedding the first four address bytes, so the
// result is never empty.
func (r *Registry) SymbolFor(address string) string {
	address = strings.ToLower(address)
	if symbol, ok := r.tokens[address]; ok {
		return symbol
	}
	prefix := address
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return fmt.Sprintf("Token(%s...)", prefix)
}

const defaultDecimals = 18

// DecimalsFor returns the precision registered for a symbol, defaulting to
// 18 for unknown tokens.
func (r *Registry) DecimalsFor(symbol string) uint8 {
	if decimals, ok := r.decimals[symbol]; ok {
		return decimals
	}
	return defaultDecimals
}

// IsNonFungible reports whether transfers of this symbol are excluded from
// flow aggregation.
func (r *Registry) IsNonFungible(symbol string) bool {
	_, ok := r.nonFungible[symbol]
	return ok
}

func signatureFromKindName(name string) (Signature, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "transfer":
		return Signature{Kind: KindTransfer, Label: labelTransfer}, nil
	case "pool-swap":
		return Signature{Kind: KindPoolSwap, Label: labelPoolSwap}, nil
	case "pair-swap":
		return Signature{Kind: KindAssetPairSwap, Label: labelPairSwap}, nil
	default:
		return Signature{}, fmt.Errorf("unsupported event kind: %s", name)
	}
}

func normalizeTopic(input string) (string, error) {
	input = strings.TrimSpace(input)
	data, err := hexutil.Decode(input)
	if err != nil {
		return "", fmt.Errorf("invalid topic0: %s", input)
	}
	if len(data) != 32 {
		return "", fmt.Errorf("invalid topic0 length: %s", input)
	}
	return strings.ToLower(input), nil
}
