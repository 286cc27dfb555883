package classify

import (
	"math/big"
	"strings"
)

// addressFromTopic recovers the address from the low 20 bytes of a topic word.
func addressFromTopic(topic string) string {
	hexPart := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(topic)), "0x")
	if len(hexPart) > 40 {
		hexPart = hexPart[len(hexPart)-40:]
	}
	return "0x" + hexPart
}

// parseAmount reads the whole data payload as one base-16 integer, zero on
// empty or malformed input.
func parseAmount(data string) *big.Int {
	hexPart := strings.TrimPrefix(strings.TrimSpace(data), "0x")
	if hexPart == "" {
		return new(big.Int)
	}
	value, ok := new(big.Int).SetString(hexPart, 16)
	if !ok {
		return new(big.Int)
	}
	return value
}
