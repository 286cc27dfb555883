package amount

import (
	"fmt"
	"math/big"
)

// Scale divides a raw amount by 10^decimals. The result is display-grade: a
// float64 carries enough precision for volume summaries, not for accounting.
func Scale(raw *big.Int, decimals uint8) float64 {
	if raw == nil {
		return 0
	}
	f := new(big.Float).SetInt(raw)
	if decimals > 0 {
		divisor := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
		f.Quo(f, divisor)
	}
	out, _ := f.Float64()
	return out
}

// Format renders a raw amount with precision that tracks its magnitude, so
// dust keeps its leading zeros while pool-sized amounts stay short. Bracket
// bounds are lower-inclusive and upper-exclusive on the scaled value.
func Format(raw *big.Int, decimals uint8) string {
	if raw == nil || raw.Sign() == 0 {
		return "0"
	}
	if decimals == 0 {
		return raw.String()
	}

	value := Scale(raw, decimals)
	switch {
	case value < 0.000001:
		return fmt.Sprintf("%.8f", value)
	case value < 0.01:
		return fmt.Sprintf("%.6f", value)
	case value < 1:
		return fmt.Sprintf("%.4f", value)
	case value < 1000:
		return fmt.Sprintf("%.2f", value)
	case value < 1000000:
		return fmt.Sprintf("%.2fK", value/1000)
	default:
		return fmt.Sprintf("%.2fM", value/1000000)
	}
}
