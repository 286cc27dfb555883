package registry

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Canonical event declarations hashed into topic0 values.
const (
	transferEventSig = "Transfer(address,address,uint256)"
	poolSwapEventSig = "Swap(address,address,int256,int256,uint160,uint128,int24)"
	pairSwapEventSig = "Swap(bytes32,address,address,uint256,uint256)"
)

// poolSwapVariantTopic is emitted by forked pools whose Swap layout matches
// the concentrated-liquidity shape but hashes differently. It has no public
// declaration to derive, so it stays a literal.
const poolSwapVariantTopic = "0x19b47279256b2a23a1665c810c8d55a1758940ee09377d4f8d26497a3577dc83"

const (
	labelTransfer      = "Transfer"
	labelUniswapV3Swap = "Uniswap V3 Swap"
	labelPoolSwap      = "Pool Swap"
	labelBalancerSwap  = "Balancer Swap"
	labelPairSwap      = "Pair Swap"
)

const symbolUniswapV3NFT = "Uniswap V3 NFT"

// Default returns the registry the analyzer ships with: the swap signatures
// and Base mainnet tokens the original pool audits touched.
func Default() *Registry {
	return &Registry{
		signatures: map[string]Signature{
			topicOf(transferEventSig): {Kind: KindTransfer, Label: labelTransfer},
			topicOf(poolSwapEventSig): {Kind: KindPoolSwap, Label: labelUniswapV3Swap},
			poolSwapVariantTopic:      {Kind: KindPoolSwap, Label: labelPoolSwap},
			topicOf(pairSwapEventSig): {Kind: KindAssetPairSwap, Label: labelBalancerSwap},
		},
		tokens: map[string]string{
			"0x833589fcd6edb6e08f4c7c32d4f71b54bda02913": "USDC",
			"0x4200000000000000000000000000000000000006": "WETH",
			"0xcbb7c0000ab88b473b1f5afd9ef808440eed33bf": "cbBTC",
			"0xfde4c96c8593536e31f229ea8f37b2ada2699bb2": "USDT",
			"0x03a520b32c04bf3beef7beb72e919cf822ed34f1": symbolUniswapV3NFT,
		},
		decimals: map[string]uint8{
			"USDC":             6,
			"USDT":             6,
			"WETH":             18,
			"cbBTC":            8,
			symbolUniswapV3NFT: 0,
		},
		nonFungible: map[string]struct{}{
			symbolUniswapV3NFT: {},
		},
	}
}

func topicOf(declaration string) string {
	return strings.ToLower(crypto.Keccak256Hash([]byte(declaration)).Hex())
}
