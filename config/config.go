package config

import (
	"github.com/holiman/uint256"
)

const (
	StackLimit      uint64 = 1024 // Maximum size of the VM stack allowed.
	CallCreateDepth uint64 = 1024 // Maximum depth of call/create stack.
	StackReach             = 16   // Deepest element DUPn/SWAPn can reach below the top.

	// CallGasFraction is the divisor of the all-but-one-64th rule (EIP-150).
	CallGasFraction uint64 = 64

	WeiExponent = 18 // One ether is 10**WeiExponent wei.
)

// WordBits is the width of an EVM word and of every storage key and value.
const WordBits = len(uint256.Int{}) * 64

// Ether is one ether expressed in wei.
var Ether = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(WeiExponent))

// ForwardableGas returns the most gas a caller holding gas may pass on to an
// inner message call: everything but one CallGasFraction-th.
func ForwardableGas(gas uint64) uint64 {
	return gas - gas/CallGasFraction
}

// Decimals returns how many times amount divides evenly by ten, i.e. the
// exponent of a power-of-ten denomination. Zero has no decimals.
func Decimals(amount *uint256.Int) int {
	var (
		ten = uint256.NewInt(10)
		x   = amount.Clone()
		rem = new(uint256.Int)
		n   int
	)
	for !x.IsZero() {
		if !rem.Mod(x, ten).IsZero() {
			break
		}
		x.Div(x, ten)
		n++
	}
	return n
}
