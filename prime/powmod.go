//go:build !gmp

package prime

import "math/big"

// powMod computes base^exp mod mod into z using math/big.
// This is the default, pure-Go implementation; build with -tags=gmp to use
// the GMP-backed variant instead.
func powMod(z, base, exp, mod *big.Int) *big.Int {
	return z.Exp(base, exp, mod)
}
