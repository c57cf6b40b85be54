//go:build gmp

// This file provides a GMP-backed modular exponentiation, conditionally
// compiled with the "gmp" build tag. The build tag architecture ensures that:
//   - The module builds without GMP by default, using math/big
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//
// GMP's assembly-optimized modular exponentiation outperforms math/big for
// very large Miller-Rabin candidates; for small operands the CGO call
// overhead may make math/big faster.
package prime

import (
	"math/big"

	"github.com/ncw/gmp"
)

// powMod computes base^exp mod mod into z using libgmp.
// All operands in this package are non-negative, so byte-level conversion
// between math/big and gmp representations is lossless.
func powMod(z, base, exp, mod *big.Int) *big.Int {
	var gb, ge, gm, gz gmp.Int
	gb.SetBytes(base.Bytes())
	ge.SetBytes(exp.Bytes())
	gm.SetBytes(mod.Bytes())
	gz.Exp(&gb, &ge, &gm)
	return z.SetBytes(gz.Bytes())
}
