package binfloat

import "math/big"

// Source supplies uniformly distributed random bits, one uint64 at a time.
// It is bit-compatible with math/rand/v2's Source and math/rand's
// Source64, so either can be passed directly.
type Source interface {
	Uint64() uint64
}

// Random draws a Float uniformly distributed over [0, 1) at the given
// precision: equivalent in distribution to drawing a uniform integer in
// [0, 2^prec) from src and dividing by 2^prec.
func Random(prec uint32, src Source) *Float {
	checkPrecision(prec)

	words := (int(prec) + 63) / 64
	m := new(big.Int)
	for i := 0; i < words; i++ {
		m.Lsh(m, 64)
		m.Or(m, new(big.Int).SetUint64(src.Uint64()))
	}

	mask := new(big.Int).Sub(new(big.Int).Lsh(one, uint(prec)), one)
	m.And(m, mask)
	if m.Sign() == 0 {
		return Zero(prec)
	}

	b := uint32(m.BitLen())
	signif := new(big.Int).Lsh(m, uint(prec-b))
	exp := int64(b) - 1 - int64(prec)
	return saturate(Positive, prec, exp, signif)
}
