package binfloat

import (
	"math/big"

	"github.com/trippwill/go-binfloat/imath"
)

// Sqrt returns the correctly-rounded square root of z at z's precision.
// Negative Normals and negative infinity produce NaN; ±0 produces ±0
// (matching IEEE's signed-zero convention).
func (z *Float) Sqrt() *Float {
	switch z.style {
	case StyleNaN:
		return NaN(z.prec)
	case StyleInfinity:
		if z.sign == Positive {
			return newInfinity(z.prec, Positive)
		}
		return NaN(z.prec)
	case StyleZero:
		return newZero(z.prec, z.sign)
	}

	if z.sign == Negative {
		return NaN(z.prec)
	}
	return sqrtNormal(z)
}

func sqrtNormal(z *Float) *Float {
	prec := z.prec
	c := imath.Abs(z.exp % 2)
	resultExp := (z.exp - c) / 2

	shifted := new(big.Int).Lsh(z.signif, uint(prec)+1+uint(c))
	q, r := sqrtRem(shifted)

	shift := q.BitLen() - int(prec)
	ulp, half, sticky := roundBits(q, uint(shift))
	if r.Sign() != 0 {
		sticky = true
	}
	rounded := new(big.Int).Rsh(q, uint(shift))
	if roundUp(ulp, half, sticky) {
		rounded.Add(rounded, one)
	}

	return normalizeFinite(Positive, prec, resultExp, rounded)
}
