package binfloat

import "math/big"

// Quo returns z/o, rounded to z's precision. Named Quo rather than Div
// since Go has no operator to overload. Both operands must share
// precision.
func (z *Float) Quo(o *Float) *Float {
	requireSamePrecision(z, o)

	if z.style == StyleNaN || o.style == StyleNaN {
		return NaN(z.prec)
	}

	sign := z.sign.Xor(o.sign)

	switch {
	case z.style == StyleZero && o.style == StyleZero:
		return NaN(z.prec)
	case z.style == StyleInfinity && o.style == StyleInfinity:
		return NaN(z.prec)
	case z.style == StyleZero:
		return newZero(z.prec, sign)
	case o.style == StyleZero:
		return newInfinity(z.prec, sign)
	case o.style == StyleInfinity:
		return newZero(z.prec, sign)
	case z.style == StyleInfinity:
		return newInfinity(z.prec, sign)
	default:
		return quoNormal(z, o, sign)
	}
}

// quoNormal computes the quotient by shifting the dividend left by K extra
// bits (K the smallest multiple of 64 that is at least prec+1) before
// integer division, so the quotient carries enough bits for correct
// rounding; any nonzero remainder forces the sticky bit.
func quoNormal(a, b *Float, sign Sign) *Float {
	prec := a.prec
	words := (uint64(prec) + 1 + 63) / 64
	k := words * 64

	dividend := new(big.Int).Lsh(a.signif, uint(k))
	q, r := new(big.Int).QuoRem(dividend, b.signif, new(big.Int))

	shift := q.BitLen() - int(prec)
	ulp, half, sticky := roundBits(q, uint(shift))
	if r.Sign() != 0 {
		sticky = true
	}
	rounded := new(big.Int).Rsh(q, uint(shift))
	if roundUp(ulp, half, sticky) {
		rounded.Add(rounded, one)
	}

	delta := int64(shift) - int64(k) + int64(prec) - 1
	exp, style := combineExp(a.exp, -b.exp, delta)
	switch style {
	case StyleInfinity:
		return newInfinity(prec, sign)
	case StyleZero:
		return newZero(prec, sign)
	default:
		return normalizeFinite(sign, prec, exp, rounded)
	}
}
