package binfloat

import "math/big"

// Mul returns z*o, rounded to z's precision. Both operands must share
// precision.
func (z *Float) Mul(o *Float) *Float {
	requireSamePrecision(z, o)

	if z.style == StyleNaN || o.style == StyleNaN {
		return NaN(z.prec)
	}

	sign := z.sign.Xor(o.sign)
	zZero, oZero := z.style == StyleZero, o.style == StyleZero
	zInf, oInf := z.style == StyleInfinity, o.style == StyleInfinity

	switch {
	case (zZero && oInf) || (zInf && oZero):
		return NaN(z.prec)
	case zInf || oInf:
		return newInfinity(z.prec, sign)
	case zZero || oZero:
		return newZero(z.prec, sign)
	default:
		return mulNormal(z, o, sign)
	}
}

func mulNormal(a, b *Float, sign Sign) *Float {
	prec := a.prec
	product := new(big.Int).Mul(a.signif, b.signif)

	shift := product.BitLen() - int(prec)
	ulp, half, sticky := roundBits(product, uint(shift))
	rounded := new(big.Int).Rsh(product, uint(shift))
	if roundUp(ulp, half, sticky) {
		rounded.Add(rounded, one)
	}

	delta := int64(shift) - (int64(prec) - 1)
	exp, style := combineExp(a.exp, b.exp, delta)
	switch style {
	case StyleInfinity:
		return newInfinity(prec, sign)
	case StyleZero:
		return newZero(prec, sign)
	default:
		return normalizeFinite(sign, prec, exp, rounded)
	}
}
