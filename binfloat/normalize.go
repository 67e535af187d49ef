package binfloat

import "math/big"

// Neg returns -z. NaN is returned unchanged (it carries no semantic sign).
func (z *Float) Neg() *Float {
	r := z.clone()
	if r.style != StyleNaN {
		r.sign = r.sign.Negate()
	}
	return r
}

// Abs returns |z|. NaN is returned unchanged.
func (z *Float) Abs() *Float {
	r := z.clone()
	if r.style != StyleNaN {
		r.sign = Positive
	}
	return r
}

// WithPrecision returns z rounded or widened to newPrec bits, round-to-
// nearest-ties-to-even on narrowing, exact on widening. NaN/Infinity/Zero
// only have their prec field changed.
func (z *Float) WithPrecision(newPrec uint32) *Float {
	checkPrecision(newPrec)

	switch z.style {
	case StyleNaN:
		return &Float{prec: newPrec, sign: z.sign, exp: maxExp, signif: new(big.Int), style: StyleNaN}
	case StyleInfinity:
		return newInfinity(newPrec, z.sign)
	case StyleZero:
		return newZero(newPrec, z.sign)
	}

	if newPrec == z.prec {
		return z.clone()
	}

	if newPrec > z.prec {
		k := newPrec - z.prec
		signif := new(big.Int).Lsh(z.signif, uint(k))
		return &Float{prec: newPrec, sign: z.sign, exp: z.exp, signif: signif, style: StyleNormal}
	}

	k := z.prec - newPrec
	ulp, half, sticky := roundBits(z.signif, uint(k))
	shifted := new(big.Int).Rsh(z.signif, uint(k))
	if roundUp(ulp, half, sticky) {
		shifted.Add(shifted, one)
	}
	return normalizeFinite(z.sign, newPrec, z.exp, shifted)
}

var one = big.NewInt(1)

// addUlp increases z's magnitude by one unit-in-the-last-place (away from
// zero, whatever z's sign), carrying through renormalization and saturating
// to signed Infinity at the top exponent rail.
func addUlp(z *Float) *Float {
	switch z.style {
	case StyleNaN, StyleInfinity:
		return z.clone()
	case StyleZero:
		return MinPositive(z.prec).withSign(z.sign)
	}

	signif := new(big.Int).Add(z.signif, one)
	exp := z.exp
	if signif.BitLen() > int(z.prec) {
		signif.Rsh(signif, 1)
		var overflowed bool
		exp, overflowed = addSat64(exp, 1)
		if overflowed || exp >= maxExp {
			return newInfinity(z.prec, z.sign)
		}
	}
	return &Float{prec: z.prec, sign: z.sign, exp: exp, signif: signif, style: StyleNormal}
}

// subUlp decreases z's magnitude by one unit-in-the-last-place (toward
// zero, whatever z's sign). A Zero steps across to MinPositive of the
// opposite sign.
func subUlp(z *Float) *Float {
	switch z.style {
	case StyleNaN:
		return z.clone()
	case StyleInfinity:
		return Max(z.prec).withSign(z.sign)
	case StyleZero:
		return MinPositive(z.prec).withSign(z.sign.Negate())
	}

	signif := new(big.Int).Sub(z.signif, one)
	exp := z.exp
	if signif.BitLen() < int(z.prec) {
		var overflowed bool
		exp, overflowed = addSat64(exp, -1)
		if overflowed || exp <= minExp {
			return newZero(z.prec, z.sign)
		}
		signif.Lsh(signif, 1)
		signif.SetBit(signif, 0, 1)
	}
	return &Float{prec: z.prec, sign: z.sign, exp: exp, signif: signif, style: StyleNormal}
}

// withSign returns a copy of z with its sign field forced to s, leaving
// every other field untouched (NaN included, since this is an internal
// helper never handed a NaN that needs its sign to matter).
func (z *Float) withSign(s Sign) *Float {
	r := z.clone()
	r.sign = s
	return r
}

// NextAbove returns the adjacent representable value toward +infinity.
func (z *Float) NextAbove() *Float {
	if z.style == StyleNaN {
		return z.clone()
	}
	if z.sign == Positive {
		return addUlp(z)
	}
	return subUlp(z)
}

// NextBelow returns the adjacent representable value toward -infinity.
func (z *Float) NextBelow() *Float {
	if z.style == StyleNaN {
		return z.clone()
	}
	if z.sign == Positive {
		return subUlp(z)
	}
	return addUlp(z)
}

// NextToward returns the representable value one ulp closer to t, or z
// itself if z equals t or the two are incomparable (either is NaN).
func (z *Float) NextToward(t *Float) *Float {
	requireSamePrecision(z, t)
	if z.style == StyleNaN || t.style == StyleNaN {
		return z.clone()
	}
	cmp, ok := z.Cmp(t)
	if !ok || cmp == 0 {
		return z.clone()
	}
	if cmp < 0 {
		return z.NextAbove()
	}
	return z.NextBelow()
}

// MulExp2 returns z * 2^k, saturating to signed Infinity/Zero if the
// exponent leaves the representable range. NaN/Infinity/Zero are returned
// unchanged.
func (z *Float) MulExp2(k int64) *Float {
	if z.style != StyleNormal {
		return z.clone()
	}

	exp, overflowed := addSat64(z.exp, k)
	if overflowed {
		if k > 0 {
			return newInfinity(z.prec, z.sign)
		}
		return newZero(z.prec, z.sign)
	}
	return saturate(z.sign, z.prec, exp, new(big.Int).Set(z.signif))
}
