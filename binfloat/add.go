package binfloat

import "math/big"

// guardBits is the width of the extra low-order bits appended to both
// operands before alignment: the classic hardware guard/round/sticky
// technique, folded here into one sticky flag plus two real guard bits.
const guardBits = 3

// Add returns z+o, rounded to z's precision. Both operands must share
// precision.
func (z *Float) Add(o *Float) *Float {
	requireSamePrecision(z, o)

	switch {
	case z.style == StyleNaN || o.style == StyleNaN:
		return NaN(z.prec)
	case z.style == StyleInfinity && o.style == StyleInfinity:
		if z.sign != o.sign {
			return NaN(z.prec)
		}
		return newInfinity(z.prec, z.sign)
	case z.style == StyleInfinity:
		return newInfinity(z.prec, z.sign)
	case o.style == StyleInfinity:
		return newInfinity(z.prec, o.sign)
	case z.style == StyleZero && o.style == StyleZero:
		if z.sign == Negative && o.sign == Negative {
			return newZero(z.prec, Negative)
		}
		return newZero(z.prec, Positive)
	case z.style == StyleZero:
		return o.clone()
	case o.style == StyleZero:
		return z.clone()
	default:
		return addNormal(z, o)
	}
}

// Sub returns z-o, rounded to z's precision.
func (z *Float) Sub(o *Float) *Float {
	return z.Add(o.Neg())
}

// addNormal left-shifts both significands by guardBits extra bits, aligns
// the smaller-exponent operand down by the exponent difference with a
// sticky OR of whatever falls off, adds or subtracts by sign, then
// renormalizes.
func addNormal(a, b *Float) *Float {
	prec := a.prec

	hi, lo := a, b
	if lo.exp > hi.exp {
		hi, lo = b, a
	}
	d := uint64(hi.exp) - uint64(lo.exp)

	hiG := new(big.Int).Lsh(hi.signif, guardBits)
	loG := alignDown(lo.signif, d, prec)

	var sign Sign
	var signif *big.Int
	if hi.sign == lo.sign {
		sign = hi.sign
		signif = new(big.Int).Add(hiG, loG)
	} else {
		diff := new(big.Int).Sub(hiG, loG)
		sign = hi.sign
		if diff.Sign() < 0 {
			diff.Neg(diff)
			sign = lo.sign
		}
		signif = diff
	}

	if signif.Sign() == 0 {
		return newZero(prec, Positive)
	}

	bitlen := signif.BitLen()
	shift := bitlen - int(prec)

	var rounded *big.Int
	if shift <= 0 {
		rounded = new(big.Int).Lsh(signif, uint(-shift))
	} else {
		ulp, half, sticky := roundBits(signif, uint(shift))
		rounded = new(big.Int).Rsh(signif, uint(shift))
		if roundUp(ulp, half, sticky) {
			rounded.Add(rounded, one)
		}
	}

	// hi.exp - guardBits + shift only ever decreases relative to hi.exp by
	// more than a handful of bits when heavy cancellation drove shift very
	// negative; it can never increase by more than 1 (one carry bit), and
	// hi.exp is already short of maxExp, so only the decreasing direction
	// can walk off the int64 range. Guard it with the same double-overflow
	// detection Mul/Div use: exactly one overflow means the result fell
	// below the range, while two overflows cancel out (the intermediate
	// hi.exp-guardBits wrapped and the carry brought it back).
	e, of1 := addSat64(hi.exp, -guardBits)
	exp, of2 := addSat64(e, int64(shift))
	if of1 != of2 {
		return newZero(prec, sign)
	}
	return normalizeFinite(sign, prec, exp, rounded)
}

// alignDown left-shifts x by guardBits and then right-shifts the result by
// d, OR-ing a sticky 1 into the new LSB if any discarded bit was set. d at
// or beyond prec+guardBits means x falls entirely into the sticky region.
func alignDown(x *big.Int, d uint64, prec uint32) *big.Int {
	shifted := new(big.Int).Lsh(x, guardBits)

	if d == 0 {
		return shifted
	}
	if d >= uint64(prec)+guardBits {
		if shifted.Sign() != 0 {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}

	mask := new(big.Int).Sub(new(big.Int).Lsh(one, uint(d)), one)
	lost := new(big.Int).And(shifted, mask)
	shifted.Rsh(shifted, uint(d))
	if lost.Sign() != 0 {
		shifted.Or(shifted, one)
	}
	return shifted
}
