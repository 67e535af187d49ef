package binfloat

import "math/big"

// roundBits extracts the three bits that decide round-to-nearest-ties-to-
// even for a value being right-shifted by shift bits: the ulp bit (the bit
// that survives as the new least-significant bit), the half-ulp bit (one
// position below it), and whether any bit strictly below the half-ulp bit
// is set (the "trailing-one"/sticky bit). shift == 0 means no bits are
// discarded at all.
func roundBits(x *big.Int, shift uint) (ulp, half, sticky bool) {
	if shift == 0 {
		return false, false, false
	}
	ulp = x.Bit(int(shift)) != 0
	half = x.Bit(int(shift-1)) != 0
	if shift >= 2 {
		sticky = x.TrailingZeroBits() < shift-1
	}
	return ulp, half, sticky
}

// roundUp is the round-half-to-even decision: round away from the
// truncated value iff the discarded part is more than half an ulp, or
// exactly half an ulp and the surviving value would otherwise be odd.
func roundUp(ulp, half, sticky bool) bool {
	return half && (ulp || sticky)
}

// normalizeFinite takes a candidate (sign, prec-or-prec+1-bit signif, exp)
// — the shape every arithmetic kernel below produces after rounding — and
// returns the Float it denotes, carrying a rounding-induced overflow into
// exp and saturating to signed Infinity/Zero if exp leaves the valid
// Normal range. signif must already be rounded to within one ulp of prec
// bits: that is, BitLen() is prec, or prec+1 if rounding up carried.
func normalizeFinite(sign Sign, prec uint32, exp int64, signif *big.Int) *Float {
	if signif.Sign() == 0 {
		return newZero(prec, sign)
	}

	if signif.BitLen() == int(prec)+1 {
		signif = new(big.Int).Rsh(signif, 1)
		var overflowed bool
		exp, overflowed = addSat64(exp, 1)
		if overflowed {
			return newInfinity(prec, sign)
		}
	}

	if signif.BitLen() != int(prec) {
		bug("normalizeFinite: signif has %d bits, want %d", signif.BitLen(), prec)
	}

	return saturate(sign, prec, exp, signif)
}

// saturate clamps a mathematically-correct (sign, exp, signif) Normal
// candidate to the representable exponent range, collapsing to signed
// Infinity above it and signed Zero below it, this representation carrying
// no subnormals.
func saturate(sign Sign, prec uint32, exp int64, signif *big.Int) *Float {
	if exp >= maxExp {
		return newInfinity(prec, sign)
	}
	if exp <= minExp {
		return newZero(prec, sign)
	}
	return &Float{prec: prec, sign: sign, exp: exp, signif: signif, style: StyleNormal}
}

// addSat64 adds two int64 values and reports whether the addition
// overflowed the signed 64-bit range, kept as one isolated, independently
// testable function that Mul/Div/Add's exponent arithmetic is built from
// rather than inlined at each call site.
func addSat64(a, b int64) (sum int64, overflowed bool) {
	sum = a + b
	overflowed = (b > 0 && sum < a) || (b < 0 && sum > a)
	return sum, overflowed
}

// combineExp implements the Mul/Div "double-overflow detection" exponent
// arithmetic: raw = e1+e2, adjusted = raw+delta, each
// addition's overflow tracked separately. Exactly one overflow means the
// true mathematical exponent left the representable range and stayed
// there: saturate to Infinity if the wrapped adjusted value reads negative
// (a positive overflow wrapped around), else to Zero. No overflow, or both
// additions overflowing (which cancel out), means adjusted is correct,
// modulo the final range check against the reserved sentinels.
func combineExp(e1, e2, delta int64) (exp int64, style Style) {
	raw, of1 := addSat64(e1, e2)
	adjusted, of2 := addSat64(raw, delta)

	if of1 != of2 {
		if adjusted < 0 {
			return 0, StyleInfinity
		}
		return 0, StyleZero
	}

	if adjusted >= maxExp {
		return 0, StyleInfinity
	}
	if adjusted <= minExp {
		return 0, StyleZero
	}
	return adjusted, StyleNormal
}
