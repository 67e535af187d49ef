package binfloat

// Cmp returns the three-way comparison of z and o (-1, 0, +1) and ok=true,
// or ok=false if either operand is NaN — NaN is incomparable with
// everything, including itself, so the overall order is a partial order
// modulo NaN. Both operands must share precision.
func (z *Float) Cmp(o *Float) (cmp int, ok bool) {
	requireSamePrecision(z, o)

	if z.style == StyleNaN || o.style == StyleNaN {
		return 0, false
	}

	switch {
	case z.style == StyleInfinity && o.style == StyleInfinity:
		return signCmp(z.sign, o.sign), true
	case z.style == StyleInfinity:
		return int(z.sign), true
	case o.style == StyleInfinity:
		return -int(o.sign), true
	case z.style == StyleZero && o.style == StyleZero:
		return 0, true
	case z.style == StyleZero:
		// o is Normal: the Normal dominates in magnitude, its sign decides.
		return -int(o.sign), true
	case o.style == StyleZero:
		return int(z.sign), true
	default:
		return cmpNormal(z, o), true
	}
}

func signCmp(a, b Sign) int {
	if a == b {
		return 0
	}
	return int(a)
}

func cmpNormal(z, o *Float) int {
	if z.sign != o.sign {
		return int(z.sign)
	}
	var c int
	switch {
	case z.exp < o.exp:
		c = -1
	case z.exp > o.exp:
		c = 1
	default:
		c = z.signif.Cmp(o.signif)
	}
	if z.sign == Negative {
		c = -c
	}
	return c
}

// Equal reports whether z and o compare equal. NaN is never equal to
// anything, including another NaN.
func (z *Float) Equal(o *Float) bool {
	c, ok := z.Cmp(o)
	return ok && c == 0
}

// CmpFloat64 promotes f to z's precision (truncating, the documented
// cross-type-comparison choice) and compares.
func (z *Float) CmpFloat64(f float64) (int, bool) {
	return z.Cmp(FromFloat64(f).WithPrecision(z.prec))
}

// CmpFloat32 promotes f to z's precision and compares.
func (z *Float) CmpFloat32(f float32) (int, bool) {
	return z.Cmp(FromFloat32(f).WithPrecision(z.prec))
}

// CmpInt64 promotes i to z's precision and compares.
func (z *Float) CmpInt64(i int64) (int, bool) {
	return z.Cmp(FromInt64(i).WithPrecision(z.prec))
}

// CmpUint64 promotes u to z's precision and compares.
func (z *Float) CmpUint64(u uint64) (int, bool) {
	return z.Cmp(FromUint64(u).WithPrecision(z.prec))
}
