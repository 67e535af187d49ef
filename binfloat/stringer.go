package binfloat

import (
	"fmt"
	"math/big"
)

// Debug renders z in a form intended for diagnostics and test failure
// messages, not for parsing: NaN, ±0.0, ±inf, or a signed binary
// significand times a power of two.
func (z *Float) Debug() string {
	switch z.style {
	case StyleNaN:
		return "NaN"
	case StyleZero:
		return z.sign.String() + "0.0"
	case StyleInfinity:
		return z.sign.String() + "inf"
	default:
		// Computed in big.Int: exp-(prec-1) can fall below math.MinInt64.
		pow := new(big.Int).Sub(big.NewInt(z.exp), big.NewInt(int64(z.prec)-1))
		return fmt.Sprintf("%s%s · 2^(%s)", z.sign.String(), z.signif.Text(2), pow.String())
	}
}

// String is an alias for Debug, satisfying fmt.Stringer.
func (z *Float) String() string {
	return z.Debug()
}

// GoString satisfies fmt.GoStringer, for %#v.
func (z *Float) GoString() string {
	return fmt.Sprintf("binfloat.Float{prec:%d, sign:%s, exp:%d, signif:%s, style:%s}",
		z.prec, z.sign, z.exp, z.signif.Text(2), z.style)
}
