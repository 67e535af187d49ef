package binfloat

import (
	"math"
	"math/big"
)

// maxExp and minExp are the two reserved exponent sentinels. A Normal's exp
// must lie strictly between them; Infinity and NaN use maxExp, Zero uses
// minExp. This spends the full signed 64-bit exponent range minus its two
// rails, matching the "no subnormals, saturate instead" design.
const (
	maxExp int64 = math.MaxInt64
	minExp int64 = math.MinInt64
)

// Float is a binary floating-point value of precision prec bits, in
// round-to-nearest-ties-to-even. A Normal's value is
//
//	(-1)^sign * signif * 2^(exp - (prec-1))
//
// where signif is a prec-bit integer with its top bit set. Construction is
// the only point at which these invariants may be temporarily violated;
// every exported function re-establishes them before returning.
//
// A *Float is never mutated by an operation that also returns a *Float:
// every kernel below allocates fresh storage for its result. Two *Float
// values never alias the same significand.
type Float struct {
	prec   uint32
	sign   Sign
	exp    int64
	signif *big.Int
	style  Style
}

// Precision returns the significand width, in bits.
func (z *Float) Precision() uint32 {
	return z.prec
}

// Sign returns the Float's sign, or ok=false if z is NaN (NaN carries no
// semantic sign, matching the distilled spec's Option<Sign>).
func (z *Float) Sign() (s Sign, ok bool) {
	if z.style == StyleNaN {
		return 0, false
	}
	return z.sign, true
}

// Style reports which of the four shapes z takes.
func (z *Float) Style() Style {
	return z.style
}

func checkPrecision(prec uint32) {
	precondition(prec > 0, "precision must be positive, got %d", prec)
}

func newZero(prec uint32, s Sign) *Float {
	checkPrecision(prec)
	return &Float{prec: prec, sign: s, exp: minExp, signif: new(big.Int), style: StyleZero}
}

func newInfinity(prec uint32, s Sign) *Float {
	checkPrecision(prec)
	return &Float{prec: prec, sign: s, exp: maxExp, signif: new(big.Int), style: StyleInfinity}
}

// Zero returns positive zero at the given precision.
func Zero(prec uint32) *Float { return newZero(prec, Positive) }

// NegZero returns negative zero at the given precision.
func NegZero(prec uint32) *Float { return newZero(prec, Negative) }

// Infinity returns positive infinity at the given precision.
func Infinity(prec uint32) *Float { return newInfinity(prec, Positive) }

// NegInfinity returns negative infinity at the given precision.
func NegInfinity(prec uint32) *Float { return newInfinity(prec, Negative) }

// NaN returns a quiet not-a-number at the given precision. NaN's signif is
// unconstrained by the validity invariants; this implementation always uses
// a canonical zero, but nothing relies on that, since NaN compares unequal
// to everything including itself.
func NaN(prec uint32) *Float {
	checkPrecision(prec)
	return &Float{prec: prec, sign: Positive, exp: maxExp, signif: new(big.Int), style: StyleNaN}
}

// Max returns the largest finite value representable at the given
// precision: sign=+, exp=maxExp-1, signif=2^prec-1.
func Max(prec uint32) *Float {
	checkPrecision(prec)
	signif := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(prec)), big.NewInt(1))
	return &Float{prec: prec, sign: Positive, exp: maxExp - 1, signif: signif, style: StyleNormal}
}

// Min returns the smallest (most negative) finite value at the given
// precision: -Max(prec).
func Min(prec uint32) *Float {
	return Max(prec).Neg()
}

// MinPositive returns the smallest positive value at the given precision:
// sign=+, exp=minExp+1, signif=2^(prec-1).
func MinPositive(prec uint32) *Float {
	checkPrecision(prec)
	signif := new(big.Int).Lsh(big.NewInt(1), uint(prec-1))
	return &Float{prec: prec, sign: Positive, exp: minExp + 1, signif: signif, style: StyleNormal}
}

// assertValid walks the validity table a well-formed Float must satisfy. It
// is unexported and called only from _test.go files, so the check runs
// during tests and fuzzing without costing anything in production builds.
func assertValid(z *Float) error {
	if z == nil {
		return &internalError{msg: "nil Float"}
	}
	if z.prec == 0 {
		return &internalError{msg: "precision is zero"}
	}
	if z.signif == nil {
		return &internalError{msg: "nil signif"}
	}
	if z.signif.Sign() < 0 {
		return &internalError{msg: "negative signif"}
	}

	switch z.style {
	case StyleNaN:
		if z.exp != maxExp {
			return &internalError{msg: "NaN with exp != maxExp"}
		}
	case StyleInfinity:
		if z.exp != maxExp {
			return &internalError{msg: "Infinity with exp != maxExp"}
		}
		if z.signif.Sign() != 0 {
			return &internalError{msg: "Infinity with nonzero signif"}
		}
	case StyleZero:
		if z.exp != minExp {
			return &internalError{msg: "Zero with exp != minExp"}
		}
		if z.signif.Sign() != 0 {
			return &internalError{msg: "Zero with nonzero signif"}
		}
	case StyleNormal:
		if z.exp <= minExp || z.exp >= maxExp {
			return &internalError{msg: "Normal with exp out of range"}
		}
		if z.signif.BitLen() != int(z.prec) {
			return &internalError{msg: "Normal with bit_length(signif) != prec"}
		}
	default:
		return &internalError{msg: "unknown style"}
	}
	return nil
}

// clone returns a Float with its own, independently owned signif, so that
// callers can freely derive new values without ever aliasing another
// Float's storage.
func (z *Float) clone() *Float {
	return &Float{
		prec:   z.prec,
		sign:   z.sign,
		exp:    z.exp,
		signif: new(big.Int).Set(z.signif),
		style:  z.style,
	}
}

func requireSamePrecision(a, b *Float) {
	precondition(a.prec == b.prec, "operands have different precision (%d vs %d)", a.prec, b.prec)
}
