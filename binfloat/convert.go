package binfloat

import (
	"math"
	"math/big"
)

// FromBigInt returns the exact value of x as a Normal (or signed Zero, for
// x == 0), at the smallest precision that represents x exactly: prec =
// bit_length(|x|). A zero result is always positive.
func FromBigInt(x *big.Int) *Float {
	if x.Sign() == 0 {
		return Zero(1)
	}
	sign := Positive
	if x.Sign() < 0 {
		sign = Negative
	}
	mag := new(big.Int).Abs(x)
	prec := uint32(mag.BitLen())
	return &Float{prec: prec, sign: sign, exp: int64(prec) - 1, signif: mag, style: StyleNormal}
}

// FromInt64 returns the exact value of x.
func FromInt64(x int64) *Float {
	return FromBigInt(big.NewInt(x))
}

// FromUint64 returns the exact value of x.
func FromUint64(x uint64) *Float {
	return FromBigInt(new(big.Int).SetUint64(x))
}

// signedInt and unsignedInt mirror imath's integer constraints, so that
// FromSigned/FromUnsigned accept any of Go's built-in integer kinds without
// the caller widening by hand first.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FromSigned returns the exact value of x, for any built-in signed integer
// kind.
func FromSigned[T signedInt](x T) *Float {
	return FromInt64(int64(x))
}

// FromUnsigned returns the exact value of x, for any built-in unsigned
// integer kind.
func FromUnsigned[T unsignedInt](x T) *Float {
	return FromUint64(uint64(x))
}

const (
	float64ExpBits  = 11
	float64FracBits = 52
	float64Bias     = 1023

	float32ExpBits  = 8
	float32FracBits = 23
	float32Bias     = 127
)

// FromFloat64 converts a hardware float64 to the exact equivalent Normal at
// Float64Precision, mapping NaN/±Inf/±0 to their Float counterparts.
// Subnormal float64 inputs collapse to signed zero: this implementation
// carries no subnormals of its own, so it does not attempt to special-case
// hardware's bottom binade.
func FromFloat64(f float64) *Float {
	bits := math.Float64bits(f)
	sign := Positive
	if bits>>63 != 0 {
		sign = Negative
	}
	rawExp := int64((bits >> float64FracBits) & (1<<float64ExpBits - 1))
	frac := bits & (1<<float64FracBits - 1)

	switch {
	case rawExp == 0:
		return newZero(Float64Precision, sign)
	case rawExp == 1<<float64ExpBits-1:
		if frac == 0 {
			return newInfinity(Float64Precision, sign)
		}
		return NaN(Float64Precision)
	default:
		mantissa := frac | (1 << float64FracBits)
		exp := rawExp - float64Bias
		return &Float{
			prec:   Float64Precision,
			sign:   sign,
			exp:    exp,
			signif: new(big.Int).SetUint64(mantissa),
			style:  StyleNormal,
		}
	}
}

// FromFloat32 converts a hardware float32 to the exact equivalent Normal at
// Float32Precision.
func FromFloat32(f float32) *Float {
	bits := math.Float32bits(f)
	sign := Positive
	if bits>>31 != 0 {
		sign = Negative
	}
	rawExp := int64((bits >> float32FracBits) & (1<<float32ExpBits - 1))
	frac := uint64(bits & (1<<float32FracBits - 1))

	switch {
	case rawExp == 0:
		return newZero(Float32Precision, sign)
	case rawExp == 1<<float32ExpBits-1:
		if frac == 0 {
			return newInfinity(Float32Precision, sign)
		}
		return NaN(Float32Precision)
	default:
		mantissa := frac | (1 << float32FracBits)
		exp := rawExp - float32Bias
		return &Float{
			prec:   Float32Precision,
			sign:   sign,
			exp:    exp,
			signif: new(big.Int).SetUint64(mantissa),
			style:  StyleNormal,
		}
	}
}

// Float64 converts z to the nearest hardware float64, rounding to 53 bits
// (round-to-nearest-ties-to-even) and saturating to ±Inf/±0 if z's exponent
// leaves float64's binade range.
func (z *Float) Float64() float64 {
	switch z.style {
	case StyleNaN:
		return math.NaN()
	case StyleInfinity:
		if z.sign == Positive {
			return math.Inf(1)
		}
		return math.Inf(-1)
	case StyleZero:
		if z.sign == Positive {
			return 0
		}
		return math.Copysign(0, -1)
	}

	r := z.WithPrecision(Float64Precision)
	if r.style == StyleInfinity || r.style == StyleZero {
		return r.Float64()
	}

	const maxBiasedExp, minBiasedExp = 1023, -1022
	if r.exp > maxBiasedExp {
		if r.sign == Positive {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	if r.exp < minBiasedExp {
		if r.sign == Positive {
			return 0
		}
		return math.Copysign(0, -1)
	}

	mant := r.signif.Uint64()
	frac := mant &^ (1 << float64FracBits)
	bits := uint64(r.exp+float64Bias)<<float64FracBits | frac
	if r.sign == Negative {
		bits |= 1 << 63
	}
	return math.Float64frombits(bits)
}

// Float32 converts z to the nearest hardware float32, rounding to 24 bits
// and saturating to ±Inf/±0 if z's exponent leaves float32's binade range.
func (z *Float) Float32() float32 {
	switch z.style {
	case StyleNaN:
		return float32(math.NaN())
	case StyleInfinity:
		if z.sign == Positive {
			return float32(math.Inf(1))
		}
		return float32(math.Inf(-1))
	case StyleZero:
		if z.sign == Positive {
			return 0
		}
		return float32(math.Copysign(0, -1))
	}

	r := z.WithPrecision(Float32Precision)
	if r.style == StyleInfinity || r.style == StyleZero {
		return r.Float32()
	}

	const maxBiasedExp, minBiasedExp = 127, -126
	if r.exp > maxBiasedExp {
		if r.sign == Positive {
			return float32(math.Inf(1))
		}
		return float32(math.Inf(-1))
	}
	if r.exp < minBiasedExp {
		if r.sign == Positive {
			return 0
		}
		return float32(math.Copysign(0, -1))
	}

	mant := uint32(r.signif.Uint64())
	frac := mant &^ (1 << float32FracBits)
	bits := uint32(r.exp+float32Bias)<<float32FracBits | frac
	if r.sign == Negative {
		bits |= 1 << 31
	}
	return math.Float32frombits(bits)
}
