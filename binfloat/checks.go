package binfloat

// IsNaN reports whether z is not-a-number.
func (z *Float) IsNaN() bool { return z.style == StyleNaN }

// IsInf reports whether z is positive or negative infinity.
func (z *Float) IsInf() bool { return z.style == StyleInfinity }

// IsZero reports whether z is positive or negative zero.
func (z *Float) IsZero() bool { return z.style == StyleZero }

// IsNormal reports whether z is a normalized finite nonzero value.
func (z *Float) IsNormal() bool { return z.style == StyleNormal }

// IsNegative reports whether z carries the Negative sign. NaN is never
// negative, since it carries no semantic sign.
func (z *Float) IsNegative() bool { return z.style != StyleNaN && z.sign == Negative }

// IsPositive reports whether z carries the Positive sign. NaN is never
// positive.
func (z *Float) IsPositive() bool { return z.style != StyleNaN && z.sign == Positive }
