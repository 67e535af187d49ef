package binfloat

import "testing"

func TestWithPrecisionWidenExact(t *testing.T) {
	a := FromInt64(5).WithPrecision(8) // 101 -> 8 bits, exact
	if err := assertValid(a); err != nil {
		t.Fatal(err)
	}
	if got, ok := a.CmpInt64(5); !ok || got != 0 {
		t.Errorf("widened value changed: %s", a.Debug())
	}
}

func TestWithPrecisionNarrowRounds(t *testing.T) {
	// 23 = 0b10111 at 5 bits narrowed to 4: the discarded bit is 1 (half-ulp)
	// and the surviving LSB would be odd, so it rounds away: 0b1011 -> 0b1100.
	a := FromInt64(23).WithPrecision(4)
	if err := assertValid(a); err != nil {
		t.Fatal(err)
	}
	if got, ok := a.CmpInt64(24); !ok || got != 0 {
		t.Errorf("got %s, want 24", a.Debug())
	}
}

func TestWithPrecisionNarrowTieToEven(t *testing.T) {
	// 19 sits exactly halfway between the 4-bit-representable neighbors 18
	// and 20, and 21 between 20 and 22; ties-to-even picks the neighbor with
	// the even 4-bit significand, which is 20 (0b1010) in both cases.
	for _, n := range []int64{19, 21} {
		a := FromInt64(n).WithPrecision(4)
		if got, ok := a.CmpInt64(20); !ok || got != 0 {
			t.Errorf("WithPrecision(%d, 4) = %s, want 20", n, a.Debug())
		}
	}
}

func TestNextAboveBelowRoundTrip(t *testing.T) {
	const prec = 10
	a := FromInt64(100).WithPrecision(prec)
	above := a.NextAbove()
	back := above.NextBelow()
	if !back.Equal(a) {
		t.Errorf("NextBelow(NextAbove(a)) = %s, want %s", back.Debug(), a.Debug())
	}
}

func TestNextAboveZero(t *testing.T) {
	z := Zero(8)
	above := z.NextAbove()
	if !above.Equal(MinPositive(8)) {
		t.Errorf("NextAbove(+0) = %s, want %s", above.Debug(), MinPositive(8).Debug())
	}

	nz := NegZero(8)
	below := nz.NextBelow()
	if !below.Equal(MinPositive(8).Neg()) {
		t.Errorf("NextBelow(-0) = %s, want %s", below.Debug(), MinPositive(8).Neg().Debug())
	}
}

func TestNextAboveMaxSaturates(t *testing.T) {
	m := Max(6)
	above := m.NextAbove()
	if !above.IsInf() || above.IsNegative() {
		t.Errorf("NextAbove(Max) = %s, want +inf", above.Debug())
	}
}

func TestNextBelowMinSaturates(t *testing.T) {
	m := Min(6)
	below := m.NextBelow()
	if !below.IsInf() || below.IsPositive() {
		t.Errorf("NextBelow(Min) = %s, want -inf", below.Debug())
	}
}

func TestNextTowardConverges(t *testing.T) {
	// Start at 0.5: at precision 8 the binade [0.5, 1) holds 128 values, so
	// 1 is reached in 128 steps, the last one carrying into the next binade.
	const prec = 8
	a := FromInt64(1).WithPrecision(prec).MulExp2(-1)
	target := FromInt64(1).WithPrecision(prec)
	for i := 0; i < 1000 && !a.Equal(target); i++ {
		a = a.NextToward(target)
	}
	if !a.Equal(target) {
		t.Errorf("NextToward never converged to %s, stuck at %s", target.Debug(), a.Debug())
	}
}

func TestMulExp2(t *testing.T) {
	a := FromInt64(3).WithPrecision(8)
	got := a.MulExp2(4)
	want := FromInt64(3 * 16).WithPrecision(8)
	if !got.Equal(want) {
		t.Errorf("3 * 2^4 = %s, want %s", got.Debug(), want.Debug())
	}
}

func TestMulExp2SaturatesToInfinity(t *testing.T) {
	a := Max(8)
	got := a.MulExp2(1 << 62)
	if !got.IsInf() || got.IsNegative() {
		t.Errorf("Max * 2^huge = %s, want +inf", got.Debug())
	}
}

func TestMulExp2SaturatesToZero(t *testing.T) {
	a := MinPositive(8)
	got := a.MulExp2(-(1 << 62))
	if !got.IsZero() || got.IsNegative() {
		t.Errorf("MinPositive * 2^-huge = %s, want +0", got.Debug())
	}
}

func TestNegAbs(t *testing.T) {
	a := FromInt64(-5).WithPrecision(8)
	if !a.Neg().Equal(FromInt64(5).WithPrecision(8)) {
		t.Errorf("Neg(-5) != 5")
	}
	if !a.Abs().Equal(FromInt64(5).WithPrecision(8)) {
		t.Errorf("Abs(-5) != 5")
	}
	if !NaN(8).Neg().IsNaN() {
		t.Errorf("Neg(NaN) is not NaN")
	}
}
