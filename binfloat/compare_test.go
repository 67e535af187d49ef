package binfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmpNaNIncomparable(t *testing.T) {
	n := NaN(8)
	f := FromInt64(1).WithPrecision(8)

	_, ok := n.Cmp(f)
	assert.False(t, ok)
	_, ok = f.Cmp(n)
	assert.False(t, ok)
	_, ok = n.Cmp(n)
	assert.False(t, ok)
}

func TestCmpInfinities(t *testing.T) {
	pos := Infinity(8)
	neg := NegInfinity(8)

	c, ok := pos.Cmp(neg)
	require.True(t, ok)
	assert.Equal(t, 1, c)

	c, ok = neg.Cmp(pos)
	require.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = pos.Cmp(pos)
	require.True(t, ok)
	assert.Equal(t, 0, c)
}

func TestCmpInfinityVsFinite(t *testing.T) {
	pos := Infinity(8)
	finite := Max(8)

	c, ok := pos.Cmp(finite)
	require.True(t, ok)
	assert.Equal(t, 1, c)

	c, ok = finite.Cmp(pos)
	require.True(t, ok)
	assert.Equal(t, -1, c)
}

func TestCmpZeroVsNormal(t *testing.T) {
	z := Zero(8)
	pos := MinPositive(8)
	neg := pos.Neg()

	c, ok := z.Cmp(pos)
	require.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = z.Cmp(neg)
	require.True(t, ok)
	assert.Equal(t, 1, c)
}

func TestCmpZeroVsZero(t *testing.T) {
	c, ok := Zero(8).Cmp(NegZero(8))
	require.True(t, ok)
	assert.Equal(t, 0, c)
	assert.True(t, Zero(8).Equal(NegZero(8)))
}

func TestCmpNormalOrdering(t *testing.T) {
	a := FromInt64(3).WithPrecision(16)
	b := FromInt64(5).WithPrecision(16)

	c, ok := a.Cmp(b)
	require.True(t, ok)
	assert.Equal(t, -1, c)

	c, ok = b.Cmp(a.Neg())
	require.True(t, ok)
	assert.Equal(t, 1, c)
}

func TestCmpSamePrecisionRequired(t *testing.T) {
	assert.Panics(t, func() {
		Zero(8).Cmp(Zero(16))
	})
}

func TestCmpFloat64Promotion(t *testing.T) {
	a := FromInt64(2).WithPrecision(8)
	c, ok := a.CmpFloat64(2.0)
	require.True(t, ok)
	assert.Equal(t, 0, c)

	c, ok = a.CmpFloat64(2.5)
	require.True(t, ok)
	assert.Equal(t, -1, c)
}

func TestCmpIntPromotion(t *testing.T) {
	a := FromInt64(-7).WithPrecision(8)
	c, ok := a.CmpInt64(-7)
	require.True(t, ok)
	assert.Equal(t, 0, c)

	c, ok = a.CmpUint64(7)
	require.True(t, ok)
	assert.Equal(t, -1, c)
}
