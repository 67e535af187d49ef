package binfloat

import "math/big"

// sqrtRem returns the floor integer square root of x and its remainder
// (x - q*q), the exact-arithmetic building block Sqrt rounds from.
func sqrtRem(x *big.Int) (q, r *big.Int) {
	q = new(big.Int).Sqrt(x)
	r = new(big.Int).Sub(x, new(big.Int).Mul(q, q))
	return q, r
}
