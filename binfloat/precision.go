package binfloat

// Precision is expressed in bits of the significand, set independently for
// each Float. The constants below name the precisions that make a Float
// exactly representable as a hardware float.
const (
	Float32Precision uint32 = 24
	Float64Precision uint32 = 53
)
