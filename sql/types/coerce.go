package types

import "github.com/apache/arrow-go/v18/arrow"

// numeric ranks order the numeric types by the set of values they can hold.
// Coercing two numerics picks the smallest type whose rank dominates both;
// mixing signed and unsigned integers widens to the next signed rank so no
// value of either side is lost.
var numericRank = map[arrow.Type]int{
	arrow.UINT8:   1,
	arrow.INT8:    1,
	arrow.UINT16:  2,
	arrow.INT16:   2,
	arrow.UINT32:  3,
	arrow.INT32:   3,
	arrow.UINT64:  4,
	arrow.INT64:   4,
	arrow.FLOAT32: 5,
	arrow.FLOAT64: 6,
}

func signedOfRank(rank int) arrow.DataType {
	switch rank {
	case 1:
		return Int8
	case 2:
		return Int16
	case 3:
		return Int32
	default:
		return Int64
	}
}

func unsignedOfRank(rank int) arrow.DataType {
	switch rank {
	case 1:
		return Uint8
	case 2:
		return Uint16
	case 3:
		return Uint32
	default:
		return Uint64
	}
}

func floatOfRank(rank int) arrow.DataType {
	if rank <= 5 {
		return Float32
	}
	return Float64
}

// NumericCoercion returns the common type two numeric operands are widened
// to before an arithmetic operator combines them, or false if either type is
// not numeric.
func NumericCoercion(l, r arrow.DataType) (arrow.DataType, bool) {
	if !IsNumeric(l) || !IsNumeric(r) {
		return nil, false
	}
	if arrow.TypeEqual(l, r) {
		return l, true
	}

	lr, rr := numericRank[l.ID()], numericRank[r.ID()]
	rank := lr
	if rr > rank {
		rank = rr
	}

	switch {
	case IsFloat(l) || IsFloat(r):
		return floatOfRank(rank), true
	case IsSigned(l) && IsSigned(r):
		return signedOfRank(rank), true
	case IsUnsigned(l) && IsUnsigned(r):
		return unsignedOfRank(rank), true
	default:
		// Mixed signedness: widen one step so the unsigned side still fits.
		return signedOfRank(rank + 1), true
	}
}

// ComparisonCoercion returns the common type two operands are converted to
// before a comparison operator, or false if the types cannot be compared.
func ComparisonCoercion(l, r arrow.DataType) (arrow.DataType, bool) {
	if arrow.TypeEqual(l, r) {
		return l, true
	}
	if t, ok := NumericCoercion(l, r); ok {
		return t, true
	}
	switch {
	case IsNull(l):
		return r, true
	case IsNull(r):
		return l, true
	case IsText(l) && IsNumeric(r), IsNumeric(l) && IsText(r):
		return Utf8, true
	case IsText(l) && IsTemporal(r):
		return r, true
	case IsTemporal(l) && IsText(r):
		return l, true
	case IsTemporal(l) && IsTemporal(r):
		return TimestampNs, true
	}
	return nil, false
}
