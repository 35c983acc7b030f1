package types

import "github.com/apache/arrow-go/v18/arrow"

// CanCast is the cast compatibility predicate: it reports whether a value of
// type from can be explicitly converted to type to. It mirrors the kernel
// conversions the execution engine supports, so any cast the planner inserts
// is guaranteed to have an implementation.
func CanCast(from, to arrow.DataType) bool {
	if arrow.TypeEqual(from, to) {
		return true
	}
	// Untyped nulls cast to anything.
	if IsNull(from) {
		return true
	}

	switch {
	case IsNumeric(from):
		return IsNumeric(to) || IsText(to) || IsBoolean(to)
	case IsBoolean(from):
		return IsNumeric(to) || IsText(to)
	case IsText(from):
		return IsNumeric(to) || IsBoolean(to) || IsText(to) || IsTemporal(to) || IsBinary(to)
	case IsBinary(from):
		return IsText(to) || IsBinary(to)
	case IsTemporal(from):
		return IsTemporal(to) || IsText(to) || arrow.TypeEqual(to, Int64)
	}

	if from.ID() == arrow.LIST && to.ID() == arrow.LIST {
		return CanCast(from.(*arrow.ListType).Elem(), to.(*arrow.ListType).Elem())
	}

	return false
}

// IsBinary returns whether the type is a byte string type.
func IsBinary(t arrow.DataType) bool {
	switch t.ID() {
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.FIXED_SIZE_BINARY:
		return true
	}
	return false
}
