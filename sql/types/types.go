// Package types is the fixed type catalog expression resolution works
// against. Types are arrow data types; this package adds the lookups the
// resolver needs on top of them: textual names, cast compatibility, numeric
// coercion, nested field access and value conversion.
package types

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrTypeNotSupported is returned when a textual type name does not map
	// to a type of the catalog.
	ErrTypeNotSupported = errors.NewKind("type not supported: %s")

	// ErrFieldNotFound is returned when a keyed access into a composite type
	// does not resolve to a field of that type.
	ErrFieldNotFound = errors.NewKind("field %v not found in type %s")

	// ErrConvert is returned when a value cannot be converted to a type of
	// the catalog.
	ErrConvert = errors.NewKind("couldn't convert %v to %s")
)

var (
	// Null is the type of untyped nulls.
	Null = arrow.Null
	// Boolean is a boolean type.
	Boolean = arrow.FixedWidthTypes.Boolean
	// Int8 is an integer of 8 bits.
	Int8 = arrow.PrimitiveTypes.Int8
	// Int16 is an integer of 16 bits.
	Int16 = arrow.PrimitiveTypes.Int16
	// Int32 is an integer of 32 bits.
	Int32 = arrow.PrimitiveTypes.Int32
	// Int64 is an integer of 64 bits.
	Int64 = arrow.PrimitiveTypes.Int64
	// Uint8 is an unsigned integer of 8 bits.
	Uint8 = arrow.PrimitiveTypes.Uint8
	// Uint16 is an unsigned integer of 16 bits.
	Uint16 = arrow.PrimitiveTypes.Uint16
	// Uint32 is an unsigned integer of 32 bits.
	Uint32 = arrow.PrimitiveTypes.Uint32
	// Uint64 is an unsigned integer of 64 bits.
	Uint64 = arrow.PrimitiveTypes.Uint64
	// Float32 is a floating point number of 32 bits.
	Float32 = arrow.PrimitiveTypes.Float32
	// Float64 is a floating point number of 64 bits.
	Float64 = arrow.PrimitiveTypes.Float64
	// Utf8 is a variable-length string type.
	Utf8 = arrow.BinaryTypes.String
	// Binary is a variable-length byte string type.
	Binary = arrow.BinaryTypes.Binary
	// Date32 is a date stored as days since the unix epoch.
	Date32 = arrow.FixedWidthTypes.Date32
	// Date64 is a date stored as milliseconds since the unix epoch.
	Date64 = arrow.FixedWidthTypes.Date64
	// TimestampUs is a microsecond-resolution instant.
	TimestampUs = arrow.FixedWidthTypes.Timestamp_us
	// TimestampNs is a nanosecond-resolution instant.
	TimestampNs = arrow.FixedWidthTypes.Timestamp_ns
)

// ListOf returns a list type with the given element type.
func ListOf(elem arrow.DataType) *arrow.ListType {
	return arrow.ListOf(elem)
}

// StructOf returns a struct type with the given fields.
func StructOf(fields ...arrow.Field) *arrow.StructType {
	return arrow.StructOf(fields...)
}

// typeNames maps the textual names accepted by ParseType to catalog types.
// SQL-flavored synonyms are included so YAML schemas read naturally.
var typeNames = map[string]arrow.DataType{
	"null":      Null,
	"boolean":   Boolean,
	"bool":      Boolean,
	"tinyint":   Int8,
	"int8":      Int8,
	"smallint":  Int16,
	"int16":     Int16,
	"int":       Int32,
	"integer":   Int32,
	"int32":     Int32,
	"bigint":    Int64,
	"int64":     Int64,
	"uint8":     Uint8,
	"uint16":    Uint16,
	"uint32":    Uint32,
	"uint64":    Uint64,
	"float":     Float32,
	"float32":   Float32,
	"double":    Float64,
	"float64":   Float64,
	"text":      Utf8,
	"varchar":   Utf8,
	"string":    Utf8,
	"utf8":      Utf8,
	"binary":    Binary,
	"bytes":     Binary,
	"date":      Date32,
	"date32":    Date32,
	"date64":    Date64,
	"timestamp": TimestampUs,
}

// ParseType resolves a textual type name to a type of the catalog.
// "list<T>" parses to a list of the named element type.
func ParseType(name string) (arrow.DataType, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(s, "list<") && strings.HasSuffix(s, ">") {
		elem, err := ParseType(s[len("list<") : len(s)-1])
		if err != nil {
			return nil, err
		}
		return ListOf(elem), nil
	}
	if t, ok := typeNames[s]; ok {
		return t, nil
	}
	return nil, ErrTypeNotSupported.New(name)
}

// MustParseType is a ParseType that panics on error, for static
// declarations and tests.
func MustParseType(name string) arrow.DataType {
	t, err := ParseType(name)
	if err != nil {
		panic(err)
	}
	return t
}

// IsNull returns whether the type is the null type.
func IsNull(t arrow.DataType) bool {
	return t.ID() == arrow.NULL
}

// IsInteger returns whether the type is a signed or unsigned integer.
func IsInteger(t arrow.DataType) bool {
	return IsSigned(t) || IsUnsigned(t)
}

// IsSigned returns whether the type is a signed integer.
func IsSigned(t arrow.DataType) bool {
	switch t.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64:
		return true
	}
	return false
}

// IsUnsigned returns whether the type is an unsigned integer.
func IsUnsigned(t arrow.DataType) bool {
	switch t.ID() {
	case arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return true
	}
	return false
}

// IsFloat returns whether the type is a floating point number.
func IsFloat(t arrow.DataType) bool {
	switch t.ID() {
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return true
	}
	return false
}

// IsNumeric returns whether the type is an integer or floating point number.
func IsNumeric(t arrow.DataType) bool {
	return IsInteger(t) || IsFloat(t)
}

// IsText returns whether the type is a string type.
func IsText(t arrow.DataType) bool {
	switch t.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return true
	}
	return false
}

// IsBoolean returns whether the type is the boolean type.
func IsBoolean(t arrow.DataType) bool {
	return t.ID() == arrow.BOOL
}

// IsTemporal returns whether the type is a date, time or timestamp.
func IsTemporal(t arrow.DataType) bool {
	switch t.ID() {
	case arrow.DATE32, arrow.DATE64, arrow.TIMESTAMP, arrow.TIME32, arrow.TIME64:
		return true
	}
	return false
}
