package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrColumnNotFound is returned when a column reference cannot be
	// resolved against the schema in scope.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in any table in scope%s")

	// ErrTableColumnNotFound is returned when a qualified column reference
	// names a relation that has no such column.
	ErrTableColumnNotFound = errors.NewKind("table %q does not have column %q%s")

	// ErrAmbiguousColumnName is returned when an unqualified column reference
	// is present in more than one relation of the schema.
	ErrAmbiguousColumnName = errors.NewKind("ambiguous column name %q, it's present in all these tables: %v")

	// ErrDuplicateField is returned when two fields with the same qualified
	// name would end up in the same schema.
	ErrDuplicateField = errors.NewKind("duplicate field name %q in schema")

	// ErrWildcardNotResolvable is returned when a wildcard expression is
	// found during resolution. Wildcards are placeholders that must be
	// expanded away before a plan is resolved.
	ErrWildcardNotResolvable = errors.NewKind("%s expressions are not valid in a resolved logical plan")

	// ErrIncompatibleOperands is returned when the operand types of a binary
	// expression cannot be combined by the operator.
	ErrIncompatibleOperands = errors.NewKind("unsupported operand types for %s: %s and %s")

	// ErrCannotCast is returned when a cast between two types is not
	// supported by the cast compatibility rules.
	ErrCannotCast = errors.NewKind("cannot automatically convert %s to %s")

	// ErrFunctionSignature is returned when a function rejects the types of
	// the arguments it was given.
	ErrFunctionSignature = errors.NewKind("function %q cannot accept arguments of types %v")

	// ErrUnknownExpression is returned when resolution encounters an
	// expression form it has no rule for. This error is indicative of a bug.
	ErrUnknownExpression = errors.NewKind("unknown expression type %T")

	// ErrExpressionTooDeep is returned by validation when an expression tree
	// exceeds the maximum allowed depth.
	ErrExpressionTooDeep = errors.NewKind("expression tree exceeds maximum depth of %d")
)
