package sql

import "github.com/apache/arrow-go/v18/arrow"

// Nameable is something that has a name.
type Nameable interface {
	Name() string
}

// ExprSchema is the schema capability expression resolution runs against:
// it answers, per column reference, the declared type and nullability.
// Schema implements it, and so may join-combined or otherwise synthetic
// schemas.
type ExprSchema interface {
	// TypeOf returns the declared type of the referenced column, or an
	// error if the reference does not resolve.
	TypeOf(Column) (arrow.DataType, error)
	// IsNullable returns the declared nullability of the referenced column,
	// or an error if the reference does not resolve.
	IsNullable(Column) (bool, error)
}

// ReturnTypeFn computes the result type of a function from the types of its
// arguments. It may reject the argument types with an error.
type ReturnTypeFn func(argTypes []arrow.DataType) (arrow.DataType, error)

// Function describes a scalar, aggregate or window function to the resolver.
// The engine never evaluates functions nor reasons about their signatures
// beyond delegating to ReturnType; built-in and user-defined functions share
// this shape, the registry that produced the descriptor is the only
// difference.
type Function struct {
	// Name is the canonical name of the function.
	Name string
	// ReturnType resolves the function result type for the given argument
	// types.
	ReturnType ReturnTypeFn
}

// NewFunction creates a function descriptor.
func NewFunction(name string, returnType ReturnTypeFn) *Function {
	return &Function{Name: name, ReturnType: returnType}
}

// FixedReturnType returns a ReturnTypeFn that resolves to the same type for
// any arguments. Handy for the many functions whose result type does not
// depend on their inputs.
func FixedReturnType(t arrow.DataType) ReturnTypeFn {
	return func([]arrow.DataType) (arrow.DataType, error) {
		return t, nil
	}
}
