package expression

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Cast is an explicit, type-checked conversion of an expression to a target
// type. Its type is the target type; its nullability follows the child,
// since a failing cast aborts execution instead of yielding null.
type Cast struct {
	UnaryExpression
	CastType arrow.DataType
}

// NewCast creates a cast of the given expression to a target type. The
// legality of the conversion is not checked here; CastTo is the entry point
// that does.
func NewCast(child Expression, t arrow.DataType) *Cast {
	return &Cast{UnaryExpression{Child: child}, t}
}

func (c *Cast) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Child, c.CastType)
}

// TryCast converts an expression to a target type, yielding null when the
// value cannot be converted. It is therefore always nullable.
type TryCast struct {
	UnaryExpression
	CastType arrow.DataType
}

// NewTryCast creates a try-cast of the given expression to a target type.
func NewTryCast(child Expression, t arrow.DataType) *TryCast {
	return &TryCast{UnaryExpression{Child: child}, t}
}

func (c *TryCast) String() string {
	return fmt.Sprintf("TRY_CAST(%s AS %s)", c.Child, c.CastType)
}
