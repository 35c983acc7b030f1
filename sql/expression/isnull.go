package expression

import "fmt"

// IsNull checks whether an expression yields the null value. The check
// itself never yields null, so it resolves as a non-nullable boolean no
// matter the operand.
type IsNull struct {
	UnaryExpression
}

// NewIsNull creates an IS NULL check.
func NewIsNull(child Expression) *IsNull {
	return &IsNull{UnaryExpression{Child: child}}
}

func (e *IsNull) String() string {
	return fmt.Sprintf("%s IS NULL", e.Child)
}

// IsNotNull checks whether an expression yields a non-null value. Like
// IsNull, it is a non-nullable boolean.
type IsNotNull struct {
	UnaryExpression
}

// NewIsNotNull creates an IS NOT NULL check.
func NewIsNotNull(child Expression) *IsNotNull {
	return &IsNotNull{UnaryExpression{Child: child}}
}

func (e *IsNotNull) String() string {
	return fmt.Sprintf("%s IS NOT NULL", e.Child)
}
