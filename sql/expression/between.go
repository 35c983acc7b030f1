package expression

import "fmt"

// Between checks a value is between two given values. It produces a boolean
// whose nullability follows the probed expression.
type Between struct {
	Val     Expression
	Lower   Expression
	Upper   Expression
	Negated bool
}

// NewBetween creates a new Between expression.
func NewBetween(val, lower, upper Expression) *Between {
	return &Between{Val: val, Lower: lower, Upper: upper}
}

// NewNotBetween creates a negated Between expression.
func NewNotBetween(val, lower, upper Expression) *Between {
	return &Between{Val: val, Lower: lower, Upper: upper, Negated: true}
}

// Children implements the Expression interface.
func (b *Between) Children() []Expression {
	return []Expression{b.Val, b.Lower, b.Upper}
}

func (b *Between) String() string {
	if b.Negated {
		return fmt.Sprintf("%s NOT BETWEEN %s AND %s", b.Val, b.Lower, b.Upper)
	}
	return fmt.Sprintf("%s BETWEEN %s AND %s", b.Val, b.Lower, b.Upper)
}
