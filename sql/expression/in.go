package expression

import (
	"fmt"
	"strings"
)

// InList checks whether a value is contained in a list of expressions. It
// produces a boolean whose nullability follows the probed expression.
type InList struct {
	Val     Expression
	List    []Expression
	Negated bool
}

// NewInList creates an IN (...) expression.
func NewInList(val Expression, list []Expression) *InList {
	return &InList{Val: val, List: list}
}

// NewNotInList creates a NOT IN (...) expression.
func NewNotInList(val Expression, list []Expression) *InList {
	return &InList{Val: val, List: list, Negated: true}
}

// Children implements the Expression interface.
func (in *InList) Children() []Expression {
	children := make([]Expression, 0, len(in.List)+1)
	children = append(children, in.Val)
	children = append(children, in.List...)
	return children
}

func (in *InList) String() string {
	items := make([]string, len(in.List))
	for i, e := range in.List {
		items[i] = e.String()
	}
	op := "IN"
	if in.Negated {
		op = "NOT IN"
	}
	return fmt.Sprintf("%s %s (%s)", in.Val, op, strings.Join(items, ", "))
}
