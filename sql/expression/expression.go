// Package expression implements the expression grammar of the logical plan
// and its resolution against a schema: the type, nullability and output
// field of every expression form, plus explicit cast insertion.
//
// The grammar is a closed set of forms. Resolution is an exhaustive switch
// over that set in schema.go; an expression form unknown to the switch is a
// bug, not an extension point.
package expression

import "fmt"

// Expression is a node of an expression tree. Nodes are immutable; children
// are owned exclusively by their parent and resolution never mutates them.
type Expression interface {
	fmt.Stringer
	// Children returns the immediate sub-expressions of this node, in order.
	Children() []Expression
}

// IsUnary returns whether the expression has exactly one child.
func IsUnary(e Expression) bool {
	return len(e.Children()) == 1
}

// IsBinary returns whether the expression has exactly two children.
func IsBinary(e Expression) bool {
	return len(e.Children()) == 2
}

// UnaryExpression is the embedded base of every expression with a single
// child.
type UnaryExpression struct {
	Child Expression
}

// Children implements the Expression interface.
func (p *UnaryExpression) Children() []Expression {
	return []Expression{p.Child}
}
