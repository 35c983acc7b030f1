package expression

import "fmt"

// Not is the boolean negation of an expression. It produces a boolean and
// forwards the nullability of its child.
type Not struct {
	UnaryExpression
}

// NewNot creates a boolean negation.
func NewNot(child Expression) *Not {
	return &Not{UnaryExpression{Child: child}}
}

func (n *Not) String() string {
	return fmt.Sprintf("NOT %s", n.Child)
}
