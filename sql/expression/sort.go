package expression

import "fmt"

// Sort marks an expression as a sort key. It is a passthrough for type and
// nullability purposes; direction and null ordering only matter to the
// physical sort.
type Sort struct {
	UnaryExpression
	Ascending  bool
	NullsFirst bool
}

// NewSort creates a sort key over the given expression.
func NewSort(child Expression, ascending, nullsFirst bool) *Sort {
	return &Sort{UnaryExpression{Child: child}, ascending, nullsFirst}
}

func (s *Sort) String() string {
	dir := "DESC"
	if s.Ascending {
		dir = "ASC"
	}
	nulls := "LAST"
	if s.NullsFirst {
		nulls = "FIRST"
	}
	return fmt.Sprintf("%s %s NULLS %s", s.Child, dir, nulls)
}

// Negative is the arithmetic negation of an expression. It forwards the
// type and nullability of its child.
type Negative struct {
	UnaryExpression
}

// NewNegative creates a negated expression.
func NewNegative(child Expression) *Negative {
	return &Negative{UnaryExpression{Child: child}}
}

func (n *Negative) String() string {
	return fmt.Sprintf("-%s", n.Child)
}
