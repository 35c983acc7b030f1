package expression

import (
	"bytes"
	"fmt"
)

// CaseBranch is a single WHEN ... THEN ... branch of a case expression.
type CaseBranch struct {
	When Expression
	Then Expression
}

// Case is an expression that returns the value of the first branch whose
// condition is met, or the else value when no branch matches. Its type is
// taken from the first THEN branch. It is nullable when any THEN branch is
// nullable, when the else branch is nullable, or when there is no else
// branch at all: the no-match case then yields null.
type Case struct {
	// Expr is the optional value the branch conditions are compared
	// against. When nil, each condition is a standalone boolean predicate.
	Expr     Expression
	Branches []CaseBranch
	Else     Expression
}

// NewCase returns a new Case expression.
func NewCase(expr Expression, branches []CaseBranch, elseExpr Expression) *Case {
	return &Case{expr, branches, elseExpr}
}

// Children implements the Expression interface.
func (c *Case) Children() []Expression {
	var children []Expression
	if c.Expr != nil {
		children = append(children, c.Expr)
	}
	for _, b := range c.Branches {
		children = append(children, b.When, b.Then)
	}
	if c.Else != nil {
		children = append(children, c.Else)
	}
	return children
}

func (c *Case) String() string {
	var buf bytes.Buffer
	buf.WriteString("CASE")
	if c.Expr != nil {
		fmt.Fprintf(&buf, " %s", c.Expr)
	}
	for _, b := range c.Branches {
		fmt.Fprintf(&buf, " WHEN %s THEN %s", b.When, b.Then)
	}
	if c.Else != nil {
		fmt.Fprintf(&buf, " ELSE %s", c.Else)
	}
	buf.WriteString(" END")
	return buf.String()
}
