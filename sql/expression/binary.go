package expression

import "fmt"

// Operator is a binary expression operator.
type Operator string

const (
	OpAnd      Operator = "AND"
	OpOr       Operator = "OR"
	OpEq       Operator = "="
	OpNotEq    Operator = "!="
	OpLt       Operator = "<"
	OpLtEq     Operator = "<="
	OpGt       Operator = ">"
	OpGtEq     Operator = ">="
	OpPlus     Operator = "+"
	OpMinus    Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpModulo   Operator = "%"
	OpLike     Operator = "LIKE"
	OpNotLike  Operator = "NOT LIKE"
)

// IsLogic returns whether the operator combines two booleans.
func (op Operator) IsLogic() bool {
	return op == OpAnd || op == OpOr
}

// IsComparison returns whether the operator compares its operands.
func (op Operator) IsComparison() bool {
	switch op {
	case OpEq, OpNotEq, OpLt, OpLtEq, OpGt, OpGtEq:
		return true
	}
	return false
}

// IsArithmetic returns whether the operator is numeric arithmetic.
func (op Operator) IsArithmetic() bool {
	switch op {
	case OpPlus, OpMinus, OpMultiply, OpDivide, OpModulo:
		return true
	}
	return false
}

// IsPattern returns whether the operator is a string pattern match.
func (op Operator) IsPattern() bool {
	return op == OpLike || op == OpNotLike
}

func (op Operator) String() string {
	return string(op)
}

// BinaryExpr combines two expressions with an operator. Its type comes from
// the operator type-combination rule; it is nullable when either operand is.
type BinaryExpr struct {
	Left  Expression
	Op    Operator
	Right Expression
}

// NewBinaryExpr creates a binary expression.
func NewBinaryExpr(left Expression, op Operator, right Expression) *BinaryExpr {
	return &BinaryExpr{Left: left, Op: op, Right: right}
}

// Children implements the Expression interface.
func (b *BinaryExpr) Children() []Expression {
	return []Expression{b.Left, b.Right}
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}
