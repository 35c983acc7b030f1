package expression

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/clojurians-org/arrow-datafusion/sql"
	"github.com/clojurians-org/arrow-datafusion/sql/types"
)

// BinaryOperatorType is the operator type-combination rule: the result type
// of applying op to operands of the given types, or an error when the
// operand types are incompatible with the operator.
func BinaryOperatorType(left arrow.DataType, op Operator, right arrow.DataType) (arrow.DataType, error) {
	switch {
	case op.IsLogic():
		if boolOperand(left) && boolOperand(right) {
			return types.Boolean, nil
		}
	case op.IsComparison():
		if _, ok := types.ComparisonCoercion(left, right); ok {
			return types.Boolean, nil
		}
	case op.IsPattern():
		if textOperand(left) && textOperand(right) {
			return types.Boolean, nil
		}
	case op.IsArithmetic():
		if t, ok := types.NumericCoercion(left, right); ok {
			return t, nil
		}
	}
	return nil, sql.ErrIncompatibleOperands.New(op, left, right)
}

func boolOperand(t arrow.DataType) bool {
	return types.IsBoolean(t) || types.IsNull(t)
}

func textOperand(t arrow.DataType) bool {
	return types.IsText(t) || types.IsNull(t)
}
