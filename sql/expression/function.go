package expression

import (
	"fmt"
	"strings"

	"github.com/clojurians-org/arrow-datafusion/sql"
)

// ScalarFunction is a call to a scalar function, built-in or user-defined.
// Its result type is delegated to the function descriptor; the engine makes
// no assumption about whether a function can return null, so calls always
// resolve as nullable.
type ScalarFunction struct {
	Fn   *sql.Function
	Args []Expression
}

// NewScalarFunction creates a scalar function call.
func NewScalarFunction(fn *sql.Function, args ...Expression) *ScalarFunction {
	return &ScalarFunction{Fn: fn, Args: args}
}

// Children implements the Expression interface.
func (f *ScalarFunction) Children() []Expression {
	return f.Args
}

func (f *ScalarFunction) String() string {
	return fmt.Sprintf("%s(%s)", f.Fn.Name, exprListString(f.Args))
}

// AggregateFunction is a call to an aggregate function, built-in or
// user-defined.
type AggregateFunction struct {
	Fn       *sql.Function
	Args     []Expression
	Distinct bool
}

// NewAggregateFunction creates an aggregate function call.
func NewAggregateFunction(fn *sql.Function, args ...Expression) *AggregateFunction {
	return &AggregateFunction{Fn: fn, Args: args}
}

// NewDistinctAggregateFunction creates an aggregate function call over
// distinct values.
func NewDistinctAggregateFunction(fn *sql.Function, args ...Expression) *AggregateFunction {
	return &AggregateFunction{Fn: fn, Args: args, Distinct: true}
}

// Children implements the Expression interface.
func (f *AggregateFunction) Children() []Expression {
	return f.Args
}

func (f *AggregateFunction) String() string {
	if f.Distinct {
		return fmt.Sprintf("%s(DISTINCT %s)", f.Fn.Name, exprListString(f.Args))
	}
	return fmt.Sprintf("%s(%s)", f.Fn.Name, exprListString(f.Args))
}

// WindowFunction is a call to a window function over a window defined by
// partitioning and ordering expressions.
type WindowFunction struct {
	Fn          *sql.Function
	Args        []Expression
	PartitionBy []Expression
	OrderBy     []Expression
}

// NewWindowFunction creates a window function call.
func NewWindowFunction(fn *sql.Function, args, partitionBy, orderBy []Expression) *WindowFunction {
	return &WindowFunction{Fn: fn, Args: args, PartitionBy: partitionBy, OrderBy: orderBy}
}

// Children implements the Expression interface. The window expressions are
// children too: they must resolve against the same schema as the arguments.
func (f *WindowFunction) Children() []Expression {
	children := make([]Expression, 0, len(f.Args)+len(f.PartitionBy)+len(f.OrderBy))
	children = append(children, f.Args...)
	children = append(children, f.PartitionBy...)
	children = append(children, f.OrderBy...)
	return children
}

func (f *WindowFunction) String() string {
	var over []string
	if len(f.PartitionBy) > 0 {
		over = append(over, "PARTITION BY "+exprListString(f.PartitionBy))
	}
	if len(f.OrderBy) > 0 {
		over = append(over, "ORDER BY "+exprListString(f.OrderBy))
	}
	return fmt.Sprintf("%s(%s) OVER (%s)", f.Fn.Name, exprListString(f.Args), strings.Join(over, " "))
}

func exprListString(exprs []Expression) string {
	items := make([]string, len(exprs))
	for i, e := range exprs {
		items[i] = e.String()
	}
	return strings.Join(items, ", ")
}
