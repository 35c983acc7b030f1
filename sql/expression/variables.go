package expression

import "github.com/apache/arrow-go/v18/arrow"

// ScalarVariable is a leaf expression referencing a session or system
// variable. Its type is declared at construction; its value is only known
// at execution time, so it always resolves as nullable.
type ScalarVariable struct {
	Name string
	Type arrow.DataType
}

// NewScalarVariable creates a scalar variable reference of the given type.
func NewScalarVariable(name string, t arrow.DataType) *ScalarVariable {
	return &ScalarVariable{Name: name, Type: t}
}

// Children implements the Expression interface.
func (*ScalarVariable) Children() []Expression {
	return nil
}

func (v *ScalarVariable) String() string {
	return "@" + v.Name
}
