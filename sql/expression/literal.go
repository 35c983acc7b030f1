package expression

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/clojurians-org/arrow-datafusion/sql/types"
)

// Literal is a leaf expression holding a typed scalar value. A nil value is
// the null value of its type.
type Literal struct {
	Value interface{}
	Type  arrow.DataType
}

// NewLiteral creates a literal of the given type. The value is normalized
// to the canonical representation for that type.
func NewLiteral(value interface{}, t arrow.DataType) (*Literal, error) {
	v, err := types.Convert(value, t)
	if err != nil {
		return nil, err
	}
	return &Literal{Value: v, Type: t}, nil
}

// NewNullLiteral creates a null literal of the given type.
func NewNullLiteral(t arrow.DataType) *Literal {
	return &Literal{Value: nil, Type: t}
}

// IsNull returns whether the literal holds the null value.
func (l *Literal) IsNull() bool {
	return l.Value == nil
}

// Children implements the Expression interface.
func (*Literal) Children() []Expression {
	return nil
}

func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "NULL"
	case string:
		return strconv.Quote(v)
	case []byte:
		return fmt.Sprintf("%x", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
