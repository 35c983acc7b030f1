package expression

import "fmt"

// GetIndexedField accesses a field inside a composite value: a struct field
// by name or a list element by index. Its type and nullability come from
// the resolved field of the parent's composite type.
type GetIndexedField struct {
	UnaryExpression
	// Key is the access key: a string for struct fields, an integer for
	// list elements.
	Key interface{}
}

// NewGetIndexedField creates a keyed access into a composite expression.
func NewGetIndexedField(child Expression, key interface{}) *GetIndexedField {
	return &GetIndexedField{UnaryExpression{Child: child}, key}
}

func (g *GetIndexedField) String() string {
	if s, ok := g.Key.(string); ok {
		return fmt.Sprintf("%s[%q]", g.Child, s)
	}
	return fmt.Sprintf("%s[%v]", g.Child, g.Key)
}
