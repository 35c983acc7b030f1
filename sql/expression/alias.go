package expression

import "fmt"

// Alias gives a name to an expression. It forwards the type and nullability
// of its child; only the output field name changes.
type Alias struct {
	UnaryExpression
	Name string
}

// NewAlias creates an aliased expression.
func NewAlias(child Expression, name string) *Alias {
	return &Alias{UnaryExpression{Child: child}, name}
}

func (a *Alias) String() string {
	return fmt.Sprintf("%s as %s", a.Child, a.Name)
}
